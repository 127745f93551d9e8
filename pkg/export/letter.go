package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Letterhead identifies the issuing organisation.
type Letterhead struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// LetterField is a labelled line in a letter section.
type LetterField struct {
	Label string
	Value string
}

// LetterSection groups fields and free text under a heading. Empty fields are
// skipped when rendering.
type LetterSection struct {
	Heading string
	Fields  []LetterField
	Body    string
}

// Letter is a formal single-recipient letter.
type Letter struct {
	Letterhead Letterhead
	Title      string
	Reference  string
	Date       string
	Recipient  []string
	Subject    string
	Sections   []LetterSection
	Signatory  string
	SignTitle  string
	Witness    string
}

// LetterRenderer renders letters as portrait A4 PDFs.
type LetterRenderer struct{}

// NewLetterRenderer constructs a letter renderer.
func NewLetterRenderer() *LetterRenderer {
	return &LetterRenderer{}
}

// Render produces the PDF bytes for letter.
func (r *LetterRenderer) Render(letter Letter) ([]byte, error) {
	if strings.TrimSpace(letter.Title) == "" {
		return nil, fmt.Errorf("letter title required")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 18, 20)
	pdf.SetAutoPageBreak(true, 18)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	head := letter.Letterhead
	if head.Name != "" {
		pdf.SetFont("Arial", "B", 15)
		pdf.CellFormat(0, 8, tr(head.Name), "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, line := range nonEmpty(head.Address, joinNonEmpty(" | ", head.Phone, head.Email)) {
			pdf.CellFormat(0, 5, tr(line), "", 1, "C", false, 0, "")
		}
		x, y := pdf.GetXY()
		pdf.Line(20, y+2, 190, y+2)
		pdf.SetXY(x, y+6)
	}

	pdf.SetFont("Arial", "", 10)
	if letter.Reference != "" {
		pdf.CellFormat(0, 6, tr("Ref: "+letter.Reference), "", 1, "", false, 0, "")
	}
	if letter.Date != "" {
		pdf.CellFormat(0, 6, tr("Date: "+letter.Date), "", 1, "", false, 0, "")
	}
	pdf.Ln(3)
	for _, line := range nonEmpty(letter.Recipient...) {
		pdf.CellFormat(0, 5, tr(line), "", 1, "", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr(strings.ToUpper(letter.Title)), "", 1, "C", false, 0, "")
	if letter.Subject != "" {
		pdf.SetFont("Arial", "BU", 10)
		pdf.MultiCell(0, 6, tr("RE: "+letter.Subject), "", "L", false)
	}
	pdf.Ln(2)

	for _, section := range letter.Sections {
		fields := presentFields(section.Fields)
		if len(fields) == 0 && strings.TrimSpace(section.Body) == "" {
			continue
		}
		if section.Heading != "" {
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(0, 7, tr(section.Heading), "", 1, "", false, 0, "")
		}
		for _, f := range fields {
			pdf.SetFont("Arial", "B", 9)
			pdf.CellFormat(55, 6, tr(f.Label), "", 0, "", false, 0, "")
			pdf.SetFont("Arial", "", 9)
			pdf.MultiCell(0, 6, tr(f.Value), "", "L", false)
		}
		if body := strings.TrimSpace(section.Body); body != "" {
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5.5, tr(body), "", "J", false)
		}
		pdf.Ln(2)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(85, 6, "______________________________", "", 0, "", false, 0, "")
	if letter.Witness != "" {
		pdf.CellFormat(0, 6, "______________________________", "", 0, "", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.CellFormat(85, 5, tr(letter.Signatory), "", 0, "", false, 0, "")
	if letter.Witness != "" {
		pdf.CellFormat(0, 5, tr(letter.Witness), "", 0, "", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(85, 5, tr(letter.SignTitle), "", 0, "", false, 0, "")
	if letter.Witness != "" {
		pdf.CellFormat(0, 5, "Witness", "", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render letter: %w", err)
	}
	return buf.Bytes(), nil
}

func presentFields(fields []LetterField) []LetterField {
	out := make([]LetterField, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f.Value) != "" {
			out = append(out, f)
		}
	}
	return out
}

func nonEmpty(lines ...string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	return strings.Join(nonEmpty(parts...), sep)
}
