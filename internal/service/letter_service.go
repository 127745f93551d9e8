package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/noah-isme/hr-disciplinary-api/internal/authz"
	"github.com/noah-isme/hr-disciplinary-api/internal/discipline"
	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/internal/repository"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
	"github.com/noah-isme/hr-disciplinary-api/pkg/export"
	"github.com/noah-isme/hr-disciplinary-api/pkg/storage"
)

type letterRenderer interface {
	Render(letter export.Letter) ([]byte, error)
}

type fileStore interface {
	Save(name string, data []byte) (string, error)
	Open(name string) (*os.File, error)
}

type urlSigner interface {
	Generate(ownerID, relPath string) (string, time.Time, error)
	Parse(token string, allowExpired bool) (ownerID, relPath string, expiresAt time.Time, err error)
}

// LetterConfig describes the organisation printed on letters and where the
// download endpoint lives.
type LetterConfig struct {
	Letterhead   export.Letterhead
	DownloadPath string
}

// LetterService generates decision letters and serves them via signed links.
type LetterService struct {
	WorkflowDeps
	renderer letterRenderer
	storage  fileStore
	signer   urlSigner
	config   LetterConfig
}

// NewLetterService constructs the service.
func NewLetterService(renderer letterRenderer, storage fileStore, signer urlSigner, config LetterConfig, deps WorkflowDeps) *LetterService {
	if config.DownloadPath == "" {
		config.DownloadPath = "/api/v1/letters/download"
	}
	return &LetterService{
		WorkflowDeps: deps.withDefaults(),
		renderer:     renderer,
		storage:      storage,
		signer:       signer,
		config:       config,
	}
}

// Generate renders the decision letter of a case, stores it and returns a
// signed download link.
func (s *LetterService) Generate(ctx context.Context, actor *models.JWTClaims, caseID string) (*dto.LetterResponse, error) {
	if err := authz.ManageCase(actor); err != nil {
		return nil, err
	}
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.DecisionOutcome == nil {
		return nil, s.reject(appErrors.UserError("record the decision before generating the letter"))
	}
	employee, err := s.Employees.GetByID(ctx, c.EmployeeID)
	if err != nil {
		return nil, lookupError(err, "employee")
	}
	offense, err := s.Offenses.GetByID(ctx, c.OffenseClassificationID)
	if err != nil {
		return nil, lookupError(err, "offense classification")
	}

	today := s.today()
	discipline.DeriveCase(c, today)
	body, err := s.renderer.Render(s.buildLetter(c, employee, offense, actor, today))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render letter")
	}
	name := fmt.Sprintf("cases/%s/decision-%s.pdf", c.ID, strings.ReplaceAll(c.Reference, "/", "-"))
	path, err := s.storage.Save(name, body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store letter")
	}

	updated := *c
	updated.LetterPath = &path
	t := discipline.Transition{
		Entity:   models.EntityCase,
		EntityID: c.ID,
		Name:     discipline.CaseLetterGenerated,
		From:     string(c.State),
		To:       string(c.State),
	}
	if err := s.commit(ctx, &updated, actor, repository.ChangeSet{UpdateCase: &updated}, t); err != nil {
		return nil, err
	}
	return s.sign(c.ID, path)
}

// Link signs a fresh download link for an already generated letter.
func (s *LetterService) Link(ctx context.Context, actor *models.JWTClaims, caseID string) (*dto.LetterResponse, error) {
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if err := authz.ViewCase(actor, c); err != nil {
		return nil, err
	}
	if c.LetterPath == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no letter has been generated for this case")
	}
	return s.sign(c.ID, *c.LetterPath)
}

// Download resolves a signed token to the stored letter. The caller closes the
// returned reader.
func (s *LetterService) Download(ctx context.Context, token string) (io.ReadCloser, string, error) {
	caseID, path, _, err := s.signer.Parse(token, false)
	if errors.Is(err, storage.ErrTokenExpired) {
		return nil, "", appErrors.Wrap(err, appErrors.ErrForbidden.Code, appErrors.ErrForbidden.Status, "download link expired, request a new one")
	}
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrForbidden.Code, appErrors.ErrForbidden.Status, "invalid download link")
	}
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, "", err
	}
	if c.LetterPath == nil || *c.LetterPath != path {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "letter not found")
	}
	file, err := s.storage.Open(path)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "letter not found")
	}
	return file, strings.ReplaceAll(c.Reference, "/", "-") + ".pdf", nil
}

func (s *LetterService) sign(caseID, path string) (*dto.LetterResponse, error) {
	token, expiresAt, err := s.signer.Generate(caseID, path)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download link")
	}
	return &dto.LetterResponse{
		CaseID:      caseID,
		DownloadURL: s.config.DownloadPath + "?token=" + token,
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *LetterService) buildLetter(c *models.DisciplinaryCase, e *models.Employee, o *models.OffenseClassification, actor *models.JWTClaims, today time.Time) export.Letter {
	outcome := *c.DecisionOutcome
	recipient := []string{e.FullName, deref(e.Position), deref(e.DepartmentName)}

	decision := []export.LetterField{
		{Label: "Outcome", Value: humanize(string(outcome))},
		{Label: "Decision date", Value: formatDate(c.DecisionDate)},
		{Label: "Warning expires", Value: formatDate(c.WarningExpiryDate)},
	}
	switch outcome {
	case models.OutcomeSuspension:
		pay := "without pay"
		if c.SuspensionWithPay {
			pay = "with pay"
		}
		decision = append(decision, export.LetterField{Label: "Suspension", Value: strconv.Itoa(c.SuspensionDays) + " days " + pay})
	case models.OutcomeTermination:
		if c.TerminationType != nil {
			decision = append(decision, export.LetterField{Label: "Termination", Value: humanize(string(*c.TerminationType))})
		}
		if c.NoticePeriodMonths > 0 {
			decision = append(decision, export.LetterField{Label: "Notice period", Value: strconv.Itoa(c.NoticePeriodMonths) + " month(s)"})
		}
	}
	var basis string
	if c.LabourLawBasis != nil {
		basis = humanize(string(*c.LabourLawBasis))
	}

	sections := []export.LetterSection{
		{
			Heading: "Incident",
			Fields: []export.LetterField{
				{Label: "Incident date", Value: c.IncidentDate.Format(time.DateOnly)},
				{Label: "Offense", Value: o.Name},
				{Label: "Severity", Value: humanize(string(c.Severity))},
				{Label: "Legal basis", Value: basis},
			},
			Body: c.Description,
		},
		{Heading: "Decision", Fields: decision, Body: deref(c.DecisionRationale)},
	}
	if outcome != models.OutcomeCleared {
		sections = append(sections, export.LetterSection{
			Heading: "Right of appeal",
			Body: fmt.Sprintf("You may appeal this decision in writing no later than %s.",
				c.AppealDeadline.Format(time.DateOnly)),
		})
	}

	return export.Letter{
		Letterhead: s.config.Letterhead,
		Title:      "Disciplinary decision",
		Reference:  c.Reference,
		Date:       today.Format(time.DateOnly),
		Recipient:  recipient,
		Subject:    o.Name,
		Sections:   sections,
		Signatory:  actor.FullName,
		SignTitle:  string(actor.Role),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

func humanize(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
