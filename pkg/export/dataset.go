package export

// Column maps a row key to the header printed for it.
type Column struct {
	Key   string
	Title string
	// Width is the relative PDF column weight; zero means 1.
	Width float64
}

// Dataset is a tabular register such as the disciplinary case list.
type Dataset struct {
	Title   string
	Columns []Column
	Rows    []map[string]string
}

func (d Dataset) headers() []string {
	out := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		out[i] = col.Title
		if out[i] == "" {
			out[i] = col.Key
		}
	}
	return out
}

func (d Dataset) record(row map[string]string) []string {
	out := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		out[i] = row[col.Key]
	}
	return out
}
