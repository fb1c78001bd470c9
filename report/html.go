package report

import (
	"bytes"
	"embed"
	"html/template"
	"os"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var htmlTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type htmlCell struct {
	Content template.HTML
	Comment string
}

type htmlRow struct {
	Cells []htmlCell
	// Data distinguishes table body rows from the header and rules rows.
	Data bool
}

// htmlSink buffers the whole table and renders it on Close, either as a
// bare <table> fragment or wrapped in a standalone document.
type htmlSink struct {
	path       string
	standalone bool
	render     CellRenderer

	header []string
	rules  []string
	grid   [][]htmlCell
	global []string
	closed bool
}

func newHTML(path string, standalone bool, render CellRenderer) (*htmlSink, error) {
	if render == nil {
		render = func(raw string, verbatim bool) string {
			return template.HTMLEscapeString(raw)
		}
	}
	return &htmlSink{path: path, standalone: standalone, render: render}, nil
}

func (s *htmlSink) Begin(header, rules []string, dataRows int) error {
	s.header = header
	s.rules = rules
	s.grid = make([][]htmlCell, dataRows)
	for i := range s.grid {
		s.grid[i] = make([]htmlCell, len(header))
	}
	return nil
}

func (s *htmlSink) at(c Coords) *htmlCell {
	if c.Row < 0 || c.Row >= len(s.grid) {
		return nil
	}
	row := s.grid[c.Row]
	if c.Col < 0 || c.Col >= len(row) {
		return nil
	}
	return &row[c.Col]
}

func (s *htmlSink) WriteCell(c Coords, raw string, verbatim bool) error {
	if cell := s.at(c); cell != nil {
		cell.Content = template.HTML(s.render(raw, verbatim))
	}
	return nil
}

func (s *htmlSink) Report(c Coords, message string) error {
	cell := s.at(c)
	if cell == nil {
		s.global = append(s.global, message)
		return nil
	}
	if cell.Comment != "" {
		cell.Comment += "; " + message
	} else {
		cell.Comment = message
	}
	return nil
}

func (s *htmlSink) ReportGlobal(message string) error {
	s.global = append(s.global, message)
	return nil
}

func (s *htmlSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	rows := make([]htmlRow, 0, len(s.grid)+2)
	for _, meta := range [][]string{s.header, s.rules} {
		r := htmlRow{Cells: make([]htmlCell, len(meta))}
		for i, v := range meta {
			r.Cells[i] = htmlCell{Content: template.HTML(template.HTMLEscapeString(v))}
		}
		rows = append(rows, r)
	}
	for _, gr := range s.grid {
		rows = append(rows, htmlRow{Cells: gr, Data: true})
	}

	var table bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&table, "table.html.tmpl", map[string]any{
		"Rows":   rows,
		"Global": s.global,
	}); err != nil {
		return err
	}

	out := table.Bytes()
	if s.standalone {
		var page bytes.Buffer
		if err := htmlTemplates.ExecuteTemplate(&page, "page.html.tmpl", map[string]any{
			"Table": template.HTML(table.String()),
		}); err != nil {
			return err
		}
		out = page.Bytes()
	}
	return os.WriteFile(s.path, out, 0o644)
}
