package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCoordsString(t *testing.T) {
	assert.Equal(t, "row: 1, column: 1", Coords{}.String())
	assert.Equal(t, "row: 4, column: 2", Coords{Row: 3, Col: 1}.String())
}

func TestForPathSelection(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want any
	}{
		{"stdout", "", &textSink{}},
		{"xlsx", filepath.Join(dir, "out.xlsx"), &xlsxSink{}},
		{"xlsx uppercase", filepath.Join(dir, "out.XLSX"), &xlsxSink{}},
		{"html", filepath.Join(dir, "out.html"), &htmlSink{}},
		{"txt", filepath.Join(dir, "out.txt"), &textSink{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ForPath(tt.path, Options{TableName: "table.csv"})
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
			require.NoError(t, s.Close())
		})
	}
}

func TestTextSink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")

	s, err := ForPath(path, Options{})
	require.NoError(t, err)

	require.NoError(t, s.Begin([]string{"ID", "Label"}, []string{"", "subclass-of %1"}, 2))
	require.NoError(t, s.WriteCell(Coords{Row: 0, Col: 0}, "ignored", false))
	require.NoError(t, s.Report(Coords{Row: 1, Col: 1}, "'Cat' is not a subclass of 'Dog'"))
	require.NoError(t, s.ReportGlobal("unable to set up reasoner"))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "At row: 2, column: 2: 'Cat' is not a subclass of 'Dog'")
	assert.Contains(t, out, "unable to set up reasoner")
	assert.NotContains(t, out, "ignored")
}

func TestXLSXSink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xlsx")

	s, err := newXLSX(path, "ontovet")
	require.NoError(t, err)

	require.NoError(t, s.Begin([]string{"ID", "Label"}, []string{"", "is-required"}, 1))
	require.NoError(t, s.WriteCell(Coords{Row: 0, Col: 0}, "ex:0001", false))
	require.NoError(t, s.WriteCell(Coords{Row: 0, Col: 1}, "", false))
	require.NoError(t, s.Report(Coords{Row: 0, Col: 1}, "cell is empty"))
	require.NoError(t, s.Report(Coords{Row: 0, Col: 1}, "second failure"))
	require.NoError(t, s.Close())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	// Header and rules rows shift data down by two.
	v, err := f.GetCellValue(xlsxSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", v)
	v, err = f.GetCellValue(xlsxSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "is-required", v)
	v, err = f.GetCellValue(xlsxSheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "ex:0001", v)

	comments, err := f.GetComments(xlsxSheet)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "B3", comments[0].Cell)
	require.NotEmpty(t, comments[0].Paragraph)
	assert.Equal(t, "cell is empty; second failure", comments[0].Paragraph[0].Text)
}

func TestHTMLSink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.html")

	render := func(raw string, verbatim bool) string {
		if verbatim {
			return raw
		}
		return "<b>" + raw + "</b>"
	}

	s, err := newHTML(path, false, render)
	require.NoError(t, err)

	require.NoError(t, s.Begin([]string{"ID", "Label"}, []string{"", "is-required"}, 1))
	require.NoError(t, s.WriteCell(Coords{Row: 0, Col: 0}, "ex:0001", true))
	require.NoError(t, s.WriteCell(Coords{Row: 0, Col: 1}, "Cat", false))
	require.NoError(t, s.Report(Coords{Row: 0, Col: 1}, "not a subclass of 'Dog'"))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "<b>Cat</b>")
	assert.Contains(t, out, "ex:0001")
	assert.Contains(t, out, `class="table-danger"`)
	assert.Contains(t, out, `title="not a subclass of &#39;Dog&#39;"`)
	assert.False(t, strings.Contains(out, "<!doctype html>"))
}

func TestHTMLSinkStandalone(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.html")

	s, err := newHTML(path, true, nil)
	require.NoError(t, err)
	require.NoError(t, s.Begin([]string{"ID"}, []string{""}, 0))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!doctype html>")
	assert.Contains(t, string(data), "<table")
}
