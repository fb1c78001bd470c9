// Package report provides the output abstraction validation writes to:
// line-oriented text, an annotated spreadsheet, or a templated HTML
// document, selected by the destination path's extension.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Coords locates one table cell. Row and Col are zero-based over the data
// rows; every user-visible rendering is 1-based.
type Coords struct {
	Row int
	Col int
}

func (c Coords) String() string {
	return fmt.Sprintf("row: %d, column: %d", c.Row+1, c.Col+1)
}

// CellRenderer turns raw cell content into backend-specific markup. The
// verbatim flag asks for the content untouched (used for columns that
// carry no query rules, where entity lookups would be noise).
type CellRenderer func(raw string, verbatim bool) string

// Options configures sink construction.
type Options struct {
	// TableName identifies the table in output that has no filename of its
	// own (the stdout text sink's banner line).
	TableName string
	// Author is stamped on spreadsheet cell comments.
	Author string
	// Standalone wraps the HTML table fragment in a full document.
	Standalone bool
	// RenderCell renders mirrored cell content for backends that carry it.
	RenderCell CellRenderer
}

// Sink receives validation output. Begin is called once before any cell is
// visited; Close must be called exactly once on every exit path, including
// error paths, and flushes whatever the backend buffered.
type Sink interface {
	// Begin receives the header and rules rows and the number of data rows.
	Begin(header, rules []string, dataRows int) error

	// WriteCell mirrors a data cell's content into backends that reproduce
	// the table (spreadsheet, HTML). Text sinks ignore it.
	WriteCell(c Coords, raw string, verbatim bool) error

	// Report records a validation failure at the given cell.
	Report(c Coords, message string) error

	// ReportGlobal records a message with no cell location, for setup and
	// teardown diagnostics.
	ReportGlobal(message string) error

	// Close flushes and releases the backend.
	Close() error
}

// ForPath selects a sink by the output path's extension: ".xlsx" gets the
// annotated spreadsheet, ".html" the templated document, anything else
// line-oriented text. An empty path writes text to standard output,
// prefixed with an identifying banner.
func ForPath(path string, opts Options) (Sink, error) {
	if path == "" {
		return newStdoutText(opts.TableName), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return newXLSX(path, opts.Author)
	case ".html":
		return newHTML(path, opts.Standalone, opts.RenderCell)
	default:
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		return newFileText(f), nil
	}
}
