package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// textSink writes one line per failure. It mirrors no cell content.
type textSink struct {
	w      *bufio.Writer
	closer io.Closer
	banner string
	closed bool
}

func newStdoutText(tableName string) *textSink {
	banner := ""
	if tableName != "" {
		banner = fmt.Sprintf("Validating %s ...", tableName)
	}
	return &textSink{w: bufio.NewWriter(os.Stdout), banner: banner}
}

func newFileText(f *os.File) *textSink {
	return &textSink{w: bufio.NewWriter(f), closer: f}
}

func (s *textSink) Begin(header, rules []string, dataRows int) error {
	if s.banner != "" {
		if _, err := fmt.Fprintln(s.w, s.banner); err != nil {
			return err
		}
	}
	return nil
}

func (s *textSink) WriteCell(c Coords, raw string, verbatim bool) error {
	return nil
}

func (s *textSink) Report(c Coords, message string) error {
	_, err := fmt.Fprintf(s.w, "At %s: %s\n", c, message)
	return err
}

func (s *textSink) ReportGlobal(message string) error {
	_, err := fmt.Fprintln(s.w, message)
	return err
}

func (s *textSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.w.Flush()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
