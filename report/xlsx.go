package report

import (
	"github.com/xuri/excelize/v2"

	"github.com/ontovet/ontovet/errors"
)

const xlsxSheet = "Sheet1"

// xlsxSink reproduces the table in a workbook. Failing cells get a red
// fill with white text plus a comment carrying the failure message; repeat
// failures on one cell append to the existing comment.
type xlsxSink struct {
	f      *excelize.File
	path   string
	author string

	// header and rules occupy rows above the data, shifting every data
	// coordinate down by this much.
	headerRows int

	failStyle int
	comments  map[string]string
	closed    bool
}

func newXLSX(path, author string) (*xlsxSink, error) {
	f := excelize.NewFile()
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FF0000"}, Pattern: 1},
		Font: &excelize.Font{Color: "FFFFFF"},
	})
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "creating failure style")
	}
	return &xlsxSink{
		f:         f,
		path:      path,
		author:    author,
		failStyle: style,
		comments:  make(map[string]string),
	}, nil
}

func (s *xlsxSink) Begin(header, rules []string, dataRows int) error {
	for _, row := range [][]string{header, rules} {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, s.headerRows+1)
			if err != nil {
				return err
			}
			if err := s.f.SetCellValue(xlsxSheet, cell, v); err != nil {
				return err
			}
		}
		s.headerRows++
	}
	return nil
}

func (s *xlsxSink) cellName(c Coords) (string, error) {
	return excelize.CoordinatesToCellName(c.Col+1, c.Row+s.headerRows+1)
}

func (s *xlsxSink) WriteCell(c Coords, raw string, verbatim bool) error {
	cell, err := s.cellName(c)
	if err != nil {
		return err
	}
	return s.f.SetCellValue(xlsxSheet, cell, raw)
}

func (s *xlsxSink) Report(c Coords, message string) error {
	cell, err := s.cellName(c)
	if err != nil {
		return err
	}
	if err := s.f.SetCellStyle(xlsxSheet, cell, cell, s.failStyle); err != nil {
		return err
	}
	text := message
	if prev, ok := s.comments[cell]; ok {
		text = prev + "; " + message
		if err := s.f.DeleteComment(xlsxSheet, cell); err != nil {
			return err
		}
	}
	s.comments[cell] = text
	return s.f.AddComment(xlsxSheet, excelize.Comment{
		Cell:   cell,
		Author: s.author,
		Paragraph: []excelize.RichTextRun{
			{Text: text},
		},
	})
}

func (s *xlsxSink) ReportGlobal(message string) error {
	// No cell to attach to; surface on the header corner cell instead of
	// silently dropping it.
	cell := "A1"
	if prev, ok := s.comments[cell]; ok {
		message = prev + "; " + message
		if err := s.f.DeleteComment(xlsxSheet, cell); err != nil {
			return err
		}
	}
	s.comments[cell] = message
	return s.f.AddComment(xlsxSheet, excelize.Comment{
		Cell:   cell,
		Author: s.author,
		Paragraph: []excelize.RichTextRun{
			{Text: message},
		},
	})
}

func (s *xlsxSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.f.SaveAs(s.path)
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}
