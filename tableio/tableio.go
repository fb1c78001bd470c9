// Package tableio reads tabular input for validation. Format is chosen by
// file extension: comma-separated, tab-separated, or spreadsheet.
package tableio

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ontovet/ontovet/errors"
)

// ReadTable loads the table at path into rows of cells. Rows may be
// ragged; callers must not assume uniform width. The first sheet is used
// for spreadsheet input.
func ReadTable(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readSeparated(path, ',')
	case ".tsv", ".tab":
		return readSeparated(path, '\t')
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, errors.Newf("unsupported table format %q", filepath.Ext(path))
	}
}

func readSeparated(path string, sep rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening table %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = sep
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading table %s", path)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening workbook %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Newf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "reading sheet %s", sheets[0])
	}
	return rows, nil
}
