package tableio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadTableCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.csv")
	require.NoError(t, os.WriteFile(path, []byte("ID,Label\nex:0001,Cat\nex:0002,\"Siamese, blue\"\n"), 0o644))

	rows, err := ReadTable(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Label"}, rows[0])
	assert.Equal(t, []string{"ex:0002", "Siamese, blue"}, rows[2])
}

func TestReadTableTSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.tsv")
	require.NoError(t, os.WriteFile(path, []byte("ID\tLabel\nex:0001\tCat\nex:0002\n"), 0o644))

	rows, err := ReadTable(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Label"}, rows[0])
	// Ragged rows pass through.
	assert.Equal(t, []string{"ex:0002"}, rows[2])
}

func TestReadTableXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "ID"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Label"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "ex:0001"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "Cat"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := ReadTable(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ID", "Label"}, rows[0])
	assert.Equal(t, []string{"ex:0001", "Cat"}, rows[1])
}

func TestReadTableUnsupported(t *testing.T) {
	_, err := ReadTable("table.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported table format")
}
