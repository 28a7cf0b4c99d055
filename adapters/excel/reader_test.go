package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/sitrep"
)

// writeFixtureWorkbook builds a minimal SitRep-shaped workbook: dates on
// spreadsheet row 14, metrics on row 15, data from row 16 (1-indexed).
func writeFixtureWorkbook(t *testing.T, dir, name, sheet string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(sheet)
	require.NoError(t, err)

	dateRow := sitrep.DateHeaderRow + 1
	metricRow := sitrep.MetricHeaderRow + 1
	dataRow := sitrep.DataStartRow + 1

	require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("F%d", dateRow), "2025-01-01"))
	require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("G%d", dateRow), "2025-01-01"))
	require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("F%d", metricRow), "Beds Available"))
	require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("G%d", metricRow), "Beds Occupied"))

	require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("B%d", dataRow), "North"))
	require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("D%d", dataRow), "R1"))
	require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("E%d", dataRow), "Trust One"))
	require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("F%d", dataRow), 120))
	require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("G%d", dataRow), 95))

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadGridAndReshape(t *testing.T) {
	dir := t.TempDir()
	path := writeFixtureWorkbook(t, dir, "sitrep.xlsx", "Total G&A beds")

	reader := NewWorkbookReader()
	grid, err := reader.LoadGrid(path, "Total G&A beds")
	require.NoError(t, err)

	records := sitrep.Reshape(grid, "Total G&A beds")
	require.Len(t, records, 2)
	assert.Equal(t, "2025-01-01", records[0].Date.String())
	assert.Equal(t, "Trust One", records[0].TrustName)
	assert.Equal(t, core.TrustCode("R1"), records[0].TrustCode)
	assert.Equal(t, core.MetricKey("Total G&A beds_Beds Available"), records[0].Metric)
	assert.Equal(t, 120.0, records[0].Value)
	assert.Equal(t, 95.0, records[1].Value)
}

func TestLoadGridMissingSheet(t *testing.T) {
	dir := t.TempDir()
	path := writeFixtureWorkbook(t, dir, "sitrep.xlsx", "Total G&A beds")

	reader := NewWorkbookReader()
	_, err := reader.LoadGrid(path, "Adult critical care")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrSheetNotFound)
}

func TestLoadGridMissingFile(t *testing.T) {
	reader := NewWorkbookReader()
	_, err := reader.LoadGrid(filepath.Join(t.TempDir(), "absent.xlsx"), "Flu")
	assert.ErrorIs(t, err, core.ErrNoWorkbook)
}

func TestDiscoverFirstWorkbook(t *testing.T) {
	dir := t.TempDir()
	writeFixtureWorkbook(t, dir, "b_second.xlsx", "Flu")
	writeFixtureWorkbook(t, dir, "a_first.xlsx", "Flu")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	reader := NewWorkbookReader()
	path, err := reader.Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, "a_first.xlsx", filepath.Base(path))
}

func TestDiscoverEmptyDir(t *testing.T) {
	reader := NewWorkbookReader()
	_, err := reader.Discover(t.TempDir())
	assert.ErrorIs(t, err, core.ErrNoWorkbook)
}
