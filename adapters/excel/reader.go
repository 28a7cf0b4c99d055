package excel

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/adapters/coercer"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/sitrep"
)

// WorkbookReader loads SitRep workbook sheets into typed cell grids
type WorkbookReader struct {
	coercer *coercer.CellCoercer
}

// NewWorkbookReader creates a reader with default coercion rules
func NewWorkbookReader() *WorkbookReader {
	return &WorkbookReader{coercer: coercer.New(coercer.DefaultConfig())}
}

// Discover returns the first .xlsx file under dir, in lexical order.
// Multiple workbooks in one drop are duplicates of the same publication,
// so only the first is processed.
func (r *WorkbookReader) Discover(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	if err != nil {
		return "", fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w in %s", core.ErrNoWorkbook, dir)
	}
	sort.Strings(matches)
	if len(matches) > 1 {
		log.Printf("[WorkbookReader] %d workbooks found, using %s", len(matches), filepath.Base(matches[0]))
	}
	return matches[0], nil
}

// LoadGrid reads one named sheet into a grid of typed cells
func (r *WorkbookReader) LoadGrid(path, sheetName string) (sitrep.Grid, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return sitrep.Grid{}, fmt.Errorf("%w: %s", core.ErrNoWorkbook, path)
	}

	startTime := time.Now()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return sitrep.Grid{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheetName)
	if err != nil || idx < 0 {
		return sitrep.Grid{}, fmt.Errorf("%w: %q", core.ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return sitrep.Grid{}, core.NewSheetError(sheetName, err)
	}

	grid := r.buildGrid(rows)
	log.Printf("[WorkbookReader] sheet %q read in %.2fms (%d rows)",
		sheetName, float64(time.Since(startTime).Nanoseconds())/1e6, grid.Rows())
	return grid, nil
}

// buildGrid coerces raw cell strings row by row. The date header row gets
// the serial-aware date coercion; every other row the generic one.
func (r *WorkbookReader) buildGrid(rows [][]string) sitrep.Grid {
	cells := make([][]sitrep.Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]sitrep.Cell, len(row))
		for j, raw := range row {
			if i == sitrep.DateHeaderRow {
				cells[i][j] = r.coercer.CoerceHeaderDate(raw)
			} else {
				cells[i][j] = r.coercer.CoerceCell(raw)
			}
		}
	}
	return sitrep.NewGrid(cells)
}
