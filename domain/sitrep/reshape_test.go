package sitrep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
)

func day(s string) core.Day {
	d, err := core.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// sheetGrid builds a grid with the fixed SitRep layout: twelve blank filler
// rows, the date header at row 13, metrics at row 14 and data from row 15.
func sheetGrid(dates, metrics []Cell, dataRows ...[]Cell) Grid {
	cells := make([][]Cell, 0, DataStartRow+len(dataRows))
	for i := 0; i < DateHeaderRow; i++ {
		cells = append(cells, nil)
	}
	cells = append(cells, dates, metrics)
	cells = append(cells, dataRows...)
	return NewGrid(cells)
}

func metaCells(region, code, name string) []Cell {
	return []Cell{
		NewTextCell("x"),
		NewTextCell(region),
		NewTextCell("ignored"),
		NewTextCell(code),
		NewTextCell(name),
	}
}

func TestReshapeWorkedExample(t *testing.T) {
	d := day("2025-01-01")
	dates := []Cell{{}, {}, {}, {}, {}, NewDateCell(d), NewDateCell(d)}
	metrics := []Cell{{}, {}, {}, {}, {}, NewTextCell("Beds Available"), NewTextCell("Beds Occupied")}
	row := append(metaCells("North", "R1", "Trust One"), NewNumberCell(120), NewNumberCell(95))

	records := Reshape(sheetGrid(dates, metrics, row), "Total G&A beds")
	require.Len(t, records, 2)

	assert.Equal(t, Record{
		Date:      d,
		Region:    "North",
		TrustCode: core.TrustCode("R1"),
		TrustName: "Trust One",
		Metric:    core.MetricKey("Total G&A beds_Beds Available"),
		Value:     120,
	}, records[0])
	assert.Equal(t, core.MetricKey("Total G&A beds_Beds Occupied"), records[1].Metric)
	assert.Equal(t, 95.0, records[1].Value)
}

func TestReshapeForwardFillsDates(t *testing.T) {
	// One explicit date heads the block; the following metric columns have no
	// date of their own and inherit it.
	d := day("2024-12-15")
	dates := []Cell{{}, {}, {}, {}, {}, NewDateCell(d), NewEmptyCell(), NewEmptyCell()}
	metrics := []Cell{{}, {}, {}, {}, {}, NewTextCell("Open"), NewTextCell("Occupied"), NewTextCell("Closed")}
	row := append(metaCells("South", "R2", "Trust Two"),
		NewNumberCell(10), NewNumberCell(8), NewNumberCell(1))

	records := Reshape(sheetGrid(dates, metrics, row), "Flu")
	require.Len(t, records, 3)
	for _, rec := range records {
		assert.True(t, rec.Date.Equal(d), "record %s should inherit the block date", rec.Metric)
	}
}

func TestReshapeExcludesColumnsBeforeFirstDate(t *testing.T) {
	d := day("2024-12-15")
	// Column 5 has a metric but no date yet; column 6 starts the dated block.
	dates := []Cell{{}, {}, {}, {}, {}, NewEmptyCell(), NewDateCell(d)}
	metrics := []Cell{{}, {}, {}, {}, {}, NewTextCell("Orphan"), NewTextCell("Occupied")}
	row := append(metaCells("East", "R3", "Trust Three"), NewNumberCell(7), NewNumberCell(9))

	records := Reshape(sheetGrid(dates, metrics, row), "RSV")
	require.Len(t, records, 1)
	assert.Equal(t, core.MetricKey("RSV_Occupied"), records[0].Metric)
	assert.Equal(t, 9.0, records[0].Value)
}

func TestReshapeDropsRowsWithoutTrustName(t *testing.T) {
	d := day("2025-01-01")
	dates := []Cell{{}, {}, {}, {}, {}, NewDateCell(d)}
	metrics := []Cell{{}, {}, {}, {}, {}, NewTextCell("Beds")}

	summaryRow := []Cell{NewTextCell("x"), NewTextCell("England"), {}, NewTextCell("TOTAL"), NewEmptyCell(), NewNumberCell(99999)}
	dataRow := append(metaCells("North", "R1", "Trust One"), NewNumberCell(42))

	records := Reshape(sheetGrid(dates, metrics, summaryRow, dataRow), "Adult G&A beds")
	require.Len(t, records, 1)
	assert.Equal(t, "Trust One", records[0].TrustName)
}

func TestReshapeAllSummaryRowsYieldsEmpty(t *testing.T) {
	d := day("2025-01-01")
	dates := []Cell{{}, {}, {}, {}, {}, NewDateCell(d)}
	metrics := []Cell{{}, {}, {}, {}, {}, NewTextCell("Beds")}
	rowA := []Cell{{}, NewTextCell("England"), {}, {}, NewEmptyCell(), NewNumberCell(1)}
	rowB := []Cell{{}, NewTextCell("England"), {}, {}, NewEmptyCell(), NewNumberCell(2)}

	records := Reshape(sheetGrid(dates, metrics, rowA, rowB), "Flu")
	assert.Empty(t, records)
}

func TestReshapeSkipsNonNumericValues(t *testing.T) {
	d := day("2025-01-01")
	dates := []Cell{{}, {}, {}, {}, {}, NewDateCell(d), NewEmptyCell(), NewEmptyCell()}
	metrics := []Cell{{}, {}, {}, {}, {}, NewTextCell("A"), NewTextCell("B"), NewTextCell("C")}
	row := append(metaCells("North", "R1", "Trust One"),
		NewTextCell("suppressed"), NewEmptyCell(), NewNumberCell(3))

	records := Reshape(sheetGrid(dates, metrics, row), "Flu")
	require.Len(t, records, 1)
	assert.Equal(t, core.MetricKey("Flu_C"), records[0].Metric)
}

func TestReshapeNoResolvableDates(t *testing.T) {
	dates := []Cell{{}, {}, {}, {}, {}, NewTextCell("not a date"), NewEmptyCell()}
	metrics := []Cell{{}, {}, {}, {}, {}, NewTextCell("A"), NewTextCell("B")}
	row := append(metaCells("North", "R1", "Trust One"), NewNumberCell(1), NewNumberCell(2))

	records := Reshape(sheetGrid(dates, metrics, row), "Flu")
	assert.Empty(t, records, "a sheet with zero resolvable dates yields zero records")
}

func TestReshapeShortGrid(t *testing.T) {
	// Fewer rows than the fixed header layout: nothing to do, no panic.
	records := Reshape(NewGrid([][]Cell{{NewTextCell("title")}}), "Flu")
	assert.Empty(t, records)
}

func TestReshapeRecordOrder(t *testing.T) {
	d1, d2 := day("2025-01-01"), day("2025-01-02")
	dates := []Cell{{}, {}, {}, {}, {}, NewDateCell(d1), NewDateCell(d2)}
	metrics := []Cell{{}, {}, {}, {}, {}, NewTextCell("M"), NewTextCell("M")}
	rowA := append(metaCells("North", "R1", "Trust One"), NewNumberCell(1), NewNumberCell(2))
	rowB := append(metaCells("South", "R2", "Trust Two"), NewNumberCell(3), NewNumberCell(4))

	records := Reshape(sheetGrid(dates, metrics, rowA, rowB), "Flu")
	require.Len(t, records, 4)
	// Row-major, column order within each row.
	assert.Equal(t, []float64{1, 2, 3, 4}, []float64{
		records[0].Value, records[1].Value, records[2].Value, records[3].Value,
	})
	assert.True(t, records[0].Date.Equal(d1))
	assert.True(t, records[1].Date.Equal(d2))
}

func TestCellNumeric(t *testing.T) {
	tests := []struct {
		name  string
		cell  Cell
		want  float64
		valid bool
	}{
		{"number", NewNumberCell(12.5), 12.5, true},
		{"integer text", NewTextCell("120"), 120, true},
		{"float text", NewTextCell(" 3.25 "), 3.25, true},
		{"thousands separator", NewTextCell("1,234"), 1234, true},
		{"non-numeric text", NewTextCell("n/a"), 0, false},
		{"empty", NewEmptyCell(), 0, false},
		{"blank text collapses to empty", NewTextCell("   "), 0, false},
		{"date", NewDateCell(core.NewDay(time.Now())), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.cell.Numeric()
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
