// Package testkit provides in-memory fakes for the pipeline's ports plus
// small fixture builders, so service-level tests run without files or
// network access.
package testkit

import (
	"context"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/sitrep"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/trends"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/weather"
)

// FakeWorkbookSource serves pre-built grids keyed by sheet name
type FakeWorkbookSource struct {
	Path         string
	Grids        map[string]sitrep.Grid
	DiscoverErr  error
	SheetErr     map[string]error
	LoadedSheets []string
}

// NewFakeWorkbookSource creates a source with no sheets
func NewFakeWorkbookSource() *FakeWorkbookSource {
	return &FakeWorkbookSource{
		Path:     "fixture.xlsx",
		Grids:    make(map[string]sitrep.Grid),
		SheetErr: make(map[string]error),
	}
}

func (f *FakeWorkbookSource) Discover(dir string) (string, error) {
	if f.DiscoverErr != nil {
		return "", f.DiscoverErr
	}
	return f.Path, nil
}

func (f *FakeWorkbookSource) LoadGrid(path, sheetName string) (sitrep.Grid, error) {
	f.LoadedSheets = append(f.LoadedSheets, sheetName)
	if err, ok := f.SheetErr[sheetName]; ok {
		return sitrep.Grid{}, err
	}
	grid, ok := f.Grids[sheetName]
	if !ok {
		return sitrep.Grid{}, core.NewSheetError(sheetName, core.ErrSheetNotFound)
	}
	return grid, nil
}

// FakeWeatherProvider returns canned observations per city
type FakeWeatherProvider struct {
	ByCity  map[string][]weather.DailyObservation
	Err     map[string]error
	Fetched []string
}

func NewFakeWeatherProvider() *FakeWeatherProvider {
	return &FakeWeatherProvider{
		ByCity: make(map[string][]weather.DailyObservation),
		Err:    make(map[string]error),
	}
}

func (f *FakeWeatherProvider) FetchDaily(ctx context.Context, city weather.City, dates core.DateRange) ([]weather.DailyObservation, error) {
	f.Fetched = append(f.Fetched, city.Name)
	if err, ok := f.Err[city.Name]; ok {
		return nil, err
	}
	return f.ByCity[city.Name], nil
}

// FakeTrendsProvider returns canned interest points per keyword
type FakeTrendsProvider struct {
	ByKeyword map[string][]trends.InterestPoint
	Err       map[string]error
	Fetched   []string
}

func NewFakeTrendsProvider() *FakeTrendsProvider {
	return &FakeTrendsProvider{
		ByKeyword: make(map[string][]trends.InterestPoint),
		Err:       make(map[string]error),
	}
}

func (f *FakeTrendsProvider) FetchInterest(ctx context.Context, keyword string, dates core.DateRange) ([]trends.InterestPoint, error) {
	f.Fetched = append(f.Fetched, keyword)
	if err, ok := f.Err[keyword]; ok {
		return nil, err
	}
	return f.ByKeyword[keyword], nil
}

// MemoryRecordSink captures written records in memory
type MemoryRecordSink struct {
	Records []sitrep.Record
	Err     error
	Writes  int
}

func (m *MemoryRecordSink) WriteRecords(ctx context.Context, records []sitrep.Record) error {
	m.Writes++
	if m.Err != nil {
		return m.Err
	}
	m.Records = append(m.Records, records...)
	return nil
}

// MemoryWeatherSink captures written observations in memory
type MemoryWeatherSink struct {
	Observations []weather.DailyObservation
	Err          error
}

func (m *MemoryWeatherSink) WriteObservations(ctx context.Context, obs []weather.DailyObservation) error {
	if m.Err != nil {
		return m.Err
	}
	m.Observations = append(m.Observations, obs...)
	return nil
}

// MemoryTrendsSink captures written interest points in memory
type MemoryTrendsSink struct {
	Points []trends.InterestPoint
	Err    error
}

func (m *MemoryTrendsSink) WritePoints(ctx context.Context, points []trends.InterestPoint) error {
	if m.Err != nil {
		return m.Err
	}
	m.Points = append(m.Points, points...)
	return nil
}

// Day parses an ISO date or panics; fixtures only
func Day(s string) core.Day {
	d, err := core.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// SheetGrid builds a grid with the SitRep layout: header padding rows, a
// date header row, a metric header row, then data rows.
func SheetGrid(dates []core.Day, metrics []string, dataRows ...[]sitrep.Cell) sitrep.Grid {
	rows := make([][]sitrep.Cell, 0, sitrep.DataStartRow+len(dataRows))
	for i := 0; i < sitrep.DateHeaderRow; i++ {
		rows = append(rows, nil)
	}

	dateRow := make([]sitrep.Cell, sitrep.FirstDataCol+len(dates))
	for i, d := range dates {
		if !d.IsZero() {
			dateRow[sitrep.FirstDataCol+i] = sitrep.NewDateCell(d)
		}
	}
	rows = append(rows, dateRow)

	metricRow := make([]sitrep.Cell, sitrep.FirstDataCol+len(metrics))
	for i, m := range metrics {
		metricRow[sitrep.FirstDataCol+i] = sitrep.NewTextCell(m)
	}
	rows = append(rows, metricRow)

	rows = append(rows, dataRows...)
	return sitrep.NewGrid(rows)
}

// DataRow builds one data row: region, trust code, trust name metadata
// followed by numeric values in the data columns.
func DataRow(region, trustCode, trustName string, values ...float64) []sitrep.Cell {
	row := make([]sitrep.Cell, sitrep.FirstDataCol+len(values))
	row[sitrep.ColRegion] = sitrep.NewTextCell(region)
	row[sitrep.ColTrustCode] = sitrep.NewTextCell(trustCode)
	row[sitrep.ColTrustName] = sitrep.NewTextCell(trustName)
	for i, v := range values {
		row[sitrep.FirstDataCol+i] = sitrep.NewNumberCell(v)
	}
	return row
}
