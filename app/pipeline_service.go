package app

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/report"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/sitrep"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/trends"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/weather"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/ports"
)

// PipelineDeps wires the pipeline service to its adapters. ExtraRecordSinks
// are best-effort: a failure there is reported but does not fail the run.
type PipelineDeps struct {
	Workbook         ports.WorkbookSource
	Weather          ports.WeatherProvider
	Trends           ports.TrendsProvider
	RecordSink       ports.RecordSink
	ExtraRecordSinks []ports.RecordSink
	WeatherSink      ports.WeatherSink
	TrendsSink       ports.TrendsSink
}

// PipelineConfig holds the run parameters
type PipelineConfig struct {
	Sheets       []string
	Cities       []weather.City
	Keywords     []string
	Range        core.DateRange
	WeatherDelay time.Duration
	TrendsDelay  time.Duration
}

// PipelineService orchestrates the three acquisition stages. External
// providers are polled one item at a time with a fixed pause between
// requests; per-item failures are recorded and iteration continues.
type PipelineService struct {
	deps  PipelineDeps
	cfg   PipelineConfig
	sleep func(time.Duration)
}

// NewPipelineService creates a pipeline service
func NewPipelineService(deps PipelineDeps, cfg PipelineConfig) *PipelineService {
	return &PipelineService{
		deps:  deps,
		cfg:   cfg,
		sleep: time.Sleep,
	}
}

// FetchWeather retrieves daily observations for every configured city,
// sequentially, and persists whatever was fetched.
func (s *PipelineService) FetchWeather(ctx context.Context, rep *report.RunReport) ([]weather.DailyObservation, error) {
	var all []weather.DailyObservation

	for i, city := range s.cfg.Cities {
		if i > 0 {
			s.sleep(s.cfg.WeatherDelay)
		}
		if err := ctx.Err(); err != nil {
			return all, err
		}

		obs, err := s.deps.Weather.FetchDaily(ctx, city, s.cfg.Range)
		if err != nil {
			log.Printf("[Pipeline] weather fetch failed for %s: %v", city.Name, err)
			rep.Add(report.Result{Source: report.SourceWeather, Item: city.Name, Err: err})
			continue
		}
		rep.Add(report.Result{Source: report.SourceWeather, Item: city.Name, Records: len(obs)})
		all = append(all, obs...)
	}

	if len(all) > 0 && s.deps.WeatherSink != nil {
		if err := s.deps.WeatherSink.WriteObservations(ctx, all); err != nil {
			return all, err
		}
	}
	return all, nil
}

// FetchTrends retrieves search interest for every configured keyword,
// sequentially with a longer pause, and persists whatever was fetched.
func (s *PipelineService) FetchTrends(ctx context.Context, rep *report.RunReport) ([]trends.InterestPoint, error) {
	var all []trends.InterestPoint

	for i, keyword := range s.cfg.Keywords {
		if i > 0 {
			s.sleep(s.cfg.TrendsDelay)
		}
		if err := ctx.Err(); err != nil {
			return all, err
		}

		points, err := s.deps.Trends.FetchInterest(ctx, keyword, s.cfg.Range)
		if err != nil {
			log.Printf("[Pipeline] trends fetch failed for %q: %v", keyword, err)
			rep.Add(report.Result{Source: report.SourceTrends, Item: keyword, Err: err})
			continue
		}
		rep.Add(report.Result{Source: report.SourceTrends, Item: keyword, Records: len(points)})
		all = append(all, points...)
	}

	if len(all) > 0 && s.deps.TrendsSink != nil {
		if err := s.deps.TrendsSink.WritePoints(ctx, all); err != nil {
			return all, err
		}
	}
	return all, nil
}

// ExtractSitRep discovers the workbook under dir, reshapes every configured
// sheet into long-format records and persists them. A missing workbook is
// returned as core.ErrNoWorkbook so the caller can leave download
// instructions; a missing or broken sheet only fails that sheet.
func (s *PipelineService) ExtractSitRep(ctx context.Context, dir string, rep *report.RunReport) ([]sitrep.Record, error) {
	path, err := s.deps.Workbook.Discover(dir)
	if err != nil {
		rep.Add(report.Result{Source: report.SourceSitRep, Item: "workbook", Err: err})
		return nil, err
	}

	var all []sitrep.Record
	for _, sheetName := range s.cfg.Sheets {
		if err := ctx.Err(); err != nil {
			return all, err
		}

		grid, err := s.deps.Workbook.LoadGrid(path, sheetName)
		if err != nil {
			rep.Add(report.Result{Source: report.SourceSitRep, Item: sheetName, Err: err})
			if !core.IsSheetError(err) {
				// Workbook-level failure; remaining sheets would fail the same way.
				return all, err
			}
			log.Printf("[Pipeline] sheet %q skipped: %v", sheetName, err)
			continue
		}

		records := sitrep.Reshape(grid, sheetName)
		rep.Add(report.Result{Source: report.SourceSitRep, Item: sheetName, Records: len(records)})
		all = append(all, records...)
	}

	if len(all) > 0 {
		if err := s.writeRecords(ctx, all, rep); err != nil {
			return all, err
		}
	}
	return all, nil
}

func (s *PipelineService) writeRecords(ctx context.Context, records []sitrep.Record, rep *report.RunReport) error {
	if s.deps.RecordSink != nil {
		if err := s.deps.RecordSink.WriteRecords(ctx, records); err != nil {
			return err
		}
	}
	for _, sink := range s.deps.ExtraRecordSinks {
		if err := sink.WriteRecords(ctx, records); err != nil {
			log.Printf("[Pipeline] secondary record sink failed: %v", err)
			rep.Add(report.Result{Source: report.SourceSitRep, Item: "secondary sink", Err: err})
		}
	}
	return nil
}

// RunResult bundles everything a full pipeline run produced
type RunResult struct {
	Report       *report.RunReport
	Records      []sitrep.Record
	Observations []weather.DailyObservation
	Points       []trends.InterestPoint
	NoWorkbook   bool
}

// Run executes all three stages. The only hard failures are sink errors
// and context cancellation; source failures end up in the report.
func (s *PipelineService) Run(ctx context.Context, workbookDir string) (*RunResult, error) {
	rep := report.NewRunReport(core.NewRunID())
	result := &RunResult{Report: rep}
	start := time.Now()

	log.Printf("[Pipeline] run %s started (range %s)", rep.RunID, s.cfg.Range)

	obs, err := s.FetchWeather(ctx, rep)
	if err != nil {
		return result, err
	}
	result.Observations = obs

	points, err := s.FetchTrends(ctx, rep)
	if err != nil {
		return result, err
	}
	result.Points = points

	records, err := s.ExtractSitRep(ctx, workbookDir, rep)
	if err != nil && !errors.Is(err, core.ErrNoWorkbook) {
		return result, err
	}
	result.Records = records
	result.NoWorkbook = errors.Is(err, core.ErrNoWorkbook)

	log.Printf("[Pipeline] run %s finished in %.2fs (%d sitrep, %d weather, %d trends)",
		rep.RunID, time.Since(start).Seconds(),
		len(result.Records), len(result.Observations), len(result.Points))
	return result, nil
}
