package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/adapters/csvsink"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/adapters/excel"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/adapters/gtrends"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/adapters/openmeteo"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/adapters/postgres"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/app"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/report"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/internal/config"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/internal/summary"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/internal/workspace"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/ports"
)

func main() {
	// .env is optional; real environments set variables directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file")
	}

	var dbURL string
	rootCmd := &cobra.Command{
		Use:   "winterpressures",
		Short: "NHS winter pressures data pipeline",
		Long: `Builds a joined winter-pressures dataset for England: reshaped NHS UEC
Daily SitRep metrics, historical daily weather for major cities, and
relative search interest for illness-related terms.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if dbURL != "" {
				os.Setenv("DATABASE_URL", dbURL)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "PostgreSQL connection URL (overrides DATABASE_URL)")

	rootCmd.AddCommand(
		newRunCmd(),
		newFetchWeatherCmd(),
		newFetchTrendsCmd(),
		newExtractCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runtime bundles everything a command needs after bootstrap
type runtime struct {
	cfg     *config.Config
	layout  *workspace.Layout
	service *app.PipelineService
	logFile *os.File
}

func (r *runtime) close() {
	if r.logFile != nil {
		log.SetOutput(os.Stderr)
		r.logFile.Close()
	}
}

func bootstrap() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	layout, err := workspace.Bootstrap(cfg.Paths.WorkspaceDir, now)
	if err != nil {
		return nil, err
	}

	logFile, err := layout.OpenRunLog(now)
	if err != nil {
		return nil, err
	}

	var extraSinks []ports.RecordSink
	if cfg.Database.Enabled {
		db, err := postgres.Connect(cfg.Database.URL)
		if err != nil {
			log.Printf("[Bootstrap] database unavailable, continuing without it: %v", err)
		} else {
			repo, err := postgres.NewRecordRepository(db)
			if err != nil {
				log.Printf("[Bootstrap] database schema setup failed, continuing without it: %v", err)
			} else {
				extraSinks = append(extraSinks, repo)
			}
		}
	}

	deps := app.PipelineDeps{
		Workbook:         excel.NewWorkbookReader(),
		Weather:          openmeteo.NewClient(openmeteo.DefaultConfig()),
		Trends:           gtrends.NewClient(gtrends.DefaultConfig()),
		RecordSink:       csvsink.NewRecordCSV(layout.SitRepOutputPath()),
		ExtraRecordSinks: extraSinks,
		WeatherSink:      csvsink.NewWeatherCSV(layout.WeatherOutputPath()),
		TrendsSink:       csvsink.NewTrendsCSV(layout.TrendsOutputPath()),
	}
	pipelineCfg := app.PipelineConfig{
		Sheets:       cfg.Extract.Sheets,
		Cities:       cfg.Fetch.Cities,
		Keywords:     cfg.Fetch.Keywords,
		Range:        cfg.Fetch.Range,
		WeatherDelay: cfg.Fetch.WeatherDelay,
		TrendsDelay:  cfg.Fetch.TrendsDelay,
	}

	return &runtime{
		cfg:     cfg,
		layout:  layout,
		service: app.NewPipelineService(deps, pipelineCfg),
		logFile: logFile,
	}, nil
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline: weather, search interest and SitRep extraction",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.close()

			result, err := rt.service.Run(cmd.Context(), rt.layout.NHSDir)
			if err != nil {
				return err
			}

			if result.NoWorkbook {
				if err := rt.layout.WriteDownloadInstructions(); err != nil {
					return err
				}
			}

			return summary.WriteFile(rt.layout.SummaryPath(), summary.Input{
				Report:       result.Report,
				Records:      result.Records,
				Observations: result.Observations,
				Points:       result.Points,
			})
		},
	}
}

func newFetchWeatherCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-weather",
		Short: "Fetch historical daily weather for the configured cities",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.close()

			rep := report.NewRunReport(core.NewRunID())
			obs, err := rt.service.FetchWeather(cmd.Context(), rep)
			if err != nil {
				return err
			}

			return summary.WriteFile(rt.layout.SummaryPath(), summary.Input{
				Report:       rep,
				Observations: obs,
			})
		},
	}
}

func newFetchTrendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-trends",
		Short: "Fetch relative search interest for the configured keywords",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.close()

			rep := report.NewRunReport(core.NewRunID())
			points, err := rt.service.FetchTrends(cmd.Context(), rep)
			if err != nil {
				return err
			}

			return summary.WriteFile(rt.layout.SummaryPath(), summary.Input{
				Report: rep,
				Points: points,
			})
		},
	}
}

func newExtractCmd() *cobra.Command {
	var workbookDir string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Reshape the downloaded SitRep workbook into long-format records",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.close()

			dir := workbookDir
			if dir == "" {
				dir = rt.layout.NHSDir
			}

			rep := report.NewRunReport(core.NewRunID())
			records, err := rt.service.ExtractSitRep(cmd.Context(), dir, rep)
			if err != nil {
				if errors.Is(err, core.ErrNoWorkbook) {
					if werr := rt.layout.WriteDownloadInstructions(); werr != nil {
						return werr
					}
					log.Printf("[Extract] no workbook found in %s, download instructions written", dir)
					return summary.WriteFile(rt.layout.SummaryPath(), summary.Input{Report: rep})
				}
				return err
			}

			return summary.WriteFile(rt.layout.SummaryPath(), summary.Input{
				Report:  rep,
				Records: records,
			})
		},
	}

	cmd.Flags().StringVar(&workbookDir, "workbook-dir", "", "Directory holding the SitRep workbook (defaults to today's raw nhs directory)")
	return cmd
}

