package workspace

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/internal/errors"
)

// Layout names the directories a pipeline run reads from and writes to.
// Raw source files land under dated subdirectories so repeated runs on the
// same day overwrite each other and runs on different days keep history.
type Layout struct {
	Root         string
	NHSDir       string
	WeatherDir   string
	TrendsDir    string
	ProcessedDir string
	OutputsDir   string
	LogsDir      string
}

// Bootstrap creates the workspace directory tree under root for the given day
func Bootstrap(root string, day time.Time) (*Layout, error) {
	stamp := day.UTC().Format("2006-01-02")

	layout := &Layout{
		Root:         root,
		NHSDir:       filepath.Join(root, "data", "raw", "nhs", stamp),
		WeatherDir:   filepath.Join(root, "data", "raw", "weather", stamp),
		TrendsDir:    filepath.Join(root, "data", "raw", "trends", stamp),
		ProcessedDir: filepath.Join(root, "data", "processed"),
		OutputsDir:   filepath.Join(root, "data", "outputs"),
		LogsDir:      filepath.Join(root, "logs"),
	}

	dirs := []string{
		layout.NHSDir, layout.WeatherDir, layout.TrendsDir,
		layout.ProcessedDir, layout.OutputsDir, layout.LogsDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.WorkspaceFailed(fmt.Sprintf("failed to create %s", dir), err)
		}
	}

	log.Printf("[Workspace] bootstrapped under %s for %s", root, stamp)
	return layout, nil
}

const downloadReadme = `No SitRep workbook was found in this directory.

The NHS UEC Daily SitRep workbook must be downloaded manually:

1. Open https://www.england.nhs.uk/statistics/statistical-work-areas/uec-sitrep/
2. Download the latest "UEC Daily SitRep" timeseries file (.xlsx)
3. Save it into this directory
4. Re-run the extract command

Only .xlsx files are picked up. When several are present the
alphabetically first one is used.
`

// WriteDownloadInstructions drops a README into the NHS raw directory
// explaining how to obtain the workbook by hand.
func (l *Layout) WriteDownloadInstructions() error {
	path := filepath.Join(l.NHSDir, "README.txt")
	if err := os.WriteFile(path, []byte(downloadReadme), 0o644); err != nil {
		return errors.WorkspaceFailed("failed to write download instructions", err)
	}
	log.Printf("[Workspace] wrote download instructions to %s", path)
	return nil
}

// OpenRunLog opens a per-run log file and points the standard logger at it
// as well as stderr. The caller closes the returned file when the run ends.
func (l *Layout) OpenRunLog(day time.Time) (*os.File, error) {
	path := filepath.Join(l.LogsDir, "run_"+day.UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.WorkspaceFailed("failed to open run log", err)
	}
	log.SetOutput(io.MultiWriter(os.Stderr, file))
	return file, nil
}

// SitRepOutputPath returns the path for the reshaped long-format output
func (l *Layout) SitRepOutputPath() string {
	return filepath.Join(l.OutputsDir, "sitrep_long.csv")
}

// WeatherOutputPath returns the path for the daily weather output
func (l *Layout) WeatherOutputPath() string {
	return filepath.Join(l.WeatherDir, "uk_weather_daily.csv")
}

// TrendsOutputPath returns the path for the search-interest output
func (l *Layout) TrendsOutputPath() string {
	return filepath.Join(l.TrendsDir, "search_interest.csv")
}

// SummaryPath returns the path of the human-readable run summary
func (l *Layout) SummaryPath() string {
	return filepath.Join(l.ProcessedDir, "run_summary.txt")
}
