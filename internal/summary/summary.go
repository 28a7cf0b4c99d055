package summary

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/report"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/sitrep"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/trends"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/weather"
)

// Input collects everything a finished run produced
type Input struct {
	Report       *report.RunReport
	Records      []sitrep.Record
	Observations []weather.DailyObservation
	Points       []trends.InterestPoint
}

// Write renders the human-readable run summary to w
func Write(w io.Writer, in Input) error {
	var b strings.Builder

	b.WriteString("=== Winter Pressures Run Summary ===\n")
	if in.Report != nil {
		fmt.Fprintf(&b, "Run ID:     %s\n", in.Report.RunID)
		fmt.Fprintf(&b, "Started at: %s\n", in.Report.StartedAt.Time().Format("2006-01-02 15:04:05 MST"))
	}
	b.WriteString("\n")

	if in.Report != nil && in.Report.Empty() {
		b.WriteString("Status: NO DATA RETRIEVED\n")
		b.WriteString("Every source either failed or produced zero records.\n")
		writeFailures(&b, in.Report)
		_, err := io.WriteString(w, b.String())
		return err
	}

	writeSitRepSection(&b, in.Records)
	writeWeatherSection(&b, in.Observations)
	writeTrendsSection(&b, in.Points)
	if in.Report != nil {
		writeFailures(&b, in.Report)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile renders the summary to path and echoes it to stdout
func WriteFile(path string, in Input) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	return Write(io.MultiWriter(file, os.Stdout), in)
}

func writeSitRepSection(b *strings.Builder, records []sitrep.Record) {
	b.WriteString("--- NHS SitRep ---\n")
	if len(records) == 0 {
		b.WriteString("No records extracted.\n\n")
		return
	}

	minDate, maxDate := records[0].Date, records[0].Date
	regions := make(map[string]struct{})
	trusts := make(map[string]struct{})
	byMetric := make(map[string][]float64)
	for _, rec := range records {
		if rec.Date.Before(minDate) {
			minDate = rec.Date
		}
		if rec.Date.After(maxDate) {
			maxDate = rec.Date
		}
		if rec.Region != "" {
			regions[rec.Region] = struct{}{}
		}
		trusts[rec.TrustCode.String()] = struct{}{}
		key := rec.Metric.String()
		byMetric[key] = append(byMetric[key], rec.Value)
	}

	fmt.Fprintf(b, "Records:    %d\n", len(records))
	fmt.Fprintf(b, "Date range: %s to %s\n", minDate, maxDate)
	fmt.Fprintf(b, "Trusts:     %d\n", len(trusts))
	fmt.Fprintf(b, "Regions:    %d\n", len(regions))
	fmt.Fprintf(b, "Metrics:    %d\n", len(byMetric))

	metricNames := make([]string, 0, len(byMetric))
	for name := range byMetric {
		metricNames = append(metricNames, name)
	}
	sort.Strings(metricNames)

	for _, name := range metricNames {
		values := byMetric[name]
		mean, _ := stats.Mean(values)
		minV, _ := stats.Min(values)
		maxV, _ := stats.Max(values)
		fmt.Fprintf(b, "  %-50s n=%-6d mean=%-10.1f min=%-8.1f max=%.1f\n",
			name, len(values), mean, minV, maxV)
	}
	b.WriteString("\n")
}

func writeWeatherSection(b *strings.Builder, obs []weather.DailyObservation) {
	b.WriteString("--- Weather ---\n")
	if len(obs) == 0 {
		b.WriteString("No observations fetched.\n\n")
		return
	}

	minDate, maxDate := obs[0].Date, obs[0].Date
	cities := make(map[string]struct{})
	temps := make([]float64, 0, len(obs))
	for _, o := range obs {
		if o.Date.Before(minDate) {
			minDate = o.Date
		}
		if o.Date.After(maxDate) {
			maxDate = o.Date
		}
		cities[o.City] = struct{}{}
		temps = append(temps, o.TempMean)
	}

	meanTemp, _ := stats.Mean(temps)
	fmt.Fprintf(b, "Observations: %d\n", len(obs))
	fmt.Fprintf(b, "Date range:   %s to %s\n", minDate, maxDate)
	fmt.Fprintf(b, "Cities:       %d\n", len(cities))
	fmt.Fprintf(b, "Mean temp:    %.1f C\n\n", meanTemp)
}

func writeTrendsSection(b *strings.Builder, points []trends.InterestPoint) {
	b.WriteString("--- Search Interest ---\n")
	if len(points) == 0 {
		b.WriteString("No data points fetched.\n\n")
		return
	}

	byKeyword := make(map[string][]float64)
	for _, p := range points {
		byKeyword[p.Keyword] = append(byKeyword[p.Keyword], float64(p.SearchVolume))
	}

	keywords := make([]string, 0, len(byKeyword))
	for k := range byKeyword {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)

	fmt.Fprintf(b, "Data points: %d\n", len(points))
	for _, k := range keywords {
		values := byKeyword[k]
		mean, _ := stats.Mean(values)
		maxV, _ := stats.Max(values)
		fmt.Fprintf(b, "  %-20s n=%-6d mean=%-6.1f peak=%.0f\n", k, len(values), mean, maxV)
	}
	b.WriteString("\n")
}

func writeFailures(b *strings.Builder, rep *report.RunReport) {
	failures := rep.Failures()
	if len(failures) == 0 {
		return
	}
	b.WriteString("--- Failures ---\n")
	for _, f := range failures {
		fmt.Fprintf(b, "  [%s] %s: %s\n", f.Source, f.Item, f.ErrorMessage())
	}
	b.WriteString("\n")
}
