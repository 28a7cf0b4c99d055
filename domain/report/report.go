package report

import (
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
)

// Source names the pipeline stages that produce per-item results
type Source string

const (
	SourceSitRep  Source = "nhs_sitrep"
	SourceWeather Source = "weather"
	SourceTrends  Source = "trends"
)

// Result records the outcome of one batch item: a fetched city, a fetched
// keyword or an extracted sheet. Failures are captured here instead of being
// swallowed; iteration over a batch never aborts.
type Result struct {
	Source  Source `json:"source"`
	Item    string `json:"item"`
	Records int    `json:"records"`
	Err     error  `json:"-"`
}

// OK reports whether the item completed without error
func (r Result) OK() bool {
	return r.Err == nil
}

// ErrorMessage returns the failure text, or "" on success
func (r Result) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// RunReport accumulates per-item results across the whole run
type RunReport struct {
	RunID     core.RunID     `json:"run_id"`
	StartedAt core.Timestamp `json:"started_at"`
	Results   []Result       `json:"results"`
}

// NewRunReport starts an empty report for a run
func NewRunReport(runID core.RunID) *RunReport {
	return &RunReport{
		RunID:     runID,
		StartedAt: core.Now(),
	}
}

// Add appends one item result
func (r *RunReport) Add(result Result) {
	r.Results = append(r.Results, result)
}

// BySource returns the results for one stage, in insertion order
func (r *RunReport) BySource(source Source) []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Source == source {
			out = append(out, res)
		}
	}
	return out
}

// Records sums the record counts of successful items for a stage
func (r *RunReport) Records(source Source) int {
	total := 0
	for _, res := range r.BySource(source) {
		if res.OK() {
			total += res.Records
		}
	}
	return total
}

// Failures returns every failed item across all stages
func (r *RunReport) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Empty reports whether the run retrieved no data at all. Callers surface
// this as an explicit "no data retrieved" status rather than an error.
func (r *RunReport) Empty() bool {
	for _, res := range r.Results {
		if res.OK() && res.Records > 0 {
			return false
		}
	}
	return true
}
