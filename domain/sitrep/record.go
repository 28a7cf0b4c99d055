package sitrep

import (
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
)

// Record is one long-format observation: a single (date, trust, metric) value.
// Trust identity is immutable metadata copied verbatim from the source row.
type Record struct {
	Date      core.Day       `json:"date"`
	Region    string         `json:"region"`
	TrustCode core.TrustCode `json:"trust_code"`
	TrustName string         `json:"trust_name"`
	Metric    core.MetricKey `json:"metric"`
	Value     float64        `json:"value"`
}

// DateMetricColumn pairs a spreadsheet column with its resolved date and
// metric name. Built once per sheet by scanning the two fixed header rows.
type DateMetricColumn struct {
	Column int
	Date   core.Day
	Metric string
}
