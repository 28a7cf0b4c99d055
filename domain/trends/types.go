package trends

import (
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
)

// DefaultKeywords is the standard flu/fever search-interest panel
func DefaultKeywords() []string {
	return []string{
		"flu symptoms",
		"fever",
		"A&E wait times",
		"emergency room",
		"cold and flu",
	}
}

// InterestPoint is one keyword-day of relative search volume (0-100,
// scaled by the provider to the peak within the requested range)
type InterestPoint struct {
	Date         core.Day `json:"date"`
	Keyword      string   `json:"keyword"`
	SearchVolume int      `json:"search_volume"`
	IsPartial    bool     `json:"is_partial"`
}
