package csvsink

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/trends"
)

var trendsHeader = []string{"date", "keyword", "search_volume", "is_partial"}

// TrendsCSV persists search-interest points to a delimited file.
type TrendsCSV struct {
	path string
}

func NewTrendsCSV(path string) *TrendsCSV {
	return &TrendsCSV{path: path}
}

// WritePoints writes the header and one row per interest point
func (s *TrendsCSV) WritePoints(ctx context.Context, points []trends.InterestPoint) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(trendsHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, p := range points {
		row := []string{
			p.Date.String(),
			p.Keyword,
			strconv.Itoa(p.SearchVolume),
			strconv.FormatBool(p.IsPartial),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", s.path, err)
	}

	log.Printf("[TrendsCSV] wrote %d points to %s", len(points), s.path)
	return nil
}
