package csvsink

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/sitrep"
)

var recordHeader = []string{"date", "region", "trust_code", "trust_name", "metric", "value"}

// RecordCSV persists long-format SitRep records to a delimited file.
// Reading back what was written yields identical tuples.
type RecordCSV struct {
	path string
}

// NewRecordCSV creates a sink writing to path
func NewRecordCSV(path string) *RecordCSV {
	return &RecordCSV{path: path}
}

// WriteRecords writes the header and one row per record
func (s *RecordCSV) WriteRecords(ctx context.Context, records []sitrep.Record) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(recordHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range records {
		row := []string{
			rec.Date.String(),
			rec.Region,
			rec.TrustCode.String(),
			rec.TrustName,
			rec.Metric.String(),
			strconv.FormatFloat(rec.Value, 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", s.path, err)
	}

	log.Printf("[RecordCSV] wrote %d records to %s", len(records), s.path)
	return nil
}

// ReadRecords loads records back from the file
func (s *RecordCSV) ReadRecords(ctx context.Context) ([]sitrep.Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Header row
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []sitrep.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if len(row) != len(recordHeader) {
			continue
		}

		day, err := core.ParseDay(row[0])
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(row[5], 64)
		if err != nil {
			continue
		}

		records = append(records, sitrep.Record{
			Date:      day,
			Region:    row[1],
			TrustCode: core.TrustCode(row[2]),
			TrustName: row[3],
			Metric:    core.MetricKey(row[4]),
			Value:     value,
		})
	}
	return records, nil
}
