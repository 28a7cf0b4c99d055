package sitrep

import (
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
)

// Reshape converts a wide SitRep sheet grid into long-format records.
//
// Dates come from row 13, forward-filled left to right so the metric columns
// grouped under one dated block all inherit that block's date. Columns left
// of the first dated column resolve no date and are excluded. Metric names
// come from row 14. Data rows start at row 15; rows without a trust name are
// summary or blank rows and are dropped. Only cells that coerce to a number
// emit a record; everything else is excluded rather than zero-filled.
//
// Records come back in row-major order, column order within each row.
func Reshape(grid Grid, sheetName string) []Record {
	columns := DateMetricColumns(grid)
	if len(columns) == 0 {
		return nil
	}

	var records []Record
	for row := DataStartRow; row < grid.Rows(); row++ {
		trustName := grid.At(row, ColTrustName).MetadataString()
		if trustName == "" {
			continue
		}
		region := grid.At(row, ColRegion).MetadataString()
		trustCode := core.TrustCode(grid.At(row, ColTrustCode).MetadataString())

		for _, dm := range columns {
			value, ok := grid.At(row, dm.Column).Numeric()
			if !ok {
				continue
			}
			records = append(records, Record{
				Date:      dm.Date,
				Region:    region,
				TrustCode: trustCode,
				TrustName: trustName,
				Metric:    core.NewMetricKey(sheetName, dm.Metric),
				Value:     value,
			})
		}
	}
	return records
}

// DateMetricColumns scans the two header rows and pairs each column with its
// resolved date and metric name. Columns missing either are skipped.
func DateMetricColumns(grid Grid) []DateMetricColumn {
	var columns []DateMetricColumn
	var lastDate core.Day

	for col := FirstDataCol; col < grid.Cols(); col++ {
		dateCell := grid.At(DateHeaderRow, col)
		if dateCell.IsDate() {
			lastDate = dateCell.AsDay()
		}
		if lastDate.IsZero() {
			// No date resolved yet for this scan; column excluded.
			continue
		}

		metric := grid.At(MetricHeaderRow, col).MetadataString()
		if metric == "" {
			continue
		}

		columns = append(columns, DateMetricColumn{
			Column: col,
			Date:   lastDate,
			Metric: metric,
		})
	}
	return columns
}
