package coercer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/sitrep"
)

// CellCoercer converts raw workbook cell strings into typed grid cells with
// deterministic rules. Coercion order is fixed: date formats first, then
// strict numeric parsing, then text.
type CellCoercer struct {
	config Config
}

// Config defines the coercion rules
type Config struct {
	// DateFormats are tried in order when parsing date-like strings
	DateFormats []string
	// SerialDateMin/Max bound the Excel serial numbers accepted as dates
	// when coercing the date header row (1990-01-01 through ~2079)
	SerialDateMin float64
	SerialDateMax float64
}

// DefaultConfig returns the formats seen in UEC SitRep exports
func DefaultConfig() Config {
	return Config{
		DateFormats: []string{
			"2006-01-02T15:04:05Z07:00",
			"2006-01-02 15:04:05",
			"2006-01-02",
			"02/01/2006",
			"01-02-06",
			"02-Jan-06",
			"02-Jan-2006",
		},
		SerialDateMin: 32874,
		SerialDateMax: 65380,
	}
}

// New creates a coercer with the given config
func New(config Config) *CellCoercer {
	return &CellCoercer{config: config}
}

// CoerceCell deterministically converts a raw cell string to a typed cell
func (c *CellCoercer) CoerceCell(raw string) sitrep.Cell {
	cleanVal := strings.TrimSpace(raw)
	if cleanVal == "" {
		return sitrep.NewEmptyCell()
	}

	if day, ok := c.tryParseDate(cleanVal); ok {
		return sitrep.NewDateCell(day)
	}

	if num, ok := c.tryParseNumber(cleanVal); ok {
		return sitrep.NewNumberCell(num)
	}

	return sitrep.NewTextCell(cleanVal)
}

// CoerceHeaderDate coerces a date-header cell. It behaves like CoerceCell but
// additionally resolves Excel serial date numbers, which excelize renders as
// plain numerics when the workbook's date style is lost.
func (c *CellCoercer) CoerceHeaderDate(raw string) sitrep.Cell {
	cell := c.CoerceCell(raw)
	if cell.Kind != sitrep.CellNumber {
		return cell
	}

	serial, _ := cell.Numeric()
	if serial < c.config.SerialDateMin || serial > c.config.SerialDateMax {
		return cell
	}
	return sitrep.NewDateCell(core.NewDay(serialToTime(serial)))
}

// tryParseDate attempts each configured date format in order
func (c *CellCoercer) tryParseDate(strVal string) (core.Day, bool) {
	for _, format := range c.config.DateFormats {
		if t, err := time.Parse(format, strVal); err == nil {
			return core.NewDay(t), true
		}
	}
	return core.Day{}, false
}

// tryParseNumber attempts strict numeric parsing. Thousands separators are
// tolerated; infinities and NaN are rejected.
func (c *CellCoercer) tryParseNumber(strVal string) (float64, bool) {
	cleanVal := strings.ReplaceAll(strVal, ",", "")

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}

// serialToTime converts an Excel 1900-epoch serial number to a time.
// Day 1 is 1900-01-01; the epoch offset includes Excel's leap-year bug.
func serialToTime(serial float64) time.Time {
	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	return epoch.AddDate(0, 0, int(serial))
}
