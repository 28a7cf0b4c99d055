package sitrep

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
)

// CellKind defines the storage type for a grid cell
type CellKind string

const (
	CellEmpty  CellKind = "empty"
	CellText   CellKind = "text"
	CellNumber CellKind = "number"
	CellDate   CellKind = "date"
)

// Cell is a tagged-union grid value. Workbook cells arrive as a mix of
// strings, numbers and dates; every coercion site switches over Kind
// explicitly instead of inspecting runtime types.
type Cell struct {
	Kind      CellKind  `json:"kind"`
	TextVal   *string   `json:"text_val,omitempty"`
	NumberVal *float64  `json:"number_val,omitempty"`
	DateVal   *core.Day `json:"date_val,omitempty"`
}

// NewEmptyCell creates an empty/missing cell
func NewEmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// NewTextCell creates a text cell; blank strings collapse to empty
func NewTextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return NewEmptyCell()
	}
	return Cell{Kind: CellText, TextVal: &s}
}

// NewNumberCell creates a numeric cell
func NewNumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, NumberVal: &n}
}

// NewDateCell creates a date cell
func NewDateCell(d core.Day) Cell {
	return Cell{Kind: CellDate, DateVal: &d}
}

// IsEmpty returns true for missing cells
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// IsDate returns true if the cell holds a resolved calendar date
func (c Cell) IsDate() bool {
	return c.Kind == CellDate && c.DateVal != nil
}

// AsDay returns the cell's date, or the zero Day if it is not a date
func (c Cell) AsDay() core.Day {
	if c.DateVal != nil {
		return *c.DateVal
	}
	return core.Day{}
}

// Numeric attempts numeric coercion of the cell. Number cells succeed
// directly; text cells succeed only when they parse as a plain decimal
// (thousands commas tolerated); date and empty cells always fail.
func (c Cell) Numeric() (float64, bool) {
	switch c.Kind {
	case CellNumber:
		if c.NumberVal != nil {
			return *c.NumberVal, true
		}
		return 0, false
	case CellText:
		if c.TextVal == nil {
			return 0, false
		}
		clean := strings.ReplaceAll(strings.TrimSpace(*c.TextVal), ",", "")
		v, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	case CellDate, CellEmpty:
		return 0, false
	}
	return 0, false
}

// MetadataString renders the cell as row metadata. Text cells are trimmed,
// numbers formatted compactly, dates and empties yield "".
func (c Cell) MetadataString() string {
	switch c.Kind {
	case CellText:
		if c.TextVal != nil {
			return strings.TrimSpace(*c.TextVal)
		}
	case CellNumber:
		if c.NumberVal != nil {
			return strconv.FormatFloat(*c.NumberVal, 'f', -1, 64)
		}
	}
	return ""
}

// String returns a debug representation
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		if c.TextVal != nil {
			return *c.TextVal
		}
	case CellNumber:
		if c.NumberVal != nil {
			return fmt.Sprintf("%g", *c.NumberVal)
		}
	case CellDate:
		if c.DateVal != nil {
			return c.DateVal.String()
		}
	case CellEmpty:
		return "<empty>"
	}
	return "<invalid>"
}
