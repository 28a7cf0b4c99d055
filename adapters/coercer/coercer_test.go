package coercer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/sitrep"
)

func TestCoerceCell(t *testing.T) {
	c := New(DefaultConfig())

	tests := []struct {
		name string
		raw  string
		kind sitrep.CellKind
	}{
		{"blank", "", sitrep.CellEmpty},
		{"whitespace only", "   ", sitrep.CellEmpty},
		{"iso date", "2025-01-01", sitrep.CellDate},
		{"uk date", "15/12/2024", sitrep.CellDate},
		{"datetime", "2025-01-01 00:00:00", sitrep.CellDate},
		{"integer", "120", sitrep.CellNumber},
		{"float", "3.25", sitrep.CellNumber},
		{"thousands", "1,234", sitrep.CellNumber},
		{"negative", "-7", sitrep.CellNumber},
		{"trust name", "GUY'S AND ST THOMAS' NHS FOUNDATION TRUST", sitrep.CellText},
		{"dash placeholder", "-", sitrep.CellText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := c.CoerceCell(tt.raw)
			assert.Equal(t, tt.kind, cell.Kind)
		})
	}
}

func TestCoerceCellValues(t *testing.T) {
	c := New(DefaultConfig())

	cell := c.CoerceCell("2025-01-01")
	require.True(t, cell.IsDate())
	assert.Equal(t, "2025-01-01", cell.AsDay().String())

	cell = c.CoerceCell("15/12/2024")
	require.True(t, cell.IsDate())
	assert.Equal(t, "2024-12-15", cell.AsDay().String())

	cell = c.CoerceCell("1,234.5")
	v, ok := cell.Numeric()
	require.True(t, ok)
	assert.Equal(t, 1234.5, v)
}

func TestCoerceHeaderDateSerial(t *testing.T) {
	c := New(DefaultConfig())

	// 45658 is the 1900-epoch serial for 2025-01-01.
	cell := c.CoerceHeaderDate("45658")
	require.True(t, cell.IsDate())
	assert.Equal(t, "2025-01-01", cell.AsDay().String())

	// Plain data-range numbers stay numeric.
	cell = c.CoerceHeaderDate("120")
	assert.Equal(t, sitrep.CellNumber, cell.Kind)

	// Text headers stay text.
	cell = c.CoerceHeaderDate("Beds Available")
	assert.Equal(t, sitrep.CellText, cell.Kind)
}
