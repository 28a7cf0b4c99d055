package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDay(t *testing.T, s string) Day {
	t.Helper()
	d, err := ParseDay(s)
	require.NoError(t, err)
	return d
}

func TestDayTruncatesToMidnightUTC(t *testing.T) {
	d := NewDay(time.Date(2024, 12, 15, 23, 45, 12, 0, time.FixedZone("BST", 3600)))
	assert.Equal(t, "2024-12-15", d.String())
	assert.Equal(t, time.UTC, d.Time().Location())
}

func TestDayJSONRoundTrip(t *testing.T) {
	d := mustDay(t, "2025-01-15")
	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-15"`, string(data))

	var back Day
	require.NoError(t, back.UnmarshalJSON(data))
	assert.True(t, d.Equal(back))
}

func TestLastNDays(t *testing.T) {
	end := mustDay(t, "2025-01-31")
	r := LastNDays(end, 31)
	assert.Equal(t, "2025-01-01", r.Start.String())
	assert.Equal(t, 31, r.Days())
	assert.True(t, r.Contains(mustDay(t, "2025-01-15")))
	assert.False(t, r.Contains(mustDay(t, "2024-12-31")))
}

func TestDateRangeValidate(t *testing.T) {
	valid := NewDateRange(mustDay(t, "2025-01-01"), mustDay(t, "2025-01-31"))
	assert.NoError(t, valid.Validate())

	reversed := NewDateRange(mustDay(t, "2025-01-31"), mustDay(t, "2025-01-01"))
	assert.ErrorIs(t, reversed.Validate(), ErrInvalidDateRange)

	assert.ErrorIs(t, DateRange{}.Validate(), ErrInvalidDateRange)
}

func TestNewMetricKeyQualifiesWithSheetName(t *testing.T) {
	assert.Equal(t, MetricKey("Flu_Patients in beds"), NewMetricKey("Flu", "  Patients in beds "))
	assert.Equal(t, MetricKey("Adult G&A beds_Occupied"), NewMetricKey("Adult G&A beds", "Occupied"))
}

func TestParseTrustCode(t *testing.T) {
	code, err := ParseTrustCode("  RR8 ")
	require.NoError(t, err)
	assert.Equal(t, TrustCode("RR8"), code)

	_, err = ParseTrustCode("   ")
	assert.Error(t, err)
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsSourceError(ErrNoWorkbook))
	assert.True(t, IsSourceError(fmt.Errorf("city fetch: %w", ErrNoData)))
	assert.False(t, IsSourceError(ErrSheetNotFound))

	assert.True(t, IsSheetError(NewSheetError("Flu", fmt.Errorf("bad grid"))))
	assert.True(t, IsSheetError(ErrSheetNotFound))
	assert.False(t, IsSheetError(ErrNoWorkbook))
}

func TestNewIDUnique(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEqual(t, a, b)
	assert.False(t, a.IsEmpty())
}
