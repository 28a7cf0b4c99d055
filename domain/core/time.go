package core

import (
	"time"
)

// Timestamp represents a point in time with timezone awareness
type Timestamp time.Time

// NewTimestamp creates a new timestamp from time.Time
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t)
}

// Now returns the current timestamp
func Now() Timestamp {
	return Timestamp(time.Now())
}

// Time returns the underlying time.Time
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// IsZero checks if the timestamp is zero
func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

// Before returns true if t is before u
func (t Timestamp) Before(u Timestamp) bool {
	return time.Time(t).Before(time.Time(u))
}

// After returns true if t is after u
func (t Timestamp) After(u Timestamp) bool {
	return time.Time(t).After(time.Time(u))
}

// JSON marshaling for Timestamp
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return time.Time(t).MarshalJSON()
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var tm time.Time
	if err := tm.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = Timestamp(tm)
	return nil
}

// Day is a civil calendar date. Observation dates in SitRep sheets, weather
// series and trends series are all day-granular, so the pipeline normalizes
// everything to midnight UTC and serializes as ISO calendar dates.
type Day time.Time

const dayLayout = "2006-01-02"

// NewDay truncates a time.Time to its calendar date in UTC
func NewDay(t time.Time) Day {
	return Day(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// ParseDay parses an ISO calendar date (YYYY-MM-DD)
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, err
	}
	return Day(t), nil
}

// Time returns the underlying time.Time (midnight UTC)
func (d Day) Time() time.Time {
	return time.Time(d)
}

// IsZero checks if the day is unset
func (d Day) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before returns true if d is before u
func (d Day) Before(u Day) bool {
	return time.Time(d).Before(time.Time(u))
}

// After returns true if d is after u
func (d Day) After(u Day) bool {
	return time.Time(d).After(time.Time(u))
}

// Equal returns true if both days name the same calendar date
func (d Day) Equal(u Day) bool {
	return time.Time(d).Equal(time.Time(u))
}

// AddDays returns the day n calendar days later (earlier for negative n)
func (d Day) AddDays(n int) Day {
	return Day(time.Time(d).AddDate(0, 0, n))
}

// String returns the ISO calendar date
func (d Day) String() string {
	return time.Time(d).Format(dayLayout)
}

// MarshalJSON serializes as "YYYY-MM-DD"
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses "YYYY-MM-DD"
func (d *Day) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	day, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = day
	return nil
}

// DateRange is an inclusive span of calendar days
type DateRange struct {
	Start Day `json:"start"`
	End   Day `json:"end"`
}

// NewDateRange builds a range; callers are expected to pass start <= end
func NewDateRange(start, end Day) DateRange {
	return DateRange{Start: start, End: end}
}

// LastNDays returns the range covering the n days ending at end
func LastNDays(end Day, n int) DateRange {
	return DateRange{Start: end.AddDays(-(n - 1)), End: end}
}

// Validate rejects ranges with unset or reversed endpoints
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrInvalidDateRange
	}
	if r.End.Before(r.Start) {
		return ErrInvalidDateRange
	}
	return nil
}

// Contains reports whether day falls inside the range
func (r DateRange) Contains(d Day) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of calendar days covered, inclusive
func (r DateRange) Days() int {
	return int(r.End.Time().Sub(r.Start.Time()).Hours()/24) + 1
}

// String renders "start to end" in ISO dates
func (r DateRange) String() string {
	return r.Start.String() + " to " + r.End.String()
}
