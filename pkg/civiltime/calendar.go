// Package civiltime resolves "now" and "today" in the single civil timezone
// the business operates in. All date and time-of-day arithmetic of the
// scheduler goes through Calendar so timezone rules live in one place.
package civiltime

import (
	"fmt"
	"time"

	"github.com/m04kA/asperus-scheduler/pkg/types"
)

// DateLayout is the wire and storage format of civil dates
const DateLayout = "2006-01-02"

// Clock is the source of the current instant
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return c.At
}

// Calendar answers civil date/time questions in a fixed location
type Calendar struct {
	clock Clock
	loc   *time.Location
}

// NewCalendar creates a calendar for the given location
func NewCalendar(clock Clock, loc *time.Location) *Calendar {
	if clock == nil {
		clock = SystemClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{clock: clock, loc: loc}
}

// LoadCalendar resolves an IANA timezone name, e.g. "America/Sao_Paulo"
func LoadCalendar(clock Clock, timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return NewCalendar(clock, loc), nil
}

// Location returns the civil location
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Timestamp is the current instant expressed in the civil location
func (c *Calendar) Timestamp() time.Time {
	return c.clock.Now().In(c.loc)
}

// Today is the current civil date (midnight in the civil location)
func (c *Calendar) Today() time.Time {
	return c.DateOf(c.Timestamp())
}

// Now is the current civil time of day at minute precision
func (c *Calendar) Now() types.TimeString {
	return types.NewTimeString(c.Timestamp())
}

// DateOf keeps the calendar day of t and places it at civil midnight.
// Dates parsed from the wire (UTC midnight) keep their year/month/day.
func (c *Calendar) DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}

// ParseDate parses "YYYY-MM-DD" as a civil date
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, c.loc)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// IsToday reports whether date is the current civil date
func (c *Calendar) IsToday(date time.Time) bool {
	return SameDay(date, c.Today())
}

// IsPast reports whether date is strictly before the current civil date
func (c *Calendar) IsPast(date time.Time) bool {
	return CompareDates(date, c.Today()) < 0
}

// HasStarted reports whether the slot (date, start) has already begun
func (c *Calendar) HasStarted(date time.Time, start types.TimeString) bool {
	switch cmp := CompareDates(date, c.Today()); {
	case cmp < 0:
		return true
	case cmp > 0:
		return false
	default:
		return start.Minutes() <= c.Now().Minutes()
	}
}

// SameDay compares calendar days ignoring location and clock time
func SameDay(a, b time.Time) bool {
	return CompareDates(a, b) == 0
}

// CompareDates compares the calendar days of a and b: -1, 0 or 1
func CompareDates(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

// FormatDate formats a civil date as "YYYY-MM-DD"
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
