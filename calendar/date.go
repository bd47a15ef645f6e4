/*
Package calendar provides the pure calendar and day-classification engine.

PURPOSE:
  This package contains the date model and algorithms that the rest of the
  system builds on: classifying every day of a month as working, weekend,
  or holiday; producing week-aligned month grids for rendering; and counting
  effective working days across arbitrary date ranges.

KEY CONCEPTS IN THIS FILE (date.go):
  - Date: A civil date (no time-of-day, no time zone) with a canonical
    YYYY-MM-DD key. Always constructed from (year, month, day) components,
    never parsed from locale-ambiguous strings internally.
  - WeekOfMonthIndex: 0-based index used for the second-Saturday rule.
  - Boundary parsers: ParseKey (YYYY-MM-DD) and ParseDisplay (DD-MM-YYYY)
    exist ONLY for the system boundary; internal logic operates on Date.

DESIGN PRINCIPLES:
  1. Validation at construction: New rejects out-of-range triples with
     InvalidDateError instead of clamping or normalizing.
  2. Immutability: Date is a value type; arithmetic returns new values.
  3. Purity: nothing in this package performs I/O or holds shared state.

SEE ALSO:
  - classify.go: Day classification over Date
  - month.go: Month lists and grids
  - workdays.go: Working-day range counting
*/
package calendar

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Civil calendar date
// =============================================================================

// Date is a civil date at day granularity, held in UTC.
type Date struct {
	t time.Time
}

// New constructs a Date from components, validating that the triple denotes
// a real calendar day. It never clamps: (2025, 2, 30) is an error, not Mar 2.
func New(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, &InvalidDateError{Year: year, Month: int(month), Day: day}
	}
	if day < 1 || day > DaysIn(year, month) {
		return Date{}, &InvalidDateError{Year: year, Month: int(month), Day: day}
	}
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}, nil
}

// MustNew is New for statically-known dates; it panics on invalid input.
func MustNew(year int, month time.Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current civil date.
func Today() Date {
	now := time.Now()
	d, _ := New(now.Year(), now.Month(), now.Day())
	return d
}

// Properties
func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) IsZero() bool      { return d.t.IsZero() }

// Weekday returns 0=Sunday .. 6=Saturday.
func (d Date) Weekday() int { return int(d.t.Weekday()) }

// WeekOfMonthIndex returns the 0-based week index within the month:
// days 1-7 are index 0, days 8-14 index 1, and so on. The second Saturday
// of a month is exactly the Saturday whose index is 1.
func (d Date) WeekOfMonthIndex() int { return (d.Day() - 1) / 7 }

// Key returns the canonical YYYY-MM-DD key for this date.
func (d Date) Key() string { return d.t.Format("2006-01-02") }

func (d Date) String() string { return d.Key() }

// Comparison
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// =============================================================================
// MONTH HELPERS
// =============================================================================

// DaysIn returns the number of days in the given month of the given year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfMonth returns day 1 of the given month.
func StartOfMonth(year int, month time.Month) (Date, error) {
	return New(year, month, 1)
}

// =============================================================================
// BOUNDARY PARSERS
// =============================================================================
// The UI boundary speaks two textual formats: DD-MM-YYYY for display fields
// and YYYY-MM-DD for date keys. Both are normalized to Date here; nothing
// past this boundary touches a date string again.

// ParseKey parses a canonical YYYY-MM-DD key.
func ParseKey(key string) (Date, error) {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return Date{}, &InvalidDateError{Raw: key}
	}
	return New(t.Year(), t.Month(), t.Day())
}

// ParseDisplay parses a DD-MM-YYYY display-form date.
func ParseDisplay(s string) (Date, error) {
	t, err := time.Parse("02-01-2006", s)
	if err != nil {
		return Date{}, &InvalidDateError{Raw: s}
	}
	return New(t.Year(), t.Month(), t.Day())
}

// ParseBoundary accepts either the canonical key or the display form.
// Handlers use it for query parameters that historically arrived in both.
func ParseBoundary(s string) (Date, error) {
	if d, err := ParseKey(s); err == nil {
		return d, nil
	}
	if d, err := ParseDisplay(s); err == nil {
		return d, nil
	}
	return Date{}, &InvalidDateError{Raw: s}
}

var _ fmt.Stringer = Date{}
