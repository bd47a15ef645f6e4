/*
errors.go - Centralized error types for the calendar engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers should test with errors.Is / errors.As rather than string matching.

ERROR CATEGORIES:
  1. Structural errors - malformed (year, month, day) triples; these indicate
     a caller contract violation and fail loudly.
  2. Data-quality errors - unparseable HH:MM clock strings; these are
     recoverable by contract (hours computation degrades to zero), but the
     typed error is still available to callers that want to surface them.

SEE ALSO:
  - date.go: Date construction returns InvalidDateError
  - attendance package: clock parsing returns MalformedTimeError
*/
package calendar

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDate is returned when a (year, month, day) triple or a date
	// string does not denote a real calendar day. Dates are never clamped.
	ErrInvalidDate = errors.New("invalid date")

	// ErrMalformedTime is returned when an HH:MM clock string cannot be
	// parsed. Attendance fields are blank by design for holiday and leave
	// statuses, so hours computation treats this as zero rather than failing.
	ErrMalformedTime = errors.New("malformed time")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidDateError describes a rejected date. Either the component triple
// or the raw string is set, depending on how the date arrived.
type InvalidDateError struct {
	Year  int
	Month int
	Day   int
	Raw   string
}

func (e *InvalidDateError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("invalid date %q", e.Raw)
	}
	return fmt.Sprintf("invalid date: year=%d month=%d day=%d", e.Year, e.Month, e.Day)
}

func (e *InvalidDateError) Unwrap() error { return ErrInvalidDate }

// MalformedTimeError describes an unparseable HH:MM clock string.
type MalformedTimeError struct {
	Raw string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q (want HH:MM)", e.Raw)
}

func (e *MalformedTimeError) Unwrap() error { return ErrMalformedTime }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrMalformedTime)
}
