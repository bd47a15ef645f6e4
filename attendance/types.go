// Package attendance implements the attendance-accounting model: the closed
// status enumeration with its hours factors, daily attendance records, and
// the pure hours computations derived from them.
package attendance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/attendance-engine/calendar"
)

// =============================================================================
// ATTENDANCE STATUS
// =============================================================================

// Status is the closed enumeration of daily attendance statuses.
type Status string

const (
	StatusPresentFull    Status = "PRESENT_FULL"
	StatusPresentHalf    Status = "PRESENT_HALF"
	StatusEmergencyLeave Status = "EMERGENCY_LEAVE"
	StatusCasualLeave    Status = "CASUAL_LEAVE"
	StatusPublicHoliday  Status = "PUBLIC_HOLIDAY"
	StatusSecondSaturday Status = "SECOND_SATURDAY"
	StatusSunday         Status = "SUNDAY"
	StatusHalfDayA       Status = "HALF_DAY_VARIANT_A"
	StatusHalfDayB       Status = "HALF_DAY_VARIANT_B"
	StatusCompOff        Status = "COMPOFF"
)

var allStatuses = map[Status]bool{
	StatusPresentFull:    true,
	StatusPresentHalf:    true,
	StatusEmergencyLeave: true,
	StatusCasualLeave:    true,
	StatusPublicHoliday:  true,
	StatusSecondSaturday: true,
	StatusSunday:         true,
	StatusHalfDayA:       true,
	StatusHalfDayB:       true,
	StatusCompOff:        true,
}

// Valid reports whether s is a member of the closed enumeration.
func (s Status) Valid() bool { return allStatuses[s] }

// HoursFactor returns the multiplier applied to the raw in/out span for
// this status. COMPOFF counts as a full day for hour-totaling; its leave
// accounting happens in the external approval workflow against the attached
// extra-work record.
func (s Status) HoursFactor() decimal.Decimal {
	switch s {
	case StatusPresentFull, StatusCompOff:
		return decimal.NewFromInt(1)
	case StatusPresentHalf, StatusHalfDayA, StatusHalfDayB:
		return decimal.NewFromFloat(0.5)
	default:
		return decimal.Zero
	}
}

// =============================================================================
// RECORDS
// =============================================================================

// ExtraWork is the sub-record attached to a COMPOFF attendance record.
// It describes the day actually worked and the day claimed in compensation.
// All five fields are mandatory.
type ExtraWork struct {
	WorkedDate  calendar.Date
	WorkedTime  string
	Hours       decimal.Decimal
	CompOffDate calendar.Date
	CompOffTime string
}

var (
	// ErrUnknownStatus is returned for a status outside the enumeration.
	ErrUnknownStatus = errors.New("unknown attendance status")

	// ErrExtraWorkRequired is returned when a COMPOFF record arrives
	// without a complete extra-work sub-record.
	ErrExtraWorkRequired = errors.New("compoff record requires extra work details")
)

// Validate checks that every field is present and hours is positive.
func (e *ExtraWork) Validate() error {
	if e == nil {
		return ErrExtraWorkRequired
	}
	if e.WorkedDate.IsZero() || e.CompOffDate.IsZero() ||
		e.WorkedTime == "" || e.CompOffTime == "" || !e.Hours.IsPositive() {
		return ErrExtraWorkRequired
	}
	return nil
}

// Record is one employee's attendance for one day. The record's lifecycle
// (creation, manager approval) is owned by the attendance-management system;
// this package only reads it to compute hours.
type Record struct {
	Date      calendar.Date
	Status    Status
	WorkIn    string // "HH:MM"; blank for leave/holiday statuses
	WorkOut   string
	Note      string
	ExtraWork *ExtraWork // set only when Status == StatusCompOff
}

// Validate checks the record's structural invariants.
func (r Record) Validate() error {
	if !r.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, r.Status)
	}
	if r.Status == StatusCompOff {
		return r.ExtraWork.Validate()
	}
	return nil
}
