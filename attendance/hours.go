package attendance

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/attendance-engine/calendar"
)

// =============================================================================
// HOURS MODEL - Pure computations over attendance records
// =============================================================================

var minutesPerHour = decimal.NewFromInt(60)

// ParseClock parses an "HH:MM" clock string into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, &calendar.MalformedTimeError{Raw: s}
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &calendar.MalformedTimeError{Raw: s}
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &calendar.MalformedTimeError{Raw: s}
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, &calendar.MalformedTimeError{Raw: s}
	}
	return hh*60 + mm, nil
}

// HoursBetween returns the span between two clock strings in hours, rounded
// to one decimal. A work-out earlier than the work-in is an overnight shift
// and wraps past midnight. Missing or unparseable inputs yield zero: blank
// time fields are legitimate for holiday and leave statuses, and one bad
// record must not fail a whole aggregation.
func HoursBetween(workIn, workOut string) decimal.Decimal {
	in, err := ParseClock(workIn)
	if err != nil {
		return decimal.Zero
	}
	out, err := ParseClock(workOut)
	if err != nil {
		return decimal.Zero
	}
	if out < in {
		out += 24 * 60
	}
	return decimal.NewFromInt(int64(out - in)).Div(minutesPerHour).Round(1)
}

// EffectiveHours returns the record's worked hours after its status factor.
// Zero-factor statuses short-circuit without touching the time fields.
func EffectiveHours(r Record) decimal.Decimal {
	factor := r.Status.HoursFactor()
	if factor.IsZero() {
		return decimal.Zero
	}
	return HoursBetween(r.WorkIn, r.WorkOut).Mul(factor).Round(1)
}

// Summary is the result of aggregating a list of attendance records.
type Summary struct {
	PerRecord []decimal.Decimal
	Total     decimal.Decimal
}

// Aggregate maps EffectiveHours over the records and totals them, rounding
// the total to one decimal. It never mutates the input, and the total is
// a plain sum, so it is stable under reordering. An empty list yields a
// zero total, never an error.
func Aggregate(records []Record) Summary {
	perRecord := make([]decimal.Decimal, len(records))
	total := decimal.Zero
	for i, r := range records {
		perRecord[i] = EffectiveHours(r)
		total = total.Add(perRecord[i])
	}
	return Summary{PerRecord: perRecord, Total: total.Round(1)}
}
