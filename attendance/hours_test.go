package attendance_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/attendance-engine/attendance"
	"github.com/warp/attendance-engine/calendar"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func day(t *testing.T, dayOfMonth int) calendar.Date {
	t.Helper()
	d, err := calendar.New(2026, time.March, dayOfMonth)
	require.NoError(t, err)
	return d
}

func record(t *testing.T, dayOfMonth int, status attendance.Status, workIn, workOut string) attendance.Record {
	t.Helper()
	return attendance.Record{Date: day(t, dayOfMonth), Status: status, WorkIn: workIn, WorkOut: workOut}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// =============================================================================
// HOURS BETWEEN
// =============================================================================

func TestHoursBetween(t *testing.T) {
	cases := []struct {
		name    string
		workIn  string
		workOut string
		want    string
	}{
		{"standard day", "10:00", "18:00", "8"},
		{"overnight wraparound", "22:00", "06:00", "8"},
		{"zero span", "10:00", "10:00", "0"},
		{"partial hour rounds to tenth", "09:00", "17:20", "8.3"},
		{"short span", "10:00", "14:00", "4"},
		{"just before midnight", "23:30", "00:15", "0.8"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := attendance.HoursBetween(tc.workIn, tc.workOut)
			assert.True(t, got.Equal(dec(tc.want)), "expected %s, got %s", tc.want, got)
		})
	}
}

func TestHoursBetween_MalformedInputsDegradeToZero(t *testing.T) {
	// Blank time fields are legitimate for holiday/leave statuses; one bad
	// record must not fail a whole aggregation.
	cases := [][2]string{
		{"", "18:00"},
		{"10:00", ""},
		{"", ""},
		{"10", "18:00"},
		{"ten:00", "18:00"},
		{"10:00", "25:00"},
		{"10:61", "18:00"},
		{"-1:00", "18:00"},
	}

	for _, tc := range cases {
		got := attendance.HoursBetween(tc[0], tc[1])
		assert.True(t, got.IsZero(), "HoursBetween(%q, %q) = %s, want 0", tc[0], tc[1], got)
	}
}

func TestParseClock(t *testing.T) {
	minutes, err := attendance.ParseClock("09:45")
	require.NoError(t, err)
	assert.Equal(t, 9*60+45, minutes)

	_, err = attendance.ParseClock("9:75")
	require.Error(t, err)
	assert.True(t, errors.Is(err, calendar.ErrMalformedTime))

	var malformed *calendar.MalformedTimeError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "9:75", malformed.Raw)
}

// =============================================================================
// STATUS FACTORS
// =============================================================================

func TestHoursFactor(t *testing.T) {
	full := []attendance.Status{attendance.StatusPresentFull, attendance.StatusCompOff}
	for _, s := range full {
		assert.True(t, s.HoursFactor().Equal(dec("1")), "%s should have factor 1", s)
	}

	half := []attendance.Status{
		attendance.StatusPresentHalf,
		attendance.StatusHalfDayA,
		attendance.StatusHalfDayB,
	}
	for _, s := range half {
		assert.True(t, s.HoursFactor().Equal(dec("0.5")), "%s should have factor 0.5", s)
	}

	zero := []attendance.Status{
		attendance.StatusEmergencyLeave,
		attendance.StatusCasualLeave,
		attendance.StatusPublicHoliday,
		attendance.StatusSecondSaturday,
		attendance.StatusSunday,
	}
	for _, s := range zero {
		assert.True(t, s.HoursFactor().IsZero(), "%s should have factor 0", s)
	}
}

func TestEffectiveHours(t *testing.T) {
	// Full day: raw span applies as-is.
	fullDay := record(t, 2, attendance.StatusPresentFull, "10:00", "18:00")
	assert.True(t, attendance.EffectiveHours(fullDay).Equal(dec("8")))

	// Half day: 4h raw span halves to 2h.
	halfDay := record(t, 3, attendance.StatusPresentHalf, "10:00", "14:00")
	assert.True(t, attendance.EffectiveHours(halfDay).Equal(dec("2")))

	// Zero-factor statuses ignore whatever is in the time fields.
	leave := record(t, 4, attendance.StatusCasualLeave, "10:00", "18:00")
	assert.True(t, attendance.EffectiveHours(leave).IsZero())
}

// =============================================================================
// AGGREGATION
// =============================================================================

func TestAggregate_MonthlyScenario(t *testing.T) {
	// GIVEN: five records: one full 10:00-18:00, one half 10:00-14:00,
	//        one Sunday and two casual-leave days
	// THEN:  8.0 + 2.0 + 0 + 0 + 0 = 10.0 total
	records := []attendance.Record{
		record(t, 2, attendance.StatusPresentFull, "10:00", "18:00"),
		record(t, 3, attendance.StatusPresentHalf, "10:00", "14:00"),
		record(t, 8, attendance.StatusSunday, "", ""),
		record(t, 9, attendance.StatusCasualLeave, "", ""),
		record(t, 10, attendance.StatusCasualLeave, "", ""),
	}

	summary := attendance.Aggregate(records)
	require.Len(t, summary.PerRecord, 5)
	assert.True(t, summary.PerRecord[0].Equal(dec("8")))
	assert.True(t, summary.PerRecord[1].Equal(dec("2")))
	assert.True(t, summary.Total.Equal(dec("10")), "expected total 10.0, got %s", summary.Total)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	records := []attendance.Record{
		record(t, 2, attendance.StatusPresentFull, "09:00", "17:30"),
		record(t, 3, attendance.StatusPresentHalf, "10:00", "13:00"),
		record(t, 4, attendance.StatusCompOff, "22:00", "06:00"),
		record(t, 5, attendance.StatusCasualLeave, "", ""),
		record(t, 6, attendance.StatusHalfDayA, "10:00", "15:00"),
	}
	want := attendance.Aggregate(records).Total

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]attendance.Record(nil), records...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := attendance.Aggregate(shuffled).Total
		assert.True(t, got.Equal(want), "permutation %d: %s != %s", i, got, want)
	}
}

func TestAggregate_EmptyAndBadRecords(t *testing.T) {
	// Empty list is a zero total, not an error.
	summary := attendance.Aggregate(nil)
	assert.True(t, summary.Total.IsZero())
	assert.Empty(t, summary.PerRecord)

	// A record with unparseable times contributes zero without failing the rest.
	records := []attendance.Record{
		record(t, 2, attendance.StatusPresentFull, "oops", "18:00"),
		record(t, 3, attendance.StatusPresentFull, "10:00", "18:00"),
	}
	summary = attendance.Aggregate(records)
	assert.True(t, summary.PerRecord[0].IsZero())
	assert.True(t, summary.Total.Equal(dec("8")))
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	records := []attendance.Record{
		record(t, 2, attendance.StatusPresentFull, "10:00", "18:00"),
	}
	before := records[0]
	attendance.Aggregate(records)
	assert.Equal(t, before, records[0])
}

// =============================================================================
// RECORD VALIDATION
// =============================================================================

func TestRecordValidate_CompOffRequiresExtraWork(t *testing.T) {
	r := record(t, 7, attendance.StatusCompOff, "10:00", "18:00")
	err := r.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, attendance.ErrExtraWorkRequired))

	// Partial extra-work details are still invalid.
	r.ExtraWork = &attendance.ExtraWork{
		WorkedDate: day(t, 1),
		WorkedTime: "10:00",
		Hours:      dec("8"),
	}
	assert.Error(t, r.Validate())

	r.ExtraWork.CompOffDate = day(t, 7)
	r.ExtraWork.CompOffTime = "10:00"
	assert.NoError(t, r.Validate())

	// Hours must be positive.
	r.ExtraWork.Hours = decimal.Zero
	assert.Error(t, r.Validate())
}

func TestRecordValidate_UnknownStatus(t *testing.T) {
	r := attendance.Record{Date: day(t, 2), Status: attendance.Status("VACATION")}
	err := r.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, attendance.ErrUnknownStatus))
}
