package calendar_test

import (
	"testing"
	"time"

	"github.com/warp/attendance-engine/calendar"
)

func classify(t *testing.T, year int, month time.Month, day int, overrides calendar.OverrideMap) calendar.Classification {
	t.Helper()
	c := calendar.NewClassifier(nil)
	return c.Classify(date(t, year, month, day), overrides)
}

// =============================================================================
// CLASSIFICATION PRIORITY
// =============================================================================

func TestClassify_WorkingDay(t *testing.T) {
	// Tue Jan 20 2026: no holiday, not a weekend
	cls := classify(t, 2026, time.January, 20, nil)
	if cls.Kind != calendar.Working {
		t.Errorf("expected WORKING, got %s", cls.Kind)
	}
	if cls.IsEffectiveHoliday() {
		t.Error("working day must not be an effective holiday")
	}
}

func TestClassify_Sunday(t *testing.T) {
	cls := classify(t, 2026, time.January, 4, nil)
	if cls.Kind != calendar.WeekendSunday {
		t.Errorf("expected WEEKEND_SUNDAY, got %s", cls.Kind)
	}
	if !cls.IsEffectiveHoliday() {
		t.Error("Sunday must be an effective holiday")
	}
}

func TestClassify_SecondSaturdayOnly(t *testing.T) {
	// Saturdays of Jan 2026: 3, 10, 17, 24, 31. Only the 10th has week
	// index 1 and is the second Saturday.
	for _, day := range []int{3, 17, 24, 31} {
		cls := classify(t, 2026, time.January, day, nil)
		if cls.Kind != calendar.Working {
			t.Errorf("Jan %d: expected WORKING, got %s", day, cls.Kind)
		}
	}

	cls := classify(t, 2026, time.January, 10, nil)
	if cls.Kind != calendar.WeekendSecondSaturday {
		t.Errorf("Jan 10: expected WEEKEND_SECOND_SATURDAY, got %s", cls.Kind)
	}
}

func TestClassify_MandatoryHoliday(t *testing.T) {
	// Mon Jan 26 2026: Republic Day
	cls := classify(t, 2026, time.January, 26, nil)
	if cls.Kind != calendar.MandatoryHoliday {
		t.Errorf("expected MANDATORY_HOLIDAY, got %s", cls.Kind)
	}
	if cls.HolidayName != "Republic Day" {
		t.Errorf("expected Republic Day, got %q", cls.HolidayName)
	}
	if !cls.IsEffectiveHoliday() {
		t.Error("mandatory holiday must be an effective holiday")
	}
}

func TestClassify_SundayCoincidingWithHoliday(t *testing.T) {
	// Sun Jan 26 2025: the Sunday label wins, the holiday fact is kept.
	cls := classify(t, 2025, time.January, 26, nil)
	if cls.Kind != calendar.WeekendSunday {
		t.Errorf("expected WEEKEND_SUNDAY, got %s", cls.Kind)
	}
	if cls.HolidayName != "Republic Day" {
		t.Errorf("coinciding holiday name must be kept, got %q", cls.HolidayName)
	}
	if !cls.IsEffectiveHoliday() {
		t.Error("Sunday-plus-holiday must be an effective holiday")
	}
}

// =============================================================================
// OPTIONAL HOLIDAYS AND OVERRIDES
// =============================================================================

func TestClassify_OptionalHoliday_DefaultsNotTaken(t *testing.T) {
	// Wed Jan 14 2026: Makar Sankranti, optional
	cls := classify(t, 2026, time.January, 14, nil)
	if cls.Kind != calendar.OptionalHoliday {
		t.Errorf("expected OPTIONAL_HOLIDAY, got %s", cls.Kind)
	}
	if cls.Taken != calendar.NotTaken {
		t.Errorf("expected NOT_TAKEN default, got %s", cls.Taken)
	}
	if cls.IsEffectiveHoliday() {
		t.Error("an optional holiday not taken counts as a working day")
	}
}

func TestClassify_OptionalHoliday_TakenOverride(t *testing.T) {
	overrides := calendar.OverrideMap{"2026-01-14": calendar.Taken}

	cls := classify(t, 2026, time.January, 14, overrides)
	if cls.Taken != calendar.Taken {
		t.Errorf("expected TAKEN, got %s", cls.Taken)
	}
	if !cls.IsEffectiveHoliday() {
		t.Error("a taken optional holiday must be an effective holiday")
	}
}

func TestClassify_OverrideOnNonHolidayIgnored(t *testing.T) {
	// Tue Jan 20 2026 has no holiday definition; the override is ignored.
	overrides := calendar.OverrideMap{"2026-01-20": calendar.Taken}

	cls := classify(t, 2026, time.January, 20, overrides)
	if cls.Kind != calendar.Working {
		t.Errorf("expected WORKING, got %s", cls.Kind)
	}
}

func TestClassify_OverrideCannotDemoteMandatory(t *testing.T) {
	overrides := calendar.OverrideMap{"2026-01-26": calendar.NotTaken}

	cls := classify(t, 2026, time.January, 26, overrides)
	if cls.Kind != calendar.MandatoryHoliday {
		t.Errorf("expected MANDATORY_HOLIDAY, got %s", cls.Kind)
	}
	if !cls.IsEffectiveHoliday() {
		t.Error("mandatory holidays are never subject to override")
	}
}

// =============================================================================
// HOLIDAY TABLE
// =============================================================================

func TestHolidayTable_DefinitionFor(t *testing.T) {
	table := calendar.DefaultTable()

	def, ok := table.DefinitionFor(time.August, 15)
	if !ok {
		t.Fatal("expected a definition for Aug 15")
	}
	if def.Name != "Independence Day" || !def.Mandatory {
		t.Errorf("unexpected definition %+v", def)
	}

	if _, ok := table.DefinitionFor(time.August, 16); ok {
		t.Error("expected no definition for Aug 16")
	}
}

func TestHolidayTable_RejectsDuplicateDates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate (month, day)")
		}
	}()
	calendar.NewHolidayTable([]calendar.HolidayDefinition{
		{Month: time.March, Day: 8, Name: "A", Mandatory: true},
		{Month: time.March, Day: 8, Name: "B", Mandatory: false},
	})
}

func TestHolidayTable_DefinitionsOrdered(t *testing.T) {
	defs := calendar.DefaultTable().Definitions()
	for i := 1; i < len(defs); i++ {
		prev, cur := defs[i-1], defs[i]
		if prev.Month > cur.Month || (prev.Month == cur.Month && prev.Day >= cur.Day) {
			t.Errorf("definitions out of order at %d: %v before %v", i, prev, cur)
		}
	}
}
