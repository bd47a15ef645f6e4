package calendar_test

import (
	"testing"
	"time"

	"github.com/warp/attendance-engine/calendar"
)

// =============================================================================
// MONTH LIST
// =============================================================================

func TestBuildMonth_OneEntryPerDayAscending(t *testing.T) {
	c := calendar.NewClassifier(nil)

	entries, err := c.BuildMonth(2026, time.January, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 31 {
		t.Fatalf("expected 31 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Date.Day() != i+1 {
			t.Errorf("entry %d: expected day %d, got %d", i, i+1, e.Date.Day())
		}
	}
}

func TestBuildMonth_WeekendInvariants(t *testing.T) {
	// Every Sunday is WEEKEND_SUNDAY (or a coinciding holiday fact on a
	// Sunday, which still labels as Sunday); exactly one Saturday per month
	// is the second Saturday.
	c := calendar.NewClassifier(nil)

	for month := time.January; month <= time.December; month++ {
		entries, err := c.BuildMonth(2026, month, nil)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", month, err)
		}

		secondSaturdays := 0
		for _, e := range entries {
			switch e.Date.Weekday() {
			case 0:
				if e.Classification.Kind != calendar.WeekendSunday {
					t.Errorf("%s: Sunday classified as %s", e.Date, e.Classification.Kind)
				}
			case 6:
				if e.Classification.Kind == calendar.WeekendSecondSaturday {
					secondSaturdays++
					if e.Date.WeekOfMonthIndex() != 1 {
						t.Errorf("%s: second Saturday with week index %d", e.Date, e.Date.WeekOfMonthIndex())
					}
				}
			default:
				if e.Classification.Kind == calendar.WeekendSecondSaturday ||
					e.Classification.Kind == calendar.WeekendSunday {
					t.Errorf("%s: weekday classified as %s", e.Date, e.Classification.Kind)
				}
			}
		}
		if secondSaturdays != 1 {
			t.Errorf("%s 2026: expected exactly one second Saturday, got %d", month, secondSaturdays)
		}
	}
}

func TestBuildMonth_InvalidMonth(t *testing.T) {
	c := calendar.NewClassifier(nil)
	if _, err := c.BuildMonth(2026, time.Month(13), nil); err == nil {
		t.Error("expected error for month 13")
	}
}

func TestBuildMonth_OverrideAppliesOnlyToItsDate(t *testing.T) {
	c := calendar.NewClassifier(nil)
	overrides := calendar.OverrideMap{"2026-01-14": calendar.Taken}

	entries, err := c.BuildMonth(2026, time.January, overrides)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, e := range entries {
		if e.Classification.Kind != calendar.OptionalHoliday {
			continue
		}
		want := calendar.NotTaken
		if e.Date.Key() == "2026-01-14" {
			want = calendar.Taken
		}
		if e.Classification.Taken != want {
			t.Errorf("%s: expected %s, got %s", e.Date, want, e.Classification.Taken)
		}
	}
}

// =============================================================================
// MONTH GRID
// =============================================================================

func TestBuildMonthGrid_LeadingAndTrailingPadding(t *testing.T) {
	// April 2026 starts on a Wednesday and has 30 days:
	// 3 leading nils, 5 rows, 2 trailing nils.
	c := calendar.NewClassifier(nil)

	grid, err := c.BuildMonthGrid(2026, time.April)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(grid) != 5 {
		t.Fatalf("expected 5 week rows, got %d", len(grid))
	}

	for i, cell := range grid[0][:3] {
		if cell != nil {
			t.Errorf("leading cell %d should be nil, got %+v", i, cell)
		}
	}
	if grid[0][3] == nil || grid[0][3].Day != 1 {
		t.Fatalf("expected day 1 at column 3, got %+v", grid[0][3])
	}

	last := grid[4]
	if last[4] == nil || last[4].Day != 30 {
		t.Errorf("expected day 30 at column 4 of the last row, got %+v", last[4])
	}
	for i, cell := range last[5:] {
		if cell != nil {
			t.Errorf("trailing cell %d should be nil, got %+v", i, cell)
		}
	}
}

func TestBuildMonthGrid_ExactWeeksNoPadding(t *testing.T) {
	// February 2026 starts on a Sunday and has 28 days: a perfect 4x7 grid.
	c := calendar.NewClassifier(nil)

	grid, err := c.BuildMonthGrid(2026, time.February)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(grid) != 4 {
		t.Fatalf("expected 4 week rows, got %d", len(grid))
	}
	for i, row := range grid {
		if len(row) != 7 {
			t.Fatalf("row %d: expected 7 cells, got %d", i, len(row))
		}
		for j, cell := range row {
			if cell == nil {
				t.Errorf("row %d col %d: unexpected nil cell", i, j)
			}
		}
	}
}

func TestBuildMonthGrid_AgreesWithBuildMonth(t *testing.T) {
	// The grid is a pure re-shaping of the month: every cell's date key must
	// appear in the month list exactly once, in grid reading order, and the
	// cell's column must equal that date's weekday.
	c := calendar.NewClassifier(nil)

	entries, err := c.BuildMonth(2026, time.September, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	grid, err := c.BuildMonthGrid(2026, time.September)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	i := 0
	for _, row := range grid {
		for col, cell := range row {
			if cell == nil {
				continue
			}
			if i >= len(entries) {
				t.Fatalf("grid has more cells than month days")
			}
			e := entries[i]
			if cell.DateKey != e.Date.Key() || cell.Day != e.Date.Day() {
				t.Errorf("cell %d: got %s/%d, want %s", i, cell.DateKey, cell.Day, e.Date.Key())
			}
			if col != e.Date.Weekday() {
				t.Errorf("%s: placed in column %d, weekday is %d", e.Date, col, e.Date.Weekday())
			}
			i++
		}
	}
	if i != len(entries) {
		t.Errorf("grid holds %d cells, month has %d days", i, len(entries))
	}
}
