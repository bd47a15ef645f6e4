package calendar

import "time"

// =============================================================================
// MONTH CALENDAR - Classified day list and week-aligned grid
// =============================================================================

// DayEntry pairs one date of a month with its classification.
type DayEntry struct {
	Date           Date
	Classification Classification
}

// GridCell is one non-empty cell of a month grid. Padding cells before
// day 1 and after the last day are nil.
type GridCell struct {
	Day     int
	DateKey string
}

// BuildMonth returns one entry per day of the month, ordered by day
// ascending, classified against the classifier's holiday table and the
// supplied override snapshot.
func (c *Classifier) BuildMonth(year int, month time.Month, overrides OverrideMap) ([]DayEntry, error) {
	first, err := StartOfMonth(year, month)
	if err != nil {
		return nil, err
	}

	days := DaysIn(year, month)
	entries := make([]DayEntry, days)
	date := first
	for i := 0; i < days; i++ {
		entries[i] = DayEntry{Date: date, Classification: c.Classify(date, overrides)}
		date = date.AddDays(1)
	}
	return entries, nil
}

// BuildMonthGrid re-shapes the month into Sunday-first week rows of seven
// cells for calendar rendering. The first row is padded with nil cells up to
// the weekday of day 1; the final row is padded with nil after the last day.
// The grid carries date keys only; classifications come from BuildMonth so
// the two views can never disagree.
func (c *Classifier) BuildMonthGrid(year int, month time.Month) ([][]*GridCell, error) {
	first, err := StartOfMonth(year, month)
	if err != nil {
		return nil, err
	}

	days := DaysIn(year, month)
	var grid [][]*GridCell

	row := make([]*GridCell, 7)
	col := first.Weekday()
	date := first
	for day := 1; day <= days; day++ {
		row[col] = &GridCell{Day: day, DateKey: date.Key()}
		col++
		if col == 7 {
			grid = append(grid, row)
			row = make([]*GridCell, 7)
			col = 0
		}
		date = date.AddDays(1)
	}
	if col != 0 {
		grid = append(grid, row)
	}
	return grid, nil
}
