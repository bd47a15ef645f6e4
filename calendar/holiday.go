package calendar

import (
	"fmt"
	"time"
)

// =============================================================================
// HOLIDAY TABLE - Fixed recurring annual holidays
// =============================================================================

// HolidayDefinition is one recurring annual holiday. It recurs on the same
// month/day every year. Mandatory holidays are always days off; optional
// holidays count as days off only when marked taken for a specific date.
type HolidayDefinition struct {
	Month     time.Month
	Day       int
	Name      string
	Mandatory bool
}

// HolidayTable is a read-only lookup over holiday definitions.
// Invariant: at most one definition per (month, day).
type HolidayTable struct {
	byDay map[int]HolidayDefinition // month*100 + day
}

// NewHolidayTable builds a table from definitions. Duplicate (month, day)
// entries are a programming error in the hand-maintained table and panic.
func NewHolidayTable(defs []HolidayDefinition) *HolidayTable {
	t := &HolidayTable{byDay: make(map[int]HolidayDefinition, len(defs))}
	for _, def := range defs {
		key := int(def.Month)*100 + def.Day
		if _, exists := t.byDay[key]; exists {
			panic(fmt.Sprintf("duplicate holiday definition for %s %d", def.Month, def.Day))
		}
		t.byDay[key] = def
	}
	return t
}

// DefinitionFor returns the definition for (month, day), if any.
func (t *HolidayTable) DefinitionFor(month time.Month, day int) (HolidayDefinition, bool) {
	def, ok := t.byDay[int(month)*100+day]
	return def, ok
}

// Definitions returns all definitions ordered by month then day.
func (t *HolidayTable) Definitions() []HolidayDefinition {
	defs := make([]HolidayDefinition, 0, len(t.byDay))
	for m := time.January; m <= time.December; m++ {
		for d := 1; d <= 31; d++ {
			if def, ok := t.byDay[int(m)*100+d]; ok {
				defs = append(defs, def)
			}
		}
	}
	return defs
}

// DefaultTable is the hand-maintained company holiday table. Only fixed-date
// holidays belong here; movable observances are handled as optional entries
// on their commonly observed date.
func DefaultTable() *HolidayTable {
	return NewHolidayTable([]HolidayDefinition{
		{Month: time.January, Day: 1, Name: "New Year's Day", Mandatory: false},
		{Month: time.January, Day: 14, Name: "Makar Sankranti", Mandatory: false},
		{Month: time.January, Day: 26, Name: "Republic Day", Mandatory: true},
		{Month: time.April, Day: 14, Name: "Ambedkar Jayanti", Mandatory: false},
		{Month: time.May, Day: 1, Name: "May Day", Mandatory: true},
		{Month: time.August, Day: 15, Name: "Independence Day", Mandatory: true},
		{Month: time.September, Day: 5, Name: "Onam", Mandatory: false},
		{Month: time.October, Day: 2, Name: "Gandhi Jayanti", Mandatory: true},
		{Month: time.November, Day: 1, Name: "Kannada Rajyotsava", Mandatory: false},
		{Month: time.December, Day: 25, Name: "Christmas Day", Mandatory: true},
		{Month: time.December, Day: 31, Name: "New Year's Eve", Mandatory: false},
	})
}
