package calendar

import "time"

// =============================================================================
// WORKING-DAY RANGE COUNTER
// =============================================================================

// CountWorkingDays counts the days in [start, end] (inclusive) that are not
// effective holidays: Sundays, second Saturdays, mandatory holidays, and
// optional holidays marked taken in the override snapshot are excluded.
// An inverted range (end before start) counts zero; it never goes negative.
//
// Classified months are memoized per call, so a range spanning N months
// performs N month builds regardless of its length in days. The memo is
// local to the call and never shared between queries.
func (c *Classifier) CountWorkingDays(start, end Date, overrides OverrideMap) int {
	if end.Before(start) {
		return 0
	}

	type monthKey struct {
		year  int
		month time.Month
	}
	months := make(map[monthKey]map[string]Classification)

	classFor := func(d Date) Classification {
		key := monthKey{d.Year(), d.Month()}
		byDate, ok := months[key]
		if !ok {
			entries, err := c.BuildMonth(key.year, key.month, overrides)
			if err != nil {
				// Unreachable: d was a valid Date, so its month builds.
				panic(err)
			}
			byDate = make(map[string]Classification, len(entries))
			for _, e := range entries {
				byDate[e.Date.Key()] = e.Classification
			}
			months[key] = byDate
		}
		return byDate[d.Key()]
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		if !classFor(d).IsEffectiveHoliday() {
			count++
		}
	}
	return count
}
