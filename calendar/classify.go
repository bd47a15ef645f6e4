package calendar

// =============================================================================
// DAY CLASSIFICATION - Exactly one classification per date
// =============================================================================

// DayKind is the closed set of day classifications.
type DayKind string

const (
	Working               DayKind = "WORKING"
	WeekendSunday         DayKind = "WEEKEND_SUNDAY"
	WeekendSecondSaturday DayKind = "WEEKEND_SECOND_SATURDAY"
	MandatoryHoliday      DayKind = "MANDATORY_HOLIDAY"
	OptionalHoliday       DayKind = "OPTIONAL_HOLIDAY"
)

// TakenState is the taken/not-taken flag of an optional holiday.
type TakenState string

const (
	Taken    TakenState = "TAKEN"
	NotTaken TakenState = "NOT_TAKEN"
)

// Classification is the tagged result of classifying one date.
// HolidayName is set for both holiday kinds, and also on a Sunday that
// coincides with a holiday definition: the Sunday label wins, but the
// holiday fact is not suppressed. Taken is meaningful only for
// OptionalHoliday.
type Classification struct {
	Kind        DayKind
	HolidayName string
	Taken       TakenState
}

// IsEffectiveHoliday reports whether this classification excludes the day
// from a working-day count: weekends, mandatory holidays, and optional
// holidays currently marked taken.
func (c Classification) IsEffectiveHoliday() bool {
	switch c.Kind {
	case WeekendSunday, WeekendSecondSaturday, MandatoryHoliday:
		return true
	case OptionalHoliday:
		return c.Taken == Taken
	default:
		return false
	}
}

// OverrideMap is a snapshot of per-date taken/not-taken decisions, keyed by
// the canonical YYYY-MM-DD key. The authoritative copy is owned by the leave
// management system; this engine treats a snapshot as immutable for the
// duration of one query and never retains it. Entries on dates that are not
// optional holidays are ignored.
type OverrideMap map[string]TakenState

// =============================================================================
// CLASSIFIER
// =============================================================================

// Classifier classifies dates against one holiday table.
type Classifier struct {
	Table *HolidayTable
}

// NewClassifier returns a classifier over the given table, defaulting to
// the built-in company table when nil.
func NewClassifier(table *HolidayTable) *Classifier {
	if table == nil {
		table = DefaultTable()
	}
	return &Classifier{Table: table}
}

// Classify returns the single classification for a date. The override, when
// present, applies only if the date is an optional holiday.
//
// Priority order: Sunday label first, then mandatory holiday, then optional
// holiday, then second Saturday, then working.
func (c *Classifier) Classify(date Date, overrides OverrideMap) Classification {
	def, found := c.Table.DefinitionFor(date.Month(), date.Day())

	if date.Weekday() == 0 {
		// Sunday labeling wins, but a coinciding holiday fact is kept.
		cls := Classification{Kind: WeekendSunday}
		if found {
			cls.HolidayName = def.Name
		}
		return cls
	}

	if found && def.Mandatory {
		return Classification{Kind: MandatoryHoliday, HolidayName: def.Name}
	}
	if found {
		taken := NotTaken
		if state, ok := overrides[date.Key()]; ok {
			taken = state
		}
		return Classification{Kind: OptionalHoliday, HolidayName: def.Name, Taken: taken}
	}
	if date.Weekday() == 6 && date.WeekOfMonthIndex() == 1 {
		return Classification{Kind: WeekendSecondSaturday}
	}
	return Classification{Kind: Working}
}
