package domain

import "strings"

// Business represents a business profile as supplied by the business-profile
// service. All wall-clock times in the weekly schedule are interpreted in the
// business's own time zone, independent of the caller's zone.
type Business struct {
	ID             int64
	Name           string
	TimeZone       string // IANA zone identifier, e.g. "Europe/Berlin"
	WeeklySchedule *WeeklySchedule
}

// HasSchedule returns true if the business carries any weekly schedule data.
// Absence of schedule data always means "closed", never "open all day".
func (b *Business) HasSchedule() bool {
	return b != nil && b.WeeklySchedule != nil
}

// WeeklySchedule is the recurring per-weekday operating configuration.
type WeeklySchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForWeekday returns the schedule for the given lowercase weekday name
// ("monday".."sunday"). Unknown names resolve to a closed day.
func (w *WeeklySchedule) ForWeekday(weekday string) DaySchedule {
	if w == nil {
		return DaySchedule{IsOpen: false}
	}
	switch strings.ToLower(weekday) {
	case WeekdayMonday:
		return w.Monday
	case WeekdayTuesday:
		return w.Tuesday
	case WeekdayWednesday:
		return w.Wednesday
	case WeekdayThursday:
		return w.Thursday
	case WeekdayFriday:
		return w.Friday
	case WeekdaySaturday:
		return w.Saturday
	case WeekdaySunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// DaySchedule is the operating configuration for a single weekday.
// OpenTime and CloseTime are local "HH:MM" strings present only when IsOpen.
type DaySchedule struct {
	IsOpen    bool
	OpenTime  *string
	CloseTime *string
	Breaks    []BreakInterval
}

// BreakInterval is a local time-of-day sub-interval of the open window during
// which no service starts or runs (lunch break, shift change). Breaks are
// expected not to overlap each other; malformed intervals are ignored by the
// availability engine rather than rejected.
type BreakInterval struct {
	StartTime   string // "HH:MM"
	EndTime     string // "HH:MM"
	Description string
}

// Service represents a bookable service offered by a business.
// DurationMinutes drives both the slot granularity and the slot fit test.
type Service struct {
	ID              int64
	BusinessID      int64
	Name            string
	DurationMinutes int
}
