package availability

import (
	"time"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
)

// resolveLocation возвращает *time.Location для таймзоны бизнеса.
// Некорректная или пустая таймзона откатывается на UTC с предупреждением:
// UI записи должен отрисовать хоть что-то, поэтому движок не падает
func (e *Engine) resolveLocation(timeZone string) *time.Location {
	if timeZone == "" {
		e.log.Warn("availability: business has no time zone, falling back to UTC")
		return time.UTC
	}
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		e.log.Warn("availability: invalid time zone %q, falling back to UTC: %v", timeZone, err)
		return time.UTC
	}
	return loc
}

// ResolveWeekday возвращает название дня недели календарной даты в зоне
// бизнеса. Дата реконструируется в локальный полдень: полночь может не
// существовать или сдвинуться при переходе на летнее время, а полдень
// однозначно остается внутри той же календарной даты.
//
// Именно зона бизнеса определяет границы дня: бизнес в одной зоне,
// открытый из браузера в другой, все равно живет по своим собственным дням.
func ResolveWeekday(date time.Time, loc *time.Location) string {
	y, m, d := date.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, loc)

	switch noon.Weekday() {
	case time.Monday:
		return domain.WeekdayMonday
	case time.Tuesday:
		return domain.WeekdayTuesday
	case time.Wednesday:
		return domain.WeekdayWednesday
	case time.Thursday:
		return domain.WeekdayThursday
	case time.Friday:
		return domain.WeekdayFriday
	case time.Saturday:
		return domain.WeekdaySaturday
	default:
		return domain.WeekdaySunday
	}
}
