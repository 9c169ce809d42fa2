package availability

import (
	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
	"github.com/m0rzh/BAP-AvailabilityService/pkg/types"
)

// OperatingHours результат поиска рабочих часов на день: либо закрыто,
// либо открытое окно с валидными перерывами. Времена хранятся в минутах
// от полуночи - во внутреннем представлении движка.
//
// Явный тегированный результат вместо опциональных полей: каждый
// вызывающий обязан обработать оба случая
type OperatingHours struct {
	Open         bool
	OpenMinutes  int
	CloseMinutes int
	Breaks       []BreakWindow
}

// BreakWindow перерыв в минутах от полуночи
type BreakWindow struct {
	StartMinutes int
	EndMinutes   int
}

var closedDay = OperatingHours{Open: false}

// resolveOperatingHours ищет рабочие часы бизнеса на разрешенный день недели.
//
// Отсутствие расписания всегда трактуется как "закрыто", никогда как
// "открыто круглосуточно" - иначе можно было бы записаться в нерабочее время.
// Нечитаемые open/close тоже дают "закрыто" (консервативная деградация),
// а нечитаемые или вылезающие за окно перерывы просто исключаются из
// проверок: в худшем случае сгенерируются лишние слоты, которые отсечет
// валидация при создании записи.
func (e *Engine) resolveOperatingHours(business *domain.Business, weekday string) OperatingHours {
	if !business.HasSchedule() {
		e.log.Info("availability: business id=%d has no weekly schedule, treating as closed", business.ID)
		return closedDay
	}

	day := business.WeeklySchedule.ForWeekday(weekday)
	if !day.IsOpen || day.OpenTime == nil || day.CloseTime == nil {
		return closedDay
	}

	openMinutes, err := types.TimeString(*day.OpenTime).Minutes()
	if err != nil {
		e.log.Warn("availability: business id=%d has unparseable open time %q for %s, treating as closed",
			business.ID, *day.OpenTime, weekday)
		return closedDay
	}
	closeMinutes, err := types.TimeString(*day.CloseTime).Minutes()
	if err != nil {
		e.log.Warn("availability: business id=%d has unparseable close time %q for %s, treating as closed",
			business.ID, *day.CloseTime, weekday)
		return closedDay
	}
	if closeMinutes <= openMinutes {
		e.log.Warn("availability: business id=%d has inverted hours %s-%s for %s, treating as closed",
			business.ID, *day.OpenTime, *day.CloseTime, weekday)
		return closedDay
	}

	breaks := make([]BreakWindow, 0, len(day.Breaks))
	for _, b := range day.Breaks {
		startMinutes, errStart := types.TimeString(b.StartTime).Minutes()
		endMinutes, errEnd := types.TimeString(b.EndTime).Minutes()
		if errStart != nil || errEnd != nil {
			e.log.Warn("availability: business id=%d has unparseable break %q-%q, ignoring it",
				business.ID, b.StartTime, b.EndTime)
			continue
		}
		// Перерыв с перепутанными границами или вне рабочего окна исключаем
		if endMinutes <= startMinutes || startMinutes < openMinutes || endMinutes > closeMinutes {
			e.log.Warn("availability: business id=%d has malformed break %q-%q outside %s-%s, ignoring it",
				business.ID, b.StartTime, b.EndTime, *day.OpenTime, *day.CloseTime)
			continue
		}
		breaks = append(breaks, BreakWindow{StartMinutes: startMinutes, EndMinutes: endMinutes})
	}

	return OperatingHours{
		Open:         true,
		OpenMinutes:  openMinutes,
		CloseMinutes: closeMinutes,
		Breaks:       breaks,
	}
}
