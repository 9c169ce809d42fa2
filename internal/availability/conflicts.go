package availability

import (
	"time"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
	"github.com/m0rzh/BAP-AvailabilityService/pkg/types"
)

// apptWindow интервал существующей записи в минутах от полуночи в зоне бизнеса
type apptWindow struct {
	start int
	end   int
}

// markAppointmentConflicts помечает слоты, пересекающиеся с существующими
// записями. Неактивные (отмененные, no-show) записи не занимают время.
//
// Слот с конфликтом получает available=false и conflictReason
// "appointment-conflict". Первого конфликта достаточно для отклонения
// слота, поэтому перебор записей прерывается на первом совпадении.
func (e *Engine) markAppointmentConflicts(
	slots []domain.Slot,
	durationMinutes int,
	appointments []domain.Appointment,
	loc *time.Location,
) {
	if len(slots) == 0 || len(appointments) == 0 {
		return
	}

	windows := make([]apptWindow, 0, len(appointments))
	for i := range appointments {
		appt := &appointments[i]
		if !appt.IsActive() {
			continue
		}
		window, ok := e.normalizeAppointmentWindow(appt, loc)
		if !ok {
			// Запись с нечитаемым временем пропускаем целиком (fail open
			// только для нее), вычисление не прерываем
			continue
		}
		windows = append(windows, window)
	}

	for i := range slots {
		slotStart, err := slots[i].Time.Minutes()
		if err != nil {
			continue
		}
		slotEnd := slotStart + durationMinutes

		for _, w := range windows {
			// Строгое пересечение интервалов. Граничные случаи разрешены:
			// slotEnd == w.start (новая услуга заканчивается ровно когда
			// начинается существующая) и slotStart == w.end (начинается
			// ровно когда существующая закончилась) - back-to-back запись
			// явно допустима.
			//
			// Примеры (запись 10:00-10:30):
			// - Слот 10:30-11:00 → доступен (граничат)
			// - Слот 09:30-10:00 → доступен (граничат)
			// - Слот 10:15-10:45 → конфликт
			if slotStart < w.end && slotEnd > w.start {
				slots[i].Available = false
				slots[i].ConflictReason = domain.ConflictReasonAppointment
				break
			}
		}
	}
}

// normalizeAppointmentWindow приводит время записи к минутам от полуночи
// в зоне бизнеса. Единственное место с двумя ветками разбора формата;
// глубже в логике сравнения форматы уже не различаются.
func (e *Engine) normalizeAppointmentWindow(appt *domain.Appointment, loc *time.Location) (apptWindow, bool) {
	start, ok := e.parseClockValue(appt.StartTime, loc, appt.ID)
	if !ok {
		return apptWindow{}, false
	}

	var end int
	switch {
	case appt.EndTime != nil && *appt.EndTime != "":
		end, ok = e.parseClockValue(*appt.EndTime, loc, appt.ID)
		if !ok {
			return apptWindow{}, false
		}
	case appt.DurationMinutes > 0:
		end = start + appt.DurationMinutes
	default:
		e.log.Warn("availability: appointment id=%d has neither end time nor duration, skipping it", appt.ID)
		return apptWindow{}, false
	}

	if end <= start {
		e.log.Warn("availability: appointment id=%d has inverted interval, skipping it", appt.ID)
		return apptWindow{}, false
	}

	return apptWindow{start: start, end: end}, true
}

// parseClockValue разбирает значение времени записи.
//
// Две ветки: абсолютный RFC3339 timestamp конвертируется в настенное время
// зоны бизнеса через time.Location (не вычитанием UTC-смещения - наивная
// арифметика смещений ломается на границах перехода на летнее время);
// иначе значение трактуется как голое "HH:MM".
func (e *Engine) parseClockValue(raw string, loc *time.Location, apptID int64) (int, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		local := t.In(loc)
		return local.Hour()*60 + local.Minute(), true
	}

	minutes, err := types.TimeString(raw).Minutes()
	if err != nil {
		e.log.Warn("availability: appointment id=%d has unparseable time %q, skipping it", apptID, raw)
		return 0, false
	}
	return minutes, true
}
