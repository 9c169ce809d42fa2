package availability

import (
	"time"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
)

// applyClosures помечает слоты, попадающие в активные закрытия (отпуск,
// болезнь, ремонт и т.д.).
//
// Закрытия заданы абсолютными интервалами [start, end) и действуют
// независимо от дня недели; одно закрытие может покрывать несколько
// календарных дней. Сначала отбираются активные закрытия, пересекающие
// окно "полночь-полночь" запрошенной даты в зоне бизнеса, затем для
// каждого слота его локальное время начала переводится в абсолютный
// момент этой даты и проверяется на принадлежность интервалу закрытия.
//
// Неактивные закрытия прозрачно игнорируются, не удаляясь из списка
// (soft-disable). Закрытие, блокирующее один слот, не трогает соседние
// слоты вне своего интервала. Тип закрытия на расчет не влияет - он
// используется только для отображения вне движка.
func (e *Engine) applyClosures(slots []domain.Slot, date time.Time, closures []domain.Closure, loc *time.Location) {
	if len(slots) == 0 || len(closures) == 0 {
		return
	}

	y, m, d := date.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	relevant := make([]domain.Closure, 0, len(closures))
	for _, c := range closures {
		if !c.IsActive {
			continue
		}
		if c.EndDate.Before(c.StartDate) || c.EndDate.Equal(c.StartDate) {
			e.log.Warn("availability: closure id=%d has inverted interval, skipping it", c.ID)
			continue
		}
		if c.OverlapsRange(dayStart, dayEnd) {
			relevant = append(relevant, c)
		}
	}
	if len(relevant) == 0 {
		return
	}

	for i := range slots {
		minutes, err := slots[i].Time.Minutes()
		if err != nil {
			continue
		}
		// Реконструируем настенное время в зоне бизнеса, а не прибавляем
		// минуты к полуночи - в день перевода часов это не одно и то же
		slotAt := time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc)

		for _, c := range relevant {
			if c.Blocks(slotAt) {
				slots[i].Available = false
				break
			}
		}
	}
}
