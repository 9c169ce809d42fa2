package availability

import (
	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
	"github.com/m0rzh/BAP-AvailabilityService/pkg/types"
)

// generateSlots строит сетку слотов внутри рабочего окна.
//
// Итерируем от открытия с шагом intervalMinutes. Слот попадает в выдачу,
// только если услуга целиком помещается до закрытия: первый слот, чья
// услуга вылезает за закрытие, останавливает итерацию полностью - частичные
// слоты не предлагаются никогда. Из-за шага сетки последний предлагаемый
// слот может начинаться раньше, чем "закрытие минус длительность"; это
// принятое поведение, дозаполнения назад нет.
//
// Слоты, пересекающие перерыв, исключаются из выдачи целиком, а не
// помечаются недоступными.
func (e *Engine) generateSlots(hours OperatingHours, durationMinutes, intervalMinutes int) []domain.Slot {
	slots := make([]domain.Slot, 0, (hours.CloseMinutes-hours.OpenMinutes)/intervalMinutes+1)

	for start := hours.OpenMinutes; start < hours.CloseMinutes; start += intervalMinutes {
		serviceEnd := start + durationMinutes
		if serviceEnd > hours.CloseMinutes {
			break
		}
		if intersectsBreak(start, serviceEnd, hours.Breaks) {
			continue
		}

		startTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			// Не должно случаться: start < closeMinutes < 24ч
			e.log.Error("availability: cannot format slot start %d: %v", start, err)
			break
		}
		slots = append(slots, domain.Slot{Time: startTime, Available: true})
	}

	return slots
}

// intersectsBreak проверяет пересечение интервала услуги с перерывами.
//
// Полуинтервальный тест: [start, end) пересекает [breakStart, breakEnd)
// только при start < breakEnd && end > breakStart. Границы не считаются:
// услуга, заканчивающаяся ровно в начале перерыва, разрешена - симметрично
// правилу back-to-back для записей.
//
// Примеры (перерыв 12:00-13:00):
// - Услуга 11:00-12:00 → НЕТ пересечения (граничат)
// - Услуга 11:30-12:30 → ЕСТЬ пересечение
// - Услуга 13:00-14:00 → НЕТ пересечения (граничат)
func intersectsBreak(start, end int, breaks []BreakWindow) bool {
	for _, b := range breaks {
		if start < b.EndMinutes && end > b.StartMinutes {
			return true
		}
	}
	return false
}
