package availability

import (
	"time"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
)

// Engine вычисляет доступные слоты для записи на услугу.
//
// Движок - чистое, синхронное вычисление без I/O и разделяемого состояния:
// на каждый вызов все входные данные передаются заново, между вызовами
// ничего не сохраняется. Поэтому его можно вызывать конкурентно из
// независимых запросов без какой-либо синхронизации.
type Engine struct {
	log Logger
}

// NewEngine создает движок доступности
// logger может быть nil - тогда диагностика отключена
func NewEngine(log Logger) *Engine {
	if log == nil {
		log = nopLogger{}
	}
	return &Engine{log: log}
}

// ComputeInput входные данные одного вычисления
// Все поля передаются вызывающей стороной заново на каждый вызов
type ComputeInput struct {
	Business     *domain.Business
	Service      *domain.Service
	Date         time.Time // календарная дата, на которую запрашиваются слоты
	Appointments []domain.Appointment
	Closures     []domain.Closure
}

// Compute возвращает упорядоченный список слотов для даты.
//
// Доступность слота - конъюнкция условий: внутри рабочих часов, не в
// перерыве, услуга помещается до закрытия, нет пересечения с закрытием и
// нет пересечения с существующей записью.
//
// Движок никогда не возвращает ошибку и не паникует: системно некорректный
// вход (нет бизнеса, нет услуги, нулевая дата) дает пустой список, а
// отдельные нечитаемые записи и закрытия пропускаются.
func (e *Engine) Compute(in ComputeInput) []domain.Slot {
	if in.Business == nil || in.Service == nil || in.Date.IsZero() {
		e.log.Warn("availability: incomplete input (business=%v, service=%v), returning no slots",
			in.Business != nil, in.Service != nil)
		return []domain.Slot{}
	}
	if in.Service.DurationMinutes <= 0 {
		e.log.Warn("availability: service id=%d has non-positive duration %d, returning no slots",
			in.Service.ID, in.Service.DurationMinutes)
		return []domain.Slot{}
	}

	// 1. Определяем день недели в зоне бизнеса
	loc := e.resolveLocation(in.Business.TimeZone)
	weekday := ResolveWeekday(in.Date, loc)

	// 2. Ищем рабочие часы на этот день недели
	hours := e.resolveOperatingHours(in.Business, weekday)
	if !hours.Open {
		return []domain.Slot{}
	}

	// 3. Выбираем шаг сетки по длительности услуги
	interval := IntervalForDuration(in.Service.DurationMinutes)

	// 4. Генерируем слоты внутри рабочего окна
	slots := e.generateSlots(hours, in.Service.DurationMinutes, interval)

	// 5. Помечаем конфликты с существующими записями
	e.markAppointmentConflicts(slots, in.Service.DurationMinutes, in.Appointments, loc)

	// 6. Накладываем закрытия (отпуск, ремонт и т.д.)
	e.applyClosures(slots, in.Date, in.Closures, loc)

	return slots
}
