package get_available_slots

import (
	"context"
	"time"

	"github.com/m0rzh/BAP-AvailabilityService/internal/availability"
	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListActiveForDate получает все активные записи бизнеса на конкретную дату
	ListActiveForDate(ctx context.Context, businessID int64, date time.Time) ([]domain.Appointment, error)
}

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	// ListActiveOverlapping получает активные закрытия, пересекающие интервал [from, to)
	ListActiveOverlapping(ctx context.Context, businessID int64, from, to time.Time) ([]domain.Closure, error)
}

// BusinessServiceClient интерфейс клиента для BusinessService
type BusinessServiceClient interface {
	GetBusiness(ctx context.Context, businessID int64) (*domain.Business, error)
	GetService(ctx context.Context, businessID, serviceID int64) (*domain.Service, error)
}

// AvailabilityEngine интерфейс движка вычисления слотов
type AvailabilityEngine interface {
	Compute(in availability.ComputeInput) []domain.Slot
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
