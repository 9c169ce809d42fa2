package closures

import (
	"context"
	"time"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
)

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	// ListForRange получает все закрытия бизнеса, пересекающие интервал [from, to),
	// включая неактивные
	ListForRange(ctx context.Context, businessID int64, from, to time.Time) ([]domain.Closure, error)
}

// BusinessServiceClient интерфейс клиента для BusinessService
type BusinessServiceClient interface {
	GetBusiness(ctx context.Context, businessID int64) (*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
