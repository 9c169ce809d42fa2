package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m0rzh/BAP-AvailabilityService/internal/availability"
	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
	businessClient "github.com/m0rzh/BAP-AvailabilityService/internal/integrations/businessservice"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	closureRepo     ClosureRepository
	businessClient  BusinessServiceClient
	engine          AvailabilityEngine
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	closureRepo ClosureRepository,
	client BusinessServiceClient,
	engine AvailabilityEngine,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		closureRepo:     closureRepo,
		businessClient:  client,
		engine:          engine,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, service=%d, date=%s",
		req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что дата не в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем профиль бизнеса с недельным расписанием
	business, err := uc.businessClient.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessClient.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 4. Получаем услугу с длительностью
	service, err := uc.businessClient.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, businessClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Получаем активные записи на эту дату
	appointments, err := uc.appointmentRepo.ListActiveForDate(ctx, req.BusinessID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Получаем активные закрытия вокруг даты
	// Берем интервал с запасом в сутки с каждой стороны: закрытия хранятся
	// в UTC, а рабочий день бизнеса в его зоне может выходить за календарную
	// дату в UTC
	from := req.Date.Add(-24 * time.Hour)
	to := req.Date.Add(48 * time.Hour)
	closures, err := uc.closureRepo.ListActiveOverlapping(ctx, req.BusinessID, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get closures: %v", err)
		return nil, fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
	}

	// 7. Вычисляем слоты
	slots := uc.engine.Compute(availability.ComputeInput{
		Business:     business,
		Service:      service,
		Date:         req.Date,
		Appointments: appointments,
		Closures:     closures,
	})

	uc.logger.Info("GetAvailableSlots: computed %d slots for business=%d, service=%d, date=%s",
		len(slots), req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		BusinessID:      req.BusinessID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
