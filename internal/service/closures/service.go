package closures

import (
	"context"
	"errors"
	"fmt"

	businessClient "github.com/m0rzh/BAP-AvailabilityService/internal/integrations/businessservice"
	"github.com/m0rzh/BAP-AvailabilityService/internal/service/closures/models"
)

// Service сервис для работы с закрытиями бизнеса
type Service struct {
	closureRepo    ClosureRepository
	businessClient BusinessServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса закрытий
func NewService(
	closureRepo ClosureRepository,
	client BusinessServiceClient,
	logger Logger,
) *Service {
	return &Service{
		closureRepo:    closureRepo,
		businessClient: client,
		logger:         logger,
	}
}

// List получает закрытия бизнеса за период для дашборда
// Возвращает и неактивные закрытия - дашборд показывает их отдельно
func (s *Service) List(ctx context.Context, req *models.ListClosuresRequest) (*models.ClosureListResponse, error) {
	s.logger.Info("List: fetching closures for business=%d, period=%s to %s",
		req.BusinessID, req.From.Format("2006-01-02"), req.To.Format("2006-01-02"))

	if err := validateListRequest(req); err != nil {
		s.logger.Warn("List: validation failed for business=%d: %v", req.BusinessID, err)
		return nil, err
	}

	// Проверяем, что бизнес существует
	if _, err := s.businessClient.GetBusiness(ctx, req.BusinessID); err != nil {
		if errors.Is(err, businessClient.ErrBusinessNotFound) {
			s.logger.Warn("List: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("List: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: List - failed to get business: %v", ErrInternal, err)
	}

	closures, err := s.closureRepo.ListForRange(ctx, req.BusinessID, req.From, req.To)
	if err != nil {
		s.logger.Error("List: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d closures for business=%d", len(closures), req.BusinessID)
	return models.FromDomainClosureList(req.BusinessID, closures), nil
}

// validateListRequest валидирует запрос на получение закрытий
func validateListRequest(req *models.ListClosuresRequest) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if !req.From.Before(req.To) {
		return fmt.Errorf("%w: from must be before to", ErrInvalidRange)
	}

	return nil
}
