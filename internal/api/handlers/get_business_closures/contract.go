package get_business_closures

import (
	"context"

	"github.com/m0rzh/BAP-AvailabilityService/internal/service/closures/models"
)

type ClosuresService interface {
	List(ctx context.Context, req *models.ListClosuresRequest) (*models.ClosureListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
