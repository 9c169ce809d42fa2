package get_business_closures

import (
	"time"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
	"github.com/m0rzh/BAP-AvailabilityService/internal/service/closures/models"
)

// ToServiceRequest создает запрос сервиса из параметров запроса
// from и to принимаются как календарные даты YYYY-MM-DD; конец периода
// расширяется до конца дня, чтобы закрытия последнего дня попали в выборку
func ToServiceRequest(businessID int64, fromStr, toStr string) (*models.ListClosuresRequest, error) {
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}

	return &models.ListClosuresRequest{
		BusinessID: businessID,
		From:       from,
		To:         to.AddDate(0, 0, 1),
	}, nil
}
