package get_available_slots

import (
	"time"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m0rzh/BAP-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	BusinessID      int64           `json:"businessId"`
	ServiceID       int64           `json:"serviceId"`
	Date            string          `json:"date"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель одного слота в ответе
type AvailableSlot struct {
	Time           string `json:"time"`
	Available      bool   `json:"available"`
	ConflictReason string `json:"conflictReason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:           slot.Time.String(),
			Available:      slot.Available,
			ConflictReason: slot.ConflictReason,
		}
	}

	return &AvailableSlotsResponse{
		BusinessID:      resp.BusinessID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(businessID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BusinessID: businessID,
		ServiceID:  serviceID,
		Date:       date,
	}, nil
}
