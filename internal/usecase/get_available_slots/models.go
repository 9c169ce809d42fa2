package get_available_slots

import (
	"time"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID int64     // ID бизнеса
	ServiceID  int64     // ID услуги
	Date       time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	BusinessID      int64         // ID бизнеса
	ServiceID       int64         // ID услуги
	Date            time.Time     // Дата, на которую запрашивались слоты
	DurationMinutes int           // Длительность услуги в минутах
	Slots           []domain.Slot // Упорядоченный список слотов с признаком доступности
}
