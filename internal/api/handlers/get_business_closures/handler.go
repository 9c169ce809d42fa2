package get_business_closures

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m0rzh/BAP-AvailabilityService/internal/api/handlers"
	closuresService "github.com/m0rzh/BAP-AvailabilityService/internal/service/closures"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgMissingRange      = "параметры from и to обязательны"
	msgInvalidRange      = "некорректный формат периода, ожидается YYYY-MM-DD"
	msgRangeInverted     = "начало периода должно быть раньше конца"
	msgBusinessNotFound  = "бизнес не найден"
)

type Handler struct {
	service ClosuresService
	logger  Logger
}

func NewHandler(service ClosuresService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/closures
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем businessId из URL
	businessIDStr := vars["businessId"]
	businessID, err := strconv.ParseInt(businessIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/closures - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	// Извлекаем период из query параметров
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /businesses/{id}/closures - Missing period: business_id=%d", businessID)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	serviceReq, err := ToServiceRequest(businessID, fromStr, toStr)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/closures - Invalid period format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	// Вызываем сервис
	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, closuresService.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/closures - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, closuresService.ErrInvalidRange):
			h.logger.Warn("GET /businesses/{id}/closures - Inverted period: business_id=%d, from=%s, to=%s",
				businessID, fromStr, toStr)
			handlers.RespondBadRequest(w, msgRangeInverted)

		case errors.Is(err, closuresService.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/closures - Invalid input: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidBusinessID)

		default:
			h.logger.Error("GET /businesses/{id}/closures - Failed to list closures: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/closures - Closures retrieved successfully: business_id=%d, count=%d",
		businessID, len(result.Closures))
	handlers.RespondJSON(w, http.StatusOK, result)
}
