package models

import (
	"time"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
)

// Request модели

// ListClosuresRequest запрос на получение закрытий бизнеса за период
type ListClosuresRequest struct {
	BusinessID int64     `json:"businessId"`
	From       time.Time `json:"from"` // Начало периода (включительно)
	To         time.Time `json:"to"`   // Конец периода (исключительно)
}

// Response модели

// ClosureResponse ответ с данными одного закрытия
type ClosureResponse struct {
	ID         int64   `json:"id"`
	BusinessID int64   `json:"businessId"`
	Type       string  `json:"type"`
	TypeLabel  string  `json:"typeLabel"` // Человекочитаемая метка для дашборда
	Reason     *string `json:"reason,omitempty"`
	StartDate  string  `json:"startDate"` // ISO 8601
	EndDate    string  `json:"endDate"`   // ISO 8601
	IsActive   bool    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClosureListResponse ответ со списком закрытий
type ClosureListResponse struct {
	BusinessID int64             `json:"businessId"`
	Closures   []ClosureResponse `json:"closures"`
}

// typeLabels метки типов закрытий для отображения
var typeLabels = map[domain.ClosureType]string{
	domain.ClosureTypeVacation:    "Vacation",
	domain.ClosureTypeSickLeave:   "Sick leave",
	domain.ClosureTypeMaintenance: "Maintenance",
	domain.ClosureTypeEmergency:   "Emergency",
	domain.ClosureTypeOther:       "Other",
}

// TypeLabel возвращает метку типа закрытия, для неизвестного типа - сам тип
func TypeLabel(t domain.ClosureType) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Методы конвертации

// FromDomainClosure конвертирует domain модель в DTO
func FromDomainClosure(c *domain.Closure) *ClosureResponse {
	if c == nil {
		return nil
	}

	return &ClosureResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Type:       string(c.Type),
		TypeLabel:  TypeLabel(c.Type),
		Reason:     c.Reason,
		StartDate:  c.StartDate.Format(time.RFC3339),
		EndDate:    c.EndDate.Format(time.RFC3339),
		IsActive:   c.IsActive,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// FromDomainClosureList конвертирует список domain моделей в DTO
func FromDomainClosureList(businessID int64, closures []domain.Closure) *ClosureListResponse {
	resp := &ClosureListResponse{
		BusinessID: businessID,
		Closures:   make([]ClosureResponse, 0, len(closures)),
	}

	for i := range closures {
		if c := FromDomainClosure(&closures[i]); c != nil {
			resp.Closures = append(resp.Closures, *c)
		}
	}

	return resp
}
