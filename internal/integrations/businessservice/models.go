package businessservice

import "github.com/m0rzh/BAP-AvailabilityService/internal/domain"

// Business модель профиля бизнеса из BusinessService
type Business struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	TimeZone       string          `json:"timeZone"`
	WeeklySchedule *WeeklySchedule `json:"weeklySchedule"`
}

// WeeklySchedule недельное расписание бизнеса
// Отсутствующий день трактуется как закрытый
type WeeklySchedule struct {
	Monday    *DaySchedule `json:"monday"`
	Tuesday   *DaySchedule `json:"tuesday"`
	Wednesday *DaySchedule `json:"wednesday"`
	Thursday  *DaySchedule `json:"thursday"`
	Friday    *DaySchedule `json:"friday"`
	Saturday  *DaySchedule `json:"saturday"`
	Sunday    *DaySchedule `json:"sunday"`
}

// DaySchedule расписание одного дня недели
type DaySchedule struct {
	IsOpen    bool            `json:"isOpen"`
	OpenTime  *string         `json:"openTime"`
	CloseTime *string         `json:"closeTime"`
	Breaks    []BreakInterval `json:"breaks"`
}

// BreakInterval перерыв внутри рабочего дня
type BreakInterval struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
}

// Service модель услуги из BusinessService
type Service struct {
	ID              int64   `json:"id"`
	BusinessID      int64   `json:"businessId"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ErrorResponse модель ошибки от BusinessService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует wire-модель бизнеса в доменную
func (b *Business) ToDomain() *domain.Business {
	out := &domain.Business{
		ID:       b.ID,
		Name:     b.Name,
		TimeZone: b.TimeZone,
	}
	if b.WeeklySchedule != nil {
		out.WeeklySchedule = &domain.WeeklySchedule{
			Monday:    toDomainDay(b.WeeklySchedule.Monday),
			Tuesday:   toDomainDay(b.WeeklySchedule.Tuesday),
			Wednesday: toDomainDay(b.WeeklySchedule.Wednesday),
			Thursday:  toDomainDay(b.WeeklySchedule.Thursday),
			Friday:    toDomainDay(b.WeeklySchedule.Friday),
			Saturday:  toDomainDay(b.WeeklySchedule.Saturday),
			Sunday:    toDomainDay(b.WeeklySchedule.Sunday),
		}
	}
	return out
}

func toDomainDay(day *DaySchedule) domain.DaySchedule {
	if day == nil {
		return domain.DaySchedule{IsOpen: false}
	}
	out := domain.DaySchedule{
		IsOpen:    day.IsOpen,
		OpenTime:  day.OpenTime,
		CloseTime: day.CloseTime,
	}
	if len(day.Breaks) > 0 {
		out.Breaks = make([]domain.BreakInterval, len(day.Breaks))
		for i, b := range day.Breaks {
			out.Breaks[i] = domain.BreakInterval{
				StartTime:   b.StartTime,
				EndTime:     b.EndTime,
				Description: b.Description,
			}
		}
	}
	return out
}

// ToDomain конвертирует wire-модель услуги в доменную
func (s *Service) ToDomain() *domain.Service {
	return &domain.Service{
		ID:              s.ID,
		BusinessID:      s.BusinessID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
	}
}
