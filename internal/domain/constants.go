package domain

// DateFormat is the calendar date layout used across the API surface
const DateFormat = "2006-01-02" // YYYY-MM-DD

// Weekday names as used in weekly schedules and by the business-profile API
const (
	WeekdayMonday    = "monday"
	WeekdayTuesday   = "tuesday"
	WeekdayWednesday = "wednesday"
	WeekdayThursday  = "thursday"
	WeekdayFriday    = "friday"
	WeekdaySaturday  = "saturday"
	WeekdaySunday    = "sunday"
)

// InactiveStatuses список статусов неактивных записей
// Используется для фильтрации при расчёте доступных слотов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByUser,
	StatusCancelledByBusiness,
	StatusNoShow,
}
