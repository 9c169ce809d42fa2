package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending             AppointmentStatus = "pending"
	StatusConfirmed           AppointmentStatus = "confirmed"
	StatusInProgress          AppointmentStatus = "in_progress"
	StatusCompleted           AppointmentStatus = "completed"
	StatusCancelledByUser     AppointmentStatus = "cancelled_by_user"
	StatusCancelledByBusiness AppointmentStatus = "cancelled_by_business"
	StatusNoShow              AppointmentStatus = "no_show"
)

// Appointment represents an already-booked appointment for a business day.
//
// StartTime and EndTime are deliberately loose strings: depending on the
// source they are either an absolute RFC3339 timestamp or a bare local
// "HH:MM". The availability engine normalizes both shapes to minutes since
// midnight in the business time zone at its boundary; nothing else in the
// system compares these values directly.
type Appointment struct {
	ID              int64
	BusinessID      int64
	ServiceID       int64
	UserID          int64
	Date            time.Time         // calendar date of the appointment (no time part)
	StartTime       string            // RFC3339 timestamp or local "HH:MM"
	EndTime         *string           // optional; same formats as StartTime
	DurationMinutes int               // used when EndTime is absent
	Status          AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time interval
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByUser &&
		a.Status != StatusCancelledByBusiness &&
		a.Status != StatusNoShow
}
