package domain

import "time"

// ClosureType categorizes an ad-hoc closure. The type is used only for
// display labeling on the dashboard; the availability engine treats all
// types identically.
type ClosureType string

const (
	ClosureTypeVacation    ClosureType = "VACATION"
	ClosureTypeSickLeave   ClosureType = "SICK_LEAVE"
	ClosureTypeMaintenance ClosureType = "MAINTENANCE"
	ClosureTypeEmergency   ClosureType = "EMERGENCY"
	ClosureTypeOther       ClosureType = "OTHER"
)

// Closure is an ad-hoc exception to the weekly schedule: a continuous
// absolute-time interval [StartDate, EndDate) during which the business is
// unavailable regardless of weekday. A closure may span multiple calendar
// days. Inactive closures are kept but ignored (soft-disable semantics).
type Closure struct {
	ID         int64
	BusinessID int64
	Type       ClosureType
	Reason     *string
	StartDate  time.Time
	EndDate    time.Time
	IsActive   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Blocks reports whether an active closure covers the given absolute instant.
// The interval is half-open: a closure ending exactly at t does not block it.
func (c *Closure) Blocks(t time.Time) bool {
	return c.IsActive && !t.Before(c.StartDate) && t.Before(c.EndDate)
}

// OverlapsRange reports whether the closure interval intersects the
// half-open absolute range [from, to).
func (c *Closure) OverlapsRange(from, to time.Time) bool {
	return c.StartDate.Before(to) && c.EndDate.After(from)
}
