package domain

import "github.com/m0rzh/BAP-AvailabilityService/pkg/types"

// ConflictReasonAppointment is the only conflict reason the engine emits:
// the proposed service interval overlaps an existing appointment.
const ConflictReasonAppointment = "appointment-conflict"

// Slot is a candidate service start time with an availability verdict.
// Slots are stateless projections: they are recomputed on every request and
// never persisted or mutated in place.
type Slot struct {
	Time           types.TimeString
	Available      bool
	ConflictReason string // empty unless the slot conflicts with an appointment
}

// HasConflict returns true if the slot was rejected because of an
// existing appointment
func (s *Slot) HasConflict() bool {
	return s.ConflictReason != ""
}
