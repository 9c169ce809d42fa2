package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
	"github.com/m0rzh/BAP-AvailabilityService/pkg/ptr"
	"github.com/m0rzh/BAP-AvailabilityService/pkg/types"
)

func availableSlots(times ...string) []domain.Slot {
	slots := make([]domain.Slot, len(times))
	for i, ts := range times {
		slots[i] = domain.Slot{Time: types.TimeString(ts), Available: true}
	}
	return slots
}

func confirmedAppointment(start string, durationMinutes int) domain.Appointment {
	return domain.Appointment{
		ID:              1,
		BusinessID:      1,
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
	}
}

func TestMarkAppointmentConflicts_BackToBackAllowed(t *testing.T) {
	engine := NewEngine(nil)

	// Запись 10:00-10:30. Слот 10:30 (новая услуга начинается ровно когда
	// существующая закончилась) и слот 09:30 (заканчивается ровно когда
	// существующая начинается) - не конфликты.
	slots := availableSlots("09:30", "10:00", "10:15", "10:30")
	engine.markAppointmentConflicts(slots, 30, []domain.Appointment{confirmedAppointment("10:00", 30)}, time.UTC)

	assert.True(t, slots[0].Available, "09:30 back-to-back before")
	assert.False(t, slots[0].HasConflict())
	assert.False(t, slots[1].Available, "10:00 true overlap")
	assert.Equal(t, domain.ConflictReasonAppointment, slots[1].ConflictReason)
	assert.False(t, slots[2].Available, "10:15 true overlap")
	assert.Equal(t, domain.ConflictReasonAppointment, slots[2].ConflictReason)
	assert.True(t, slots[3].Available, "10:30 back-to-back after")
	assert.False(t, slots[3].HasConflict())
}

func TestMarkAppointmentConflicts_ExplicitEndTime(t *testing.T) {
	engine := NewEngine(nil)

	appt := domain.Appointment{
		ID:        2,
		StartTime: "14:00",
		EndTime:   ptr.Ptr("15:00"),
		Status:    domain.StatusConfirmed,
	}

	slots := availableSlots("13:30", "14:30", "15:00")
	engine.markAppointmentConflicts(slots, 30, []domain.Appointment{appt}, time.UTC)

	assert.True(t, slots[0].Available)  // 13:30-14:00 граничит
	assert.False(t, slots[1].Available) // 14:30-15:00 внутри записи
	assert.True(t, slots[2].Available)  // 15:00-15:30 граничит
}

func TestMarkAppointmentConflicts_RFC3339Normalization(t *testing.T) {
	engine := NewEngine(nil)

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 2024-06-03T08:00:00Z = 10:00 по берлинскому летнему времени (UTC+2).
	// Абсолютный timestamp конвертируется через зону, а не вычитанием
	// смещения - поэтому запись занимает 10:00-10:30 настенного времени.
	appt := domain.Appointment{
		ID:              3,
		StartTime:       "2024-06-03T08:00:00Z",
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
	}

	slots := availableSlots("08:00", "10:00", "10:30")
	engine.markAppointmentConflicts(slots, 30, []domain.Appointment{appt}, loc)

	assert.True(t, slots[0].Available, "08:00 wall clock is free")
	assert.False(t, slots[1].Available, "10:00 wall clock is taken")
	assert.True(t, slots[2].Available, "10:30 back-to-back")
}

func TestMarkAppointmentConflicts_RFC3339WithOffset(t *testing.T) {
	engine := NewEngine(nil)

	appt := domain.Appointment{
		ID:        4,
		StartTime: "2024-06-03T10:00:00+02:00",
		EndTime:   ptr.Ptr("2024-06-03T11:00:00+02:00"),
		Status:    domain.StatusConfirmed,
	}

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	slots := availableSlots("09:30", "10:30", "11:00")
	engine.markAppointmentConflicts(slots, 30, []domain.Appointment{appt}, loc)

	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.True(t, slots[2].Available)
}

func TestMarkAppointmentConflicts_InactiveIgnored(t *testing.T) {
	engine := NewEngine(nil)

	for _, status := range []domain.AppointmentStatus{
		domain.StatusCancelledByUser,
		domain.StatusCancelledByBusiness,
		domain.StatusNoShow,
	} {
		appt := confirmedAppointment("10:00", 30)
		appt.Status = status

		slots := availableSlots("10:00")
		engine.markAppointmentConflicts(slots, 30, []domain.Appointment{appt}, time.UTC)
		assert.True(t, slots[0].Available, "status %s must not occupy time", status)
	}
}

func TestMarkAppointmentConflicts_UnparseableRecordSkipped(t *testing.T) {
	log := &recordingLogger{}
	engine := NewEngine(log)

	appointments := []domain.Appointment{
		{ID: 5, StartTime: "not-a-time", DurationMinutes: 30, Status: domain.StatusConfirmed},
		confirmedAppointment("11:00", 30),
	}

	// Нечитаемая запись пропускается, но валидная продолжает действовать
	slots := availableSlots("10:00", "11:00")
	engine.markAppointmentConflicts(slots, 30, appointments, time.UTC)

	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	require.NotEmpty(t, log.warns)
	assert.Contains(t, log.warns[0], "unparseable time")
}

func TestMarkAppointmentConflicts_MissingEndAndDurationSkipped(t *testing.T) {
	log := &recordingLogger{}
	engine := NewEngine(log)

	appointments := []domain.Appointment{
		{ID: 6, StartTime: "10:00", Status: domain.StatusConfirmed},
	}

	slots := availableSlots("10:00")
	engine.markAppointmentConflicts(slots, 30, appointments, time.UTC)

	assert.True(t, slots[0].Available)
	require.NotEmpty(t, log.warns)
	assert.Contains(t, log.warns[0], "neither end time nor duration")
}

func TestMarkAppointmentConflicts_FirstConflictShortCircuits(t *testing.T) {
	engine := NewEngine(nil)

	// Несколько записей пересекают один слот - причина одна, available=false
	appointments := []domain.Appointment{
		confirmedAppointment("10:00", 30),
		confirmedAppointment("10:15", 30),
	}

	slots := availableSlots("10:00")
	engine.markAppointmentConflicts(slots, 60, appointments, time.UTC)

	assert.False(t, slots[0].Available)
	assert.True(t, slots[0].HasConflict())
	assert.Equal(t, domain.ConflictReasonAppointment, slots[0].ConflictReason)
}
