package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
	"github.com/m0rzh/BAP-AvailabilityService/pkg/ptr"
)

func TestResolveOperatingHours(t *testing.T) {
	tests := []struct {
		name      string
		day       domain.DaySchedule
		wantOpen  bool
		wantStart int
		wantEnd   int
		wantWarns int
	}{
		{
			name:      "open day",
			day:       domain.DaySchedule{IsOpen: true, OpenTime: ptr.Ptr("09:00"), CloseTime: ptr.Ptr("17:00")},
			wantOpen:  true,
			wantStart: 540,
			wantEnd:   1020,
		},
		{
			name:     "closed day",
			day:      domain.DaySchedule{IsOpen: false},
			wantOpen: false,
		},
		{
			name:     "open without times",
			day:      domain.DaySchedule{IsOpen: true},
			wantOpen: false,
		},
		{
			name:      "unparseable open time",
			day:       domain.DaySchedule{IsOpen: true, OpenTime: ptr.Ptr("morning"), CloseTime: ptr.Ptr("17:00")},
			wantOpen:  false,
			wantWarns: 1,
		},
		{
			name:      "inverted hours",
			day:       domain.DaySchedule{IsOpen: true, OpenTime: ptr.Ptr("17:00"), CloseTime: ptr.Ptr("09:00")},
			wantOpen:  false,
			wantWarns: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &recordingLogger{}
			engine := NewEngine(log)

			business := testBusiness("UTC")
			business.WeeklySchedule.Monday = tt.day

			hours := engine.resolveOperatingHours(business, domain.WeekdayMonday)
			assert.Equal(t, tt.wantOpen, hours.Open)
			if tt.wantOpen {
				assert.Equal(t, tt.wantStart, hours.OpenMinutes)
				assert.Equal(t, tt.wantEnd, hours.CloseMinutes)
			}
			assert.Len(t, log.warns, tt.wantWarns)
		})
	}
}

func TestResolveOperatingHours_MalformedBreaksExcluded(t *testing.T) {
	log := &recordingLogger{}
	engine := NewEngine(log)

	business := testBusiness("UTC")
	business.WeeklySchedule.Monday = domain.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("09:00"),
		CloseTime: ptr.Ptr("17:00"),
		Breaks: []domain.BreakInterval{
			{StartTime: "12:00", EndTime: "13:00"}, // валидный
			{StartTime: "14:00", EndTime: "13:30"}, // конец раньше начала
			{StartTime: "08:00", EndTime: "09:30"}, // начинается до открытия
			{StartTime: "16:00", EndTime: "18:00"}, // заканчивается после закрытия
			{StartTime: "noon", EndTime: "13:00"},  // нечитаемый
		},
	}

	hours := engine.resolveOperatingHours(business, domain.WeekdayMonday)
	require.True(t, hours.Open)
	require.Len(t, hours.Breaks, 1)
	assert.Equal(t, 720, hours.Breaks[0].StartMinutes)
	assert.Equal(t, 780, hours.Breaks[0].EndMinutes)
	assert.Len(t, log.warns, 4)
}

func TestResolveOperatingHours_UnknownWeekdayClosed(t *testing.T) {
	engine := NewEngine(nil)
	hours := engine.resolveOperatingHours(testBusiness("UTC"), "someday")
	assert.False(t, hours.Open)
}
