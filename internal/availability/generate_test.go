package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openHours(openMinutes, closeMinutes int, breaks ...BreakWindow) OperatingHours {
	return OperatingHours{
		Open:         true,
		OpenMinutes:  openMinutes,
		CloseMinutes: closeMinutes,
		Breaks:       breaks,
	}
}

func TestGenerateSlots_BasicGrid(t *testing.T) {
	engine := NewEngine(nil)

	// 09:00-17:00, услуга 30 минут, шаг 30 → 09:00..16:30
	slots := engine.generateSlots(openHours(540, 1020), 30, 30)
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].Time.String())
	assert.Equal(t, "16:30", slots[15].Time.String())
}

func TestGenerateSlots_NoPartialSlotAtClose(t *testing.T) {
	engine := NewEngine(nil)

	// 09:00-10:00, услуга 45 минут, шаг 30: 09:00 помещается (ends 09:45),
	// 09:30 вылезает за закрытие (ends 10:15) → итерация останавливается
	slots := engine.generateSlots(openHours(540, 600), 45, 30)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].Time.String())
}

func TestGenerateSlots_IntervalSteppingMaySkipLastFit(t *testing.T) {
	engine := NewEngine(nil)

	// 09:00-10:50, услуга 60 минут, шаг 60: слот 09:00 (ends 10:00) ок,
	// 10:00 вылезает (ends 11:00). Теоретический старт 09:50 существует,
	// но дозаполнения назад нет - это принятое поведение
	slots := engine.generateSlots(openHours(540, 650), 60, 60)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].Time.String())
}

func TestGenerateSlots_BreakExclusion(t *testing.T) {
	engine := NewEngine(nil)

	// Сценарий из практики: 09:00-17:00, перерыв 12:00-13:00, услуга 60
	// минут, шаг 60. Слот 11:00 (ends 12:00) касается начала перерыва -
	// по полуинтервальному правилу это НЕ пересечение, слот остается.
	// Слот 12:00 исключается целиком.
	slots := engine.generateSlots(openHours(540, 1020, BreakWindow{StartMinutes: 720, EndMinutes: 780}), 60, 60)

	times := slotTimes(slots)
	assert.Contains(t, times, "11:00")
	assert.NotContains(t, times, "12:00")
	assert.Contains(t, times, "13:00")
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}, times)
}

func TestGenerateSlots_BreakExcludesOverlappingStarts(t *testing.T) {
	engine := NewEngine(nil)

	// Услуга 60 минут с шагом 30: 11:30 (ends 12:30) пересекает перерыв
	// 12:00-13:00 и исключается; 11:00 (ends 12:00) граничит и остается
	slots := engine.generateSlots(openHours(540, 1020, BreakWindow{StartMinutes: 720, EndMinutes: 780}), 60, 30)

	times := slotTimes(slots)
	assert.Contains(t, times, "11:00")
	assert.NotContains(t, times, "11:30")
	assert.NotContains(t, times, "12:00")
	assert.NotContains(t, times, "12:30")
	assert.Contains(t, times, "13:00")
}

func TestGenerateSlots_SlotStartingInsideBreakExcluded(t *testing.T) {
	engine := NewEngine(nil)

	// P2: ни один выданный слот не пересекает перерыв
	breaks := []BreakWindow{{StartMinutes: 720, EndMinutes: 780}, {StartMinutes: 900, EndMinutes: 915}}
	slots := engine.generateSlots(openHours(540, 1020, breaks...), 30, 15)

	for _, s := range slots {
		start, err := s.Time.Minutes()
		require.NoError(t, err)
		end := start + 30
		for _, b := range breaks {
			assert.False(t, start < b.EndMinutes && end > b.StartMinutes,
				"slot %s intersects break %d-%d", s.Time, b.StartMinutes, b.EndMinutes)
		}
	}
}

func TestIntersectsBreak(t *testing.T) {
	breaks := []BreakWindow{{StartMinutes: 720, EndMinutes: 780}}

	tests := []struct {
		name  string
		start int
		end   int
		want  bool
	}{
		{name: "ends at break start", start: 660, end: 720, want: false},
		{name: "starts at break end", start: 780, end: 840, want: false},
		{name: "overlaps break start", start: 690, end: 750, want: true},
		{name: "inside break", start: 730, end: 750, want: true},
		{name: "covers break", start: 700, end: 800, want: true},
		{name: "before break", start: 600, end: 660, want: false},
		{name: "after break", start: 800, end: 860, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intersectsBreak(tt.start, tt.end, breaks))
		})
	}
}
