package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalForDuration(t *testing.T) {
	tests := []struct {
		duration int
		want     int
	}{
		{duration: 5, want: 15},
		{duration: 15, want: 15},
		{duration: 30, want: 15},
		{duration: 31, want: 30},
		{duration: 45, want: 30},
		{duration: 60, want: 30},
		{duration: 61, want: 60},
		{duration: 90, want: 60},
		{duration: 120, want: 60},
		{duration: 121, want: 60}, // floor(121/2)=60
		{duration: 180, want: 90},
		{duration: 240, want: 120},
		{duration: 480, want: 240},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IntervalForDuration(tt.duration), "duration %d", tt.duration)
	}
}

func TestIntervalForDuration_MonotonicOnDuration(t *testing.T) {
	// Шаг сетки никогда не мельче для более длинной услуги
	prev := 0
	for d := 1; d <= 600; d++ {
		interval := IntervalForDuration(d)
		assert.GreaterOrEqual(t, interval, prev, "duration %d", d)
		prev = interval
	}
}
