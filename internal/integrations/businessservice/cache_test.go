package businessservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
)

func TestProfileCache_HitAndMiss(t *testing.T) {
	cache, err := newProfileCache(8, time.Minute)
	require.NoError(t, err)

	_, ok := cache.get(1)
	assert.False(t, ok)

	business := &domain.Business{ID: 1, Name: "Barbershop", TimeZone: "UTC"}
	cache.put(1, business)

	got, ok := cache.get(1)
	require.True(t, ok)
	assert.Equal(t, business, got)
}

func TestProfileCache_TTLExpiry(t *testing.T) {
	cache, err := newProfileCache(8, time.Minute)
	require.NoError(t, err)

	current := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	cache.put(1, &domain.Business{ID: 1})

	_, ok := cache.get(1)
	assert.True(t, ok)

	// После истечения TTL запись считается промахом
	current = current.Add(2 * time.Minute)
	_, ok = cache.get(1)
	assert.False(t, ok)
}

func TestProfileCache_DisabledOnZeroSize(t *testing.T) {
	cache, err := newProfileCache(0, time.Minute)
	require.NoError(t, err)

	cache.put(1, &domain.Business{ID: 1})
	_, ok := cache.get(1)
	assert.False(t, ok)
}
