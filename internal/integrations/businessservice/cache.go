package businessservice

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
)

// cacheEntry профиль бизнеса с моментом получения
type cacheEntry struct {
	business  *domain.Business
	fetchedAt time.Time
}

// profileCache LRU-кэш профилей бизнесов с TTL
// nil-кэш (при size <= 0) прозрачно работает как промах на каждый запрос
type profileCache struct {
	cache *lru.Cache[int64, *cacheEntry]
	ttl   time.Duration
	mu    sync.RWMutex
	now   func() time.Time
}

func newProfileCache(size int, ttl time.Duration) (*profileCache, error) {
	if size <= 0 {
		return &profileCache{now: time.Now}, nil
	}

	cache, err := lru.New[int64, *cacheEntry](size)
	if err != nil {
		return nil, err
	}

	return &profileCache{
		cache: cache,
		ttl:   ttl,
		now:   time.Now,
	}, nil
}

func (c *profileCache) get(businessID int64) (*domain.Business, bool) {
	if c.cache == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.cache.Get(businessID)
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(entry.fetchedAt) > c.ttl {
		// Протухшую запись не возвращаем; вытеснение сделает LRU
		return nil, false
	}

	return entry.business, true
}

func (c *profileCache) put(businessID int64, business *domain.Business) {
	if c.cache == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Add(businessID, &cacheEntry{business: business, fetchedAt: c.now()})
}
