package currency

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const cacheCleanupInterval = 5 * time.Minute

// CachedProvider wraps a Provider with in-memory TTL caching keyed by base
// currency. Concurrent lookups for the same base share a single fetch.
type CachedProvider struct {
	inner Provider
	cache *gocache.Cache
	group singleflight.Group
}

// NewCachedProvider returns a provider that caches rate tables in memory.
func NewCachedProvider(inner Provider, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &CachedProvider{
		inner: inner,
		cache: gocache.New(ttl, cacheCleanupInterval),
	}
}

// Latest returns the cached rate table for base, fetching on miss.
// The returned table is shared; callers must not mutate it.
func (p *CachedProvider) Latest(ctx context.Context, base string) (Rates, error) {
	if p.inner == nil {
		return nil, errors.New("inner rates provider is required")
	}

	key := NormalizeCode(base)
	if cached, ok := p.cache.Get(key); ok {
		return cached.(Rates), nil
	}

	result, err, _ := p.group.Do(key, func() (any, error) {
		rates, err := p.inner.Latest(ctx, base)
		if err != nil {
			return nil, err
		}
		p.cache.SetDefault(key, rates)
		return rates, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(Rates), nil
}
