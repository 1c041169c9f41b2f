package cache

import (
	"slices"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is an in-process cache backed by go-cache
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a memory cache. A zero ttl keeps entries until Clear.
func NewMemoryCache(ttl time.Duration, cleanupInterval time.Duration) *MemoryCache {
	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	return &MemoryCache{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Get returns a copy of the cached ranking
func (c *MemoryCache) Get(key string) ([]int, bool) {
	if val, found := c.cache.Get(key); found {
		return slices.Clone(val.([]int)), true
	}
	return nil, false
}

// Set stores a copy of ranks under the default expiration
func (c *MemoryCache) Set(key string, ranks []int) {
	c.cache.Set(key, slices.Clone(ranks), gocache.DefaultExpiration)
}

// Clear removes every entry
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}
