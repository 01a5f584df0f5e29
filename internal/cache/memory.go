// Package cache stores resolved geocoding results keyed by normalized address.
package cache

import (
	"context"
	"time"

	"taxi-fare-api/internal/models"

	"github.com/bluele/gcache"
)

// Memory is a bounded in-process LRU cache whose entries expire after a TTL.
type Memory struct {
	lru gcache.Cache
}

// NewMemory creates a cache holding at most size entries for ttl each.
func NewMemory(size int, ttl time.Duration) *Memory {
	return &Memory{
		lru: gcache.New(size).
			LRU().
			Expiration(ttl).
			Build(),
	}
}

// Get returns the cached result for key.
func (m *Memory) Get(_ context.Context, key string) (models.GeocodeResult, bool) {
	v, err := m.lru.Get(key)
	if err != nil {
		return models.GeocodeResult{}, false
	}
	result, ok := v.(models.GeocodeResult)
	return result, ok
}

// Set stores result under key, evicting the least recently used entry when full.
func (m *Memory) Set(_ context.Context, key string, result models.GeocodeResult) {
	_ = m.lru.Set(key, result)
}

// Len returns the number of unexpired entries.
func (m *Memory) Len() int {
	return m.lru.Len(true)
}
