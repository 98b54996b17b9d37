package repository

import (
	"context"
	"sync"
)

// DefaultMemoryCacheEntries bounds the in-memory cache when no size is given.
const DefaultMemoryCacheEntries = 10_000

// MemoryCache is a process-local CacheRepository. When it reaches its
// capacity it is emptied before the next entry is stored.
type MemoryCache struct {
	mu         sync.RWMutex
	data       map[string]string
	maxEntries int
}

func NewMemoryCache(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryCacheEntries
	}
	return &MemoryCache{
		data:       make(map[string]string),
		maxEntries: maxEntries,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.data[key]
	return val, ok
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists && len(m.data) >= m.maxEntries {
		clear(m.data)
	}
	m.data[key] = value
	return nil
}

// Len reports the number of cached entries.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.data)
}
