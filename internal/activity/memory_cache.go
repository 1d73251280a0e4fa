package activity

import (
	"context"
	"sync"

	"github.com/limbo/habitgrid/pkg/entity"
)

// MemoryCache is a process-local CacheStore.
type MemoryCache struct {
	mu    sync.RWMutex
	cache *entity.ActivityCache
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (m *MemoryCache) Load(_ context.Context) (*entity.ActivityCache, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cache, nil
}

func (m *MemoryCache) Save(_ context.Context, cache *entity.ActivityCache) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = cache
	return nil
}
