package engine

import (
	"context"
	"time"

	"github.com/coocood/freecache"
)

const minMemoryBytes = 512 * 1024

// MemoryStore is the L1 tier. freecache bounds memory and expires entries
// on its own, so no cleanup goroutine is needed.
type MemoryStore struct {
	cache *freecache.Cache
}

// NewMemoryStore returns an in-process store holding at most size bytes.
func NewMemoryStore(size int) *MemoryStore {
	if size < minMemoryBytes {
		size = minMemoryBytes
	}
	return &MemoryStore{cache: freecache.NewCache(size)}
}

func newMemoryStoreWithTimer(size int, timer freecache.Timer) *MemoryStore {
	if size < minMemoryBytes {
		size = minMemoryBytes
	}
	return &MemoryStore{cache: freecache.NewCacheCustomTimer(size, timer)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	val, err := m.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores value. freecache counts in whole seconds and treats 0 as
// "never expires", so sub-second TTLs round up to one second.
func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	_ = m.cache.Set([]byte(key), value, ttlSeconds(ttl))
}

// Len reports the number of live entries.
func (m *MemoryStore) Len() int64 {
	return m.cache.EntryCount()
}

func ttlSeconds(ttl time.Duration) int {
	secs := int((ttl + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
