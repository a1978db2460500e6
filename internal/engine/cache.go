package engine

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Store is the cache backend contract: opaque bytes under a key with a TTL.
// Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// Cache metrics, atomic for thread-safe access.
var (
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
)

// CacheKey builds a deterministic cache key from parts.
func CacheKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("tt:%x", hash[:12]) // 24-char hex prefix
}

// CacheStats returns current cache hit/miss counters.
func CacheStats() (hits, misses int64) {
	return cacheHits.Load(), cacheMisses.Load()
}

// TieredStore implements L1 (memory) + L2 (shared backend) caching.
// L1 is fast but lost on restart. L2 survives restarts.
type TieredStore struct {
	l1 Store
	l2 Store // nil if no backend configured or reachable
}

// NewTieredStore combines l1 and an optional l2.
func NewTieredStore(l1, l2 Store) *TieredStore {
	return &TieredStore{l1: l1, l2: l2}
}

// Get tries L1, then L2. On L2 hit, populates L1.
func (c *TieredStore) Get(ctx context.Context, key string) ([]byte, bool) {
	if data, ok := c.l1.Get(ctx, key); ok {
		slog.Debug("cache: L1 hit", slog.String("key", key))
		cacheHits.Add(1)
		return data, true
	}

	if c.l2 != nil {
		if data, ttl, ok := c.l2Get(ctx, key); ok {
			slog.Debug("cache: L2 hit", slog.String("key", key))
			cacheHits.Add(1)
			c.l1.Set(ctx, key, data, ttl)
			return data, true
		}
	}

	cacheMisses.Add(1)
	return nil, false
}

// l2Get reads from L2 and reports the remaining TTL when the backend knows it.
func (c *TieredStore) l2Get(ctx context.Context, key string) ([]byte, time.Duration, bool) {
	if tl, ok := c.l2.(ttlStore); ok {
		return tl.GetWithTTL(ctx, key)
	}
	data, ok := c.l2.Get(ctx, key)
	return data, time.Minute, ok
}

// Set stores value in both L1 and L2.
func (c *TieredStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	c.l1.Set(ctx, key, value, ttl)
	if c.l2 != nil {
		c.l2.Set(ctx, key, value, ttl)
	}
}

// ttlStore is implemented by backends that can report remaining lifetime,
// so an L1 refill never outlives the L2 entry.
type ttlStore interface {
	GetWithTTL(ctx context.Context, key string) ([]byte, time.Duration, bool)
}

// NewStore builds the cache described by cfg, or returns nil when caching is
// disabled. L2 is the first reachable of Redis, Postgres, SQLite; an
// unreachable backend is logged and skipped.
func NewStore(ctx context.Context, cfg Config) Store {
	if !cfg.CacheEnabled {
		return nil
	}
	l1 := NewMemoryStore(cfg.CacheMaxBytes)

	var l2 Store
	switch {
	case cfg.RedisURL != "":
		rs, err := NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			slog.Warn("cache: redis unreachable, L2 disabled", slog.Any("error", err))
		} else {
			l2 = rs
		}
	case cfg.DatabaseURL != "":
		ps, err := NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Warn("cache: postgres unreachable, L2 disabled", slog.Any("error", err))
		} else {
			l2 = ps
			go purgeLoop(ps, cfg.CacheCleanupInterval)
		}
	case cfg.SQLitePath != "":
		ss, err := NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			slog.Warn("cache: sqlite unavailable, L2 disabled", slog.Any("error", err))
		} else {
			l2 = ss
			go purgeLoop(ss, cfg.CacheCleanupInterval)
		}
	}

	slog.Info("cache: initialized",
		slog.Duration("ttl", cfg.CacheTTL),
		slog.Bool("l2", l2 != nil),
		slog.Int("l1_bytes", cfg.CacheMaxBytes),
	)
	return NewTieredStore(l1, l2)
}

type purger interface {
	Purge(ctx context.Context) (int64, error)
}

// purgeLoop periodically removes expired rows from SQL-backed stores.
func purgeLoop(p purger, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		n, err := p.Purge(ctx)
		cancel()
		if err != nil {
			slog.Debug("cache: purge failed", slog.Any("error", err))
			continue
		}
		if n > 0 {
			slog.Debug("cache: purged expired entries", slog.Int64("count", n))
		}
	}
}
