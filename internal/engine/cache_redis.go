package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a shared L2 tier for multi-instance deployments.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects to redisURL and pings it.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	slog.Info("cache: L2 redis connected", slog.String("addr", opts.Addr))
	return &RedisStore{rdb: rdb}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// GetWithTTL also returns the key's remaining lifetime.
func (r *RedisStore) GetWithTTL(ctx context.Context, key string) ([]byte, time.Duration, bool) {
	pipe := r.rdb.Pipeline()
	get := pipe.Get(ctx, key)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, 0, false
	}
	data, err := get.Bytes()
	if err != nil {
		return nil, 0, false
	}
	remaining := ttl.Val()
	if remaining <= 0 {
		remaining = time.Minute
	}
	return data, remaining, true
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Debug("cache: L2 set failed", slog.Any("error", err))
	}
}

// Close releases the connection pool.
func (r *RedisStore) Close() error {
	return r.rdb.Close()
}
