package tiktok

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/anatolykoptev/go_tiktok/internal/engine"
)

// Gate memoizes envelopes by key. A hit is returned as stored; on a miss
// compute runs and its result is stored only when Meta.Success is set.
// A nil store disables caching entirely.
type Gate struct {
	store engine.Store
	ttl   time.Duration
	group *singleflight.Group // nil unless single-flight is enabled
}

// NewGate wraps store. With singleFlight, concurrent misses on one key
// share a single compute call.
func NewGate(store engine.Store, ttl time.Duration, singleFlight bool) *Gate {
	g := &Gate{store: store, ttl: ttl}
	if singleFlight {
		g.group = &singleflight.Group{}
	}
	return g
}

// Enabled reports whether results are cached.
func (g *Gate) Enabled() bool {
	return g != nil && g.store != nil
}

// Do returns the cached envelope for key or computes it.
func (g *Gate) Do(ctx context.Context, key string, compute func(context.Context) *Envelope) *Envelope {
	if !g.Enabled() {
		return compute(ctx)
	}
	if env, ok := g.load(ctx, key); ok {
		return env
	}
	if g.group == nil {
		return g.fill(ctx, key, compute)
	}
	v, _, _ := g.group.Do(key, func() (any, error) {
		return g.fill(ctx, key, compute), nil
	})
	return v.(*Envelope)
}

func (g *Gate) fill(ctx context.Context, key string, compute func(context.Context) *Envelope) *Envelope {
	env := compute(ctx)
	if env == nil || !env.Meta.Success {
		return env
	}
	data, err := json.Marshal(env)
	if err != nil {
		slog.Debug("tiktok: envelope not cacheable", slog.String("key", key), slog.Any("error", err))
		return env
	}
	g.store.Set(ctx, key, data, g.ttl)
	return env
}

func (g *Gate) load(ctx context.Context, key string) (*Envelope, bool) {
	data, ok := g.store.Get(ctx, key)
	if !ok {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var env Envelope
	if err := dec.Decode(&env); err != nil {
		slog.Debug("tiktok: dropping undecodable cache entry", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	return &env, true
}
