package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TagRequests       atomic.Int64
	UserRequests      atomic.Int64
	VideoRequests     atomic.Int64
	FeedRequests      atomic.Int64
	TransportRequests atomic.Int64
	TransportErrors   atomic.Int64
	BreakerRejects    atomic.Int64
	UpstreamFailures  atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"tag_requests":       metrics.TagRequests.Load(),
		"user_requests":      metrics.UserRequests.Load(),
		"video_requests":     metrics.VideoRequests.Load(),
		"feed_requests":      metrics.FeedRequests.Load(),
		"transport_requests": metrics.TransportRequests.Load(),
		"transport_errors":   metrics.TransportErrors.Load(),
		"breaker_rejects":    metrics.BreakerRejects.Load(),
		"upstream_failures":  metrics.UpstreamFailures.Load(),
		"cache_hits":         hits,
		"cache_misses":       misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"tag_requests", "user_requests", "video_requests", "feed_requests",
		"transport_requests", "transport_errors", "breaker_rejects",
		"upstream_failures",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the tiktok client.
func IncrTagRequests()      { metrics.TagRequests.Add(1) }
func IncrUserRequests()     { metrics.UserRequests.Add(1) }
func IncrVideoRequests()    { metrics.VideoRequests.Add(1) }
func IncrFeedRequests()     { metrics.FeedRequests.Add(1) }
func IncrUpstreamFailures() { metrics.UpstreamFailures.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
