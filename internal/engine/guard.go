package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// RetryConfig controls retry behavior.
type RetryConfig struct {
	MaxRetries  int
	InitialWait time.Duration
	MaxWait     time.Duration
}

// DefaultRetryConfig is suitable for most upstream calls.
var DefaultRetryConfig = RetryConfig{
	MaxRetries:  0,
	InitialWait: 500 * time.Millisecond,
	MaxWait:     5 * time.Second,
}

// Guard wraps a Transport with a rate limiter, a circuit breaker and retries.
// Each layer is optional; a zero Config yields a pass-through.
type Guard struct {
	next    Transport
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	retry   RetryConfig
}

// NewGuard wraps next according to cfg.
func NewGuard(next Transport, cfg Config) *Guard {
	g := &Guard{next: next, retry: DefaultRetryConfig}
	if cfg.MaxRetries > 0 {
		g.retry.MaxRetries = cfg.MaxRetries
	}
	if cfg.RateLimit > 0 {
		g.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	if cfg.BreakerThreshold > 0 {
		threshold := uint32(cfg.BreakerThreshold)
		g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "upstream",
			Timeout: cfg.BreakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				slog.Warn("breaker: state change",
					slog.String("name", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		})
	}
	return g
}

// Do sends req through the configured layers.
func (g *Guard) Do(ctx context.Context, req *Request) (*Response, error) {
	metrics.TransportRequests.Add(1)
	resp, err := g.do(ctx, req)
	if err != nil {
		metrics.TransportErrors.Add(1)
	}
	return resp, err
}

func (g *Guard) do(ctx context.Context, req *Request) (*Response, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}
	if g.breaker == nil {
		return g.doWithRetry(ctx, req)
	}

	out, err := g.breaker.Execute(func() (interface{}, error) {
		return g.doWithRetry(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.BreakerRejects.Add(1)
		}
		return nil, err
	}
	return out.(*Response), nil
}

// doWithRetry retries transient errors and retryable statuses with
// exponential backoff. When retries run out on a status, the last response
// is returned as-is so the caller can map it.
func (g *Guard) doWithRetry(ctx context.Context, req *Request) (*Response, error) {
	operation := func() (*Response, error) {
		resp, err := g.next.Do(ctx, req)
		if err != nil {
			if ctx.Err() != nil || !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if IsRetryableStatus(resp.StatusCode) {
			return nil, &StatusError{Response: resp}
		}
		return resp, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = g.retry.InitialWait
	bo.MaxInterval = g.retry.MaxWait

	resp, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(uint(g.retry.MaxRetries+1)),
		backoff.WithNotify(func(err error, wait time.Duration) {
			slog.Debug("retrying", slog.Duration("wait", wait), slog.Any("error", err))
		}),
	)
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Response, nil
	}
	return resp, err
}

// isRetryable returns true for transient errors worth retrying.
func isRetryable(err error) bool {
	// Connection errors (dial failures, connection refused, etc.)
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	// DNS errors
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	// Timeout errors (net.Error includes OpError, so check after OpError)
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}
