package tiktok

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/anatolykoptev/go_tiktok/internal/engine"
)

// ResolveUser loads a profile page and returns the user and stats records
// stored under the exact username.
func (c *Client) ResolveUser(ctx context.Context, username string) (*Envelope, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: empty username", ErrInvalidInput)
	}
	ctx, span := startSpan(ctx, "ResolveUser", attribute.String("tiktok.user", username))
	engine.IncrUserRequests()
	env := c.resolveUser(ctx, username)
	endSpan(span, env)
	return env, nil
}

func (c *Client) resolveUser(ctx context.Context, username string) *Envelope {
	return c.gate.Do(ctx, engine.CacheKey("user", username), func(ctx context.Context) *Envelope {
		meta, state := c.fetchPage(ctx, c.cfg.BaseURL+"/@"+url.PathEscape(username))
		if !meta.Success {
			return &Envelope{Meta: meta}
		}
		if !Has(state, "UserModule") {
			return missingKeys(meta)
		}
		return &Envelope{
			Meta: meta,
			UserInfo: &Detail{
				User:  Get(state, "UserModule", "users", username),
				Stats: Get(state, "UserModule", "stats", username),
			},
		}
	})
}
