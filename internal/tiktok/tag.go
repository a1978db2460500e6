package tiktok

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/anatolykoptev/go_tiktok/internal/engine"
)

// ResolveTag looks up a hashtag (challenge) by name.
func (c *Client) ResolveTag(ctx context.Context, name string) (*Envelope, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: empty tag name", ErrInvalidInput)
	}
	ctx, span := startSpan(ctx, "ResolveTag", attribute.String("tiktok.tag", name))
	engine.IncrTagRequests()
	env := c.resolveTag(ctx, name)
	endSpan(span, env)
	return env, nil
}

func (c *Client) resolveTag(ctx context.Context, name string) *Envelope {
	return c.gate.Do(ctx, engine.CacheKey("tag", name), func(ctx context.Context) *Envelope {
		meta, data := c.fetchJSON(ctx, "/node/share/tag/"+url.PathEscape(name), nil)
		env := &Envelope{Meta: meta}
		if meta.Success {
			env.Info = &Info{
				Type: InfoChallenge,
				Detail: &Detail{
					Challenge: Get(data, "challengeInfo", "challenge"),
					Stats:     Get(data, "challengeInfo", "stats"),
				},
			}
		}
		return env
	})
}
