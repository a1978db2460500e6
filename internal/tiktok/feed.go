package tiktok

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/anatolykoptev/go_tiktok/internal/engine"
)

const (
	feedPath     = "/node/video/feed"
	feedPageSize = 30
)

// feedKind is the upstream "type" parameter of the feed endpoint.
type feedKind int

const (
	feedUser      feedKind = 1
	feedChallenge feedKind = 3
	feedTrending  feedKind = 5
)

// feedRequest describes one page request.
type feedRequest struct {
	kind      feedKind
	id        string
	maxCursor int64
	info      *Info
}

// TagFeed returns one page of videos for a hashtag. The tag is resolved
// first; if that fails its envelope is returned unchanged.
func (c *Client) TagFeed(ctx context.Context, name string, maxCursor int64) (*Envelope, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: empty tag name", ErrInvalidInput)
	}
	ctx, span := startSpan(ctx, "TagFeed",
		attribute.String("tiktok.tag", name),
		attribute.Int64("tiktok.max_cursor", maxCursor),
	)
	engine.IncrFeedRequests()
	key := engine.CacheKey("tag-feed", name, strconv.FormatInt(maxCursor, 10))
	env := c.gate.Do(ctx, key, func(ctx context.Context) *Envelope {
		parent := c.resolveTag(ctx, name)
		if !parent.Meta.Success {
			return parent
		}
		detail := parent.detail()
		return c.feed(ctx, feedRequest{
			kind:      feedChallenge,
			id:        deref(String(detail.Challenge, "id")),
			maxCursor: maxCursor,
			info:      &Info{Type: InfoChallenge, Detail: detail},
		})
	})
	endSpan(span, env)
	return env, nil
}

// UserFeed returns one page of a user's videos. The profile is resolved
// first; if that fails its envelope is returned unchanged.
func (c *Client) UserFeed(ctx context.Context, username string, maxCursor int64) (*Envelope, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: empty username", ErrInvalidInput)
	}
	ctx, span := startSpan(ctx, "UserFeed",
		attribute.String("tiktok.user", username),
		attribute.Int64("tiktok.max_cursor", maxCursor),
	)
	engine.IncrFeedRequests()
	key := engine.CacheKey("user-feed", username, strconv.FormatInt(maxCursor, 10))
	env := c.gate.Do(ctx, key, func(ctx context.Context) *Envelope {
		parent := c.resolveUser(ctx, username)
		if !parent.Meta.Success {
			return parent
		}
		userinfo := parent.UserInfo
		if userinfo == nil || String(userinfo.User, "id") == nil {
			return missingKeys(parent.Meta)
		}
		return c.feed(ctx, feedRequest{
			kind:      feedUser,
			id:        *String(userinfo.User, "id"),
			maxCursor: maxCursor,
			info:      &Info{Type: InfoUser, Detail: userinfo},
		})
	})
	endSpan(span, env)
	return env, nil
}

// TrendingFeed returns one page of the trending feed.
func (c *Client) TrendingFeed(ctx context.Context, maxCursor int64) (*Envelope, error) {
	ctx, span := startSpan(ctx, "TrendingFeed", attribute.Int64("tiktok.max_cursor", maxCursor))
	engine.IncrFeedRequests()
	key := engine.CacheKey("trending", strconv.FormatInt(maxCursor, 10))
	env := c.gate.Do(ctx, key, func(ctx context.Context) *Envelope {
		return c.feed(ctx, feedRequest{
			kind:      feedTrending,
			id:        "1",
			maxCursor: maxCursor,
			info:      &Info{Type: InfoTrending},
		})
	})
	endSpan(span, env)
	return env, nil
}

// feed fetches one page and assembles the envelope.
func (c *Client) feed(ctx context.Context, req feedRequest) *Envelope {
	meta, data := c.fetchJSON(ctx, feedPath, c.feedQuery(req))
	if !meta.Success {
		return &Envelope{Meta: meta}
	}
	body := Get(data, "body")
	hasMore := Bool(body, "hasMore")
	return &Envelope{
		Meta:      meta,
		Info:      req.info,
		Items:     Normalize(List(body, "itemListData")),
		HasMore:   hasMore != nil && *hasMore,
		MinCursor: Get(body, "minCursor"),
		MaxCursor: Get(body, "maxCursor"),
	}
}

// feedQuery builds the feed parameters. Only user and trending pages carry
// a verifyFp token, and only trending asks for English.
func (c *Client) feedQuery(req feedRequest) url.Values {
	var lang, verifyFp string
	switch req.kind {
	case feedTrending:
		lang = "en"
		verifyFp = c.fp.Generate()
	case feedUser:
		verifyFp = c.fp.Generate()
	}
	q := url.Values{}
	q.Set("type", strconv.Itoa(int(req.kind)))
	q.Set("secUid", "")
	q.Set("id", req.id)
	q.Set("count", strconv.Itoa(feedPageSize))
	q.Set("minCursor", "0")
	q.Set("maxCursor", strconv.FormatInt(req.maxCursor, 10))
	q.Set("shareUid", "")
	q.Set("lang", lang)
	q.Set("verifyFp", verifyFp)
	return q
}

// detail returns the info detail of e, never nil.
func (e *Envelope) detail() *Detail {
	if e.Info == nil || e.Info.Detail == nil {
		return &Detail{}
	}
	return e.Info.Detail
}
