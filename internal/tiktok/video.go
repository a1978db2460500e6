package tiktok

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/anatolykoptev/go_tiktok/internal/engine"
)

const (
	mobileVideoBase = "https://m.tiktok.com/v/"
	shortLinkBase   = "https://vm.tiktok.com/"
	cursorZero      = "0"
)

const videoDomain = "tiktok.com"

var numericID = regexp.MustCompile(`^\d+$`)

// VideoURL maps a video id to its canonical page: numeric ids use the
// mobile /v/ form, anything else is treated as a short-link code.
func VideoURL(id string) string {
	if numericID.MatchString(id) {
		return mobileVideoBase + id + ".html"
	}
	return shortLinkBase + url.PathEscape(id)
}

// FetchVideoByID resolves id with VideoURL and fetches that page.
func (c *Client) FetchVideoByID(ctx context.Context, id string) (*Envelope, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: empty video id", ErrInvalidInput)
	}
	return c.FetchVideoByURL(ctx, VideoURL(id))
}

// FetchVideoByURL fetches a single video page. URLs outside tiktok.com are
// rejected before any request is made.
func (c *Client) FetchVideoByURL(ctx context.Context, rawURL string) (*Envelope, error) {
	u, err := parseVideoURL(rawURL)
	if err != nil {
		return nil, err
	}
	ctx, span := startSpan(ctx, "FetchVideo", attribute.String("tiktok.url", rawURL))
	engine.IncrVideoRequests()
	env := c.gate.Do(ctx, engine.CacheKey("video", videoKey(u)), func(ctx context.Context) *Envelope {
		return c.fetchVideo(ctx, rawURL)
	})
	endSpan(span, env)
	return env, nil
}

// parseVideoURL accepts absolute http(s) URLs whose host is tiktok.com or
// one of its subdomains.
func parseVideoURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("%w: bad video url %q: %v", ErrInvalidInput, rawURL, err)
	}
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if (scheme != "http" && scheme != "https") || u.User != nil ||
		(host != videoDomain && !strings.HasSuffix(host, "."+videoDomain)) {
		return nil, fmt.Errorf("%w: not a tiktok.com video url: %q", ErrInvalidInput, rawURL)
	}
	return u, nil
}

func (c *Client) fetchVideo(ctx context.Context, rawURL string) *Envelope {
	meta, state := c.fetchPage(ctx, rawURL)
	if !meta.Success {
		return &Envelope{Meta: meta}
	}
	if !Has(state, "ItemModule") || !Has(state, "ItemList") || !Has(state, "UserModule") {
		return missingKeys(meta)
	}

	id := deref(String(state, "ItemList", "video", "keyword"))
	item := Get(state, "ItemModule", id)
	author := Get(state, "UserModule", "users", deref(String(item, "author")))

	return &Envelope{
		Meta: meta,
		Info: &Info{
			Type: InfoVideo,
			Detail: &Detail{
				URL:   rawURL,
				User:  author,
				Stats: Get(item, "stats"),
			},
		},
		Items:     []FeedItem{NormalizeModuleItem(item, author)},
		HasMore:   false,
		MinCursor: cursorZero,
		MaxCursor: cursorZero,
	}
}
