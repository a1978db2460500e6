package tiktok

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/anatolykoptev/go_tiktok/internal/engine"
)

// DefaultBaseURL is the web API origin.
const DefaultBaseURL = "https://www.tiktok.com"

var tracer = otel.Tracer("github.com/anatolykoptev/go_tiktok/internal/tiktok")

// Config holds client-level settings. Transport and cache backends are
// configured separately through engine.Config.
type Config struct {
	BaseURL        string
	CacheTTL       time.Duration
	SingleFlight   bool // de-duplicate concurrent cache misses per key
	ScriptFallback bool // read <script id="SIGI_STATE"> when the window markers are absent
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		CacheTTL: time.Hour,
	}
}

// Client talks to the TikTok web API. It is safe for concurrent use.
type Client struct {
	cfg       Config
	transport engine.Transport
	gate      *Gate
	fp        *Fingerprinter
}

// New builds a client. store may be nil to disable caching.
func New(cfg Config, transport engine.Transport, store engine.Store) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	return &Client{
		cfg:       cfg,
		transport: transport,
		gate:      NewGate(store, cfg.CacheTTL, cfg.SingleFlight),
		fp:        NewFingerprinter(),
	}
}

// result is one raw upstream exchange. sent is false when no response
// arrived at all.
type result struct {
	sent   bool
	ok     bool
	status int
	body   []byte
}

// call issues a GET. Transport errors collapse into a 504 result.
func (c *Client) call(ctx context.Context, rawURL string, query url.Values) result {
	var resp *engine.Response
	err := engine.TrackOperation(ctx, "GET "+rawURL, func(ctx context.Context) error {
		var err error
		resp, err = c.transport.Do(ctx, &engine.Request{
			Method: http.MethodGet,
			URL:    rawURL,
			Query:  query,
		})
		return err
	})
	if err != nil {
		slog.Debug("tiktok: transport failed", slog.String("url", rawURL), slog.Any("error", err))
		engine.IncrUpstreamFailures()
		return result{status: TransportFailureCode}
	}
	return result{sent: true, ok: resp.OK(), status: resp.StatusCode, body: resp.Body}
}

// fetchJSON calls a JSON endpoint under the base URL. The app code is read
// from the top-level statusCode.
func (c *Client) fetchJSON(ctx context.Context, path string, query url.Values) (Meta, Doc) {
	r := c.call(ctx, c.cfg.BaseURL+path, query)
	if !r.sent {
		return transportFailure(), nil
	}
	data, err := ExtractJSON(r.body)
	if err != nil {
		slog.Debug("tiktok: bad JSON response", slog.String("path", path), slog.Int("status", r.status), slog.Any("error", err))
	}
	meta := ComputeMeta(r.ok, r.status, Get(data, "statusCode"))
	if !meta.Success {
		engine.IncrUpstreamFailures()
	}
	return meta, data
}

// fetchPage loads an HTML page and extracts its state blob. The blob is
// only read when the transport succeeded.
func (c *Client) fetchPage(ctx context.Context, rawURL string) (Meta, Doc) {
	r := c.call(ctx, rawURL, nil)
	if !r.sent {
		return transportFailure(), nil
	}
	meta := ComputeMeta(r.ok, r.status, NoAppCode)
	if !meta.Success {
		engine.IncrUpstreamFailures()
		return meta, nil
	}
	return meta, extractState(string(r.body), c.cfg.ScriptFallback)
}

// startSpan opens a span for a public operation.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, "tiktok."+name, trace.WithAttributes(attrs...))
}

// endSpan records the envelope outcome on span.
func endSpan(span trace.Span, env *Envelope) {
	if env == nil {
		span.End()
		return
	}
	span.SetAttributes(
		attribute.Bool("tiktok.success", env.Meta.Success),
		attribute.Int("http.status_code", env.Meta.HTTPCode),
	)
	if !env.Meta.Success {
		span.SetStatus(codes.Error, deref(env.Meta.Message))
	}
	if env.Items != nil {
		span.SetAttributes(attribute.Int("tiktok.items", len(env.Items)))
	}
	span.End()
}

// missingKeys turns a successful page fetch into a failure when the state
// lacks the keys an operation depends on.
func missingKeys(meta Meta) *Envelope {
	meta.Success = false
	engine.IncrUpstreamFailures()
	return &Envelope{Meta: meta}
}
