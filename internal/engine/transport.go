package engine

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Transport sends one HTTP request. A non-nil error means the request never
// produced a response (dial, TLS, timeout, cancelled context, open breaker).
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Request is a single outbound call. Header overrides the client defaults.
type Request struct {
	Method string
	URL    string
	Query  url.Values
	Header map[string]string
}

// Response is the raw result of a request that reached the server.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// StatusError is returned for responses that are worth retrying. It carries
// the last response so callers can still inspect it after retries run out.
type StatusError struct {
	Response *Response
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d", e.Response.StatusCode)
}

// NewTransport builds the configured transport wrapped in a Guard.
func NewTransport(cfg Config) (Transport, error) {
	var (
		base Transport
		err  error
	)
	switch strings.ToLower(cfg.Transport) {
	case "", TransportBrowser:
		base, err = NewBrowserClient(cfg)
	case TransportResty:
		base, err = NewRestyClient(cfg)
	default:
		return nil, fmt.Errorf("unknown transport %q", cfg.Transport)
	}
	if err != nil {
		return nil, err
	}
	return NewGuard(base, cfg), nil
}

// defaultHeaders returns the Chrome-like header set sent with every request.
// The configured UA wins over the rotated one.
func defaultHeaders(cfg Config) map[string]string {
	h := ChromeHeaders()
	if cfg.UserAgent != "" {
		h["user-agent"] = cfg.UserAgent
	}
	h["referer"] = cfg.referer()
	return h
}

func requestURL(req *Request) (*url.URL, error) {
	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if len(req.Query) > 0 {
		q := u.Query()
		for k, vs := range req.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u, nil
}

func method(req *Request) string {
	if req.Method == "" {
		return http.MethodGet
	}
	return req.Method
}
