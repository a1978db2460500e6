package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// maxBodyBytes caps a single response; profile pages run to a few MB.
const maxBodyBytes = 16 << 20

// BrowserClient wraps tls-client with Chrome TLS fingerprint.
// Requests appear as Chrome 131+ to TLS fingerprinting (JA3 hash).
type BrowserClient struct {
	client  tls_client.HttpClient
	headers map[string]string
	cookies *cookieFile
}

// NewBrowserClient creates a client that impersonates Chrome 131, routes
// through cfg.Proxy when set and restores cookies from cfg.CookieFile.
func NewBrowserClient(cfg Config) (*BrowserClient, error) {
	jar := tls_client.NewCookieJar()
	opts := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(int(cfg.timeout().Seconds())),
		tls_client.WithClientProfile(profiles.Chrome_131),
		tls_client.WithCookieJar(jar),
	}
	if proxy := cfg.Proxy.URL(); proxy != "" {
		opts = append(opts, tls_client.WithProxyUrl(proxy))
	}
	client, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), opts...)
	if err != nil {
		return nil, fmt.Errorf("tls-client init: %w", err)
	}

	bc := &BrowserClient{
		client:  client,
		headers: defaultHeaders(cfg),
		cookies: newCookieFile(cfg.CookieFile),
	}
	bc.restoreCookies()
	return bc, nil
}

// Do executes a request with Chrome TLS fingerprint.
func (bc *BrowserClient) Do(ctx context.Context, req *Request) (*Response, error) {
	u, err := requestURL(req)
	if err != nil {
		return nil, err
	}
	hreq, err := fhttp.NewRequestWithContext(ctx, method(req), u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	for k, v := range bc.headers {
		hreq.Header.Set(k, v)
	}
	for k, v := range req.Header {
		hreq.Header.Set(k, v)
	}

	// Chrome-like header order matters for fingerprinting
	hreq.Header[fhttp.HeaderOrderKey] = []string{
		"accept",
		"accept-language",
		"accept-encoding",
		"referer",
		"cookie",
		"user-agent",
	}

	resp, err := bc.client.Do(hreq)
	if err != nil {
		return nil, fmt.Errorf("tls request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	bc.persistCookies(u)
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

func (bc *BrowserClient) restoreCookies() {
	stored, err := bc.cookies.load()
	if err != nil {
		slog.Warn("cookies: load failed, starting with empty jar", slog.Any("error", err))
		return
	}
	for host, cookies := range stored {
		fc := make([]*fhttp.Cookie, 0, len(cookies))
		for _, c := range cookies {
			fc = append(fc, &fhttp.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
		}
		bc.client.SetCookies(&url.URL{Scheme: "https", Host: host, Path: "/"}, fc)
	}
}

func (bc *BrowserClient) persistCookies(u *url.URL) {
	if bc.cookies.path == "" {
		return
	}
	jarCookies := bc.client.GetCookies(u)
	stored := make([]storedCookie, 0, len(jarCookies))
	for _, c := range jarCookies {
		stored = append(stored, storedCookie{Name: c.Name, Value: c.Value})
	}
	bc.cookies.save(u.Hostname(), stored)
}
