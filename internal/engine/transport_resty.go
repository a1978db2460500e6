package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// RestyClient is the plain net/http transport. It has no TLS impersonation,
// which makes it the choice for tests and for proxies that terminate TLS.
type RestyClient struct {
	http    *resty.Client
	jar     http.CookieJar
	cookies *cookieFile
}

// NewRestyClient builds a resty-backed transport from cfg.
func NewRestyClient(cfg Config) (*RestyClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetTimeout(cfg.timeout())
	client.SetCookieJar(jar)
	for k, v := range defaultHeaders(cfg) {
		client.SetHeader(k, v)
	}
	// net/http only decompresses transparently when it picks the encoding itself.
	client.Header.Del("accept-encoding")
	if proxy := cfg.Proxy.URL(); proxy != "" {
		client.SetProxy(proxy)
	}

	rc := &RestyClient{http: client, jar: jar, cookies: newCookieFile(cfg.CookieFile)}
	rc.restoreCookies()
	return rc, nil
}

// Do executes req. Redirects are followed and carry the Referer header.
func (rc *RestyClient) Do(ctx context.Context, req *Request) (*Response, error) {
	u, err := requestURL(req)
	if err != nil {
		return nil, err
	}
	res, err := rc.http.R().
		SetContext(ctx).
		SetHeaders(req.Header).
		Execute(method(req), u.String())
	if err != nil {
		return nil, fmt.Errorf("resty request: %w", err)
	}
	rc.persistCookies(u)
	return &Response{StatusCode: res.StatusCode(), Body: res.Body()}, nil
}

func (rc *RestyClient) restoreCookies() {
	stored, err := rc.cookies.load()
	if err != nil {
		slog.Warn("cookies: load failed, starting with empty jar", slog.Any("error", err))
		return
	}
	for host, cookies := range stored {
		hc := make([]*http.Cookie, 0, len(cookies))
		for _, c := range cookies {
			hc = append(hc, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
		}
		rc.jar.SetCookies(&url.URL{Scheme: "https", Host: host, Path: "/"}, hc)
	}
}

func (rc *RestyClient) persistCookies(u *url.URL) {
	if rc.cookies.path == "" {
		return
	}
	jarCookies := rc.jar.Cookies(u)
	stored := make([]storedCookie, 0, len(jarCookies))
	for _, c := range jarCookies {
		stored = append(stored, storedCookie{Name: c.Name, Value: c.Value})
	}
	rc.cookies.save(u.Hostname(), stored)
}
