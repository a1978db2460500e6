package engine

import (
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Transport kinds accepted by Config.Transport.
const (
	TransportBrowser = "browser"
	TransportResty   = "resty"
)

// DefaultReferer is sent with every request unless the caller overrides it.
const DefaultReferer = "https://www.tiktok.com/foryou?lang=en"

// ProxyConfig describes an optional upstream HTTP proxy.
type ProxyConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// URL returns the proxy as a URL string, or "" when no proxy is configured.
// Credentials are only included when both username and password are set.
func (p ProxyConfig) URL() string {
	if p.Host == "" || p.Port <= 0 {
		return ""
	}
	u := url.URL{Scheme: "http", Host: net.JoinHostPort(p.Host, strconv.Itoa(p.Port))}
	if p.Username != "" && p.Password != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u.String()
}

// Config holds all engine configuration, injected from main.
// It is read-only once the transport and store are built.
type Config struct {
	UserAgent  string // empty = random Chrome UA per client
	Referer    string
	Proxy      ProxyConfig
	CookieFile string
	Timeout    time.Duration // connect and overall request timeout
	Transport  string        // TransportBrowser (default) or TransportResty

	RateLimit        float64 // requests per second, 0 = unlimited
	MaxRetries       int     // retries for retryable statuses and transient errors
	BreakerThreshold int     // consecutive failures before the breaker opens, 0 = disabled
	BreakerCooldown  time.Duration

	CacheEnabled         bool
	CacheTTL             time.Duration
	CacheMaxBytes        int // L1 size
	CacheCleanupInterval time.Duration
	RedisURL             string // L2 candidates, first non-empty wins
	DatabaseURL          string
	SQLitePath           string
}

// DefaultConfig mirrors the upstream session defaults: 15s timeouts, 1h cache,
// cookies kept in the system temp dir.
func DefaultConfig() Config {
	return Config{
		Referer:              DefaultReferer,
		CookieFile:           filepath.Join(os.TempDir(), "tiktok_cookies.json"),
		Timeout:              15 * time.Second,
		Transport:            TransportBrowser,
		BreakerThreshold:     5,
		BreakerCooldown:      30 * time.Second,
		CacheTTL:             time.Hour,
		CacheMaxBytes:        32 * 1024 * 1024,
		CacheCleanupInterval: 5 * time.Minute,
	}
}

func (c Config) referer() string {
	if c.Referer == "" {
		return DefaultReferer
	}
	return c.Referer
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 15 * time.Second
	}
	return c.Timeout
}

// CallBudget is the longest one guarded request can take: every attempt
// timing out plus the longest backoff wait between attempts.
func (c Config) CallBudget() time.Duration {
	retries := max(c.MaxRetries, 0)
	return time.Duration(retries+1)*c.timeout() + time.Duration(retries)*DefaultRetryConfig.MaxWait
}
