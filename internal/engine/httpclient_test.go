package engine

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNewBrowserClient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CookieFile = filepath.Join(t.TempDir(), "cookies.json")

	bc, err := NewBrowserClient(cfg)
	if err != nil {
		t.Fatalf("NewBrowserClient() error = %v", err)
	}
	if bc == nil {
		t.Fatal("NewBrowserClient() returned nil")
	}
	if bc.client == nil {
		t.Fatal("BrowserClient.client is nil")
	}
	if got := bc.headers["referer"]; got != DefaultReferer {
		t.Errorf("referer = %q, want %q", got, DefaultReferer)
	}
}

func TestNewBrowserClientWithProxy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CookieFile = ""
	cfg.Proxy = ProxyConfig{Host: "127.0.0.1", Port: 8080}

	if _, err := NewBrowserClient(cfg); err != nil {
		t.Fatalf("NewBrowserClient() with proxy error = %v", err)
	}
}

func TestChromeHeaders(t *testing.T) {
	h := ChromeHeaders()

	required := []string{"accept", "accept-language", "user-agent"}
	for _, key := range required {
		if _, ok := h[key]; !ok {
			t.Errorf("ChromeHeaders() missing key %q", key)
		}
	}

	ua := h["user-agent"]
	if ua == "" {
		t.Error("user-agent is empty")
	}
	// Should contain Chrome identifier
	if len(ua) < 20 {
		t.Errorf("user-agent too short: %q", ua)
	}
	for k := range h {
		if k != strings.ToLower(k) {
			t.Errorf("header key %q is not lower case", k)
		}
	}
}

func TestDefaultHeadersConfiguredUA(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UserAgent = "test-agent/1.0"
	cfg.Referer = "https://example.com/"

	h := defaultHeaders(cfg)
	if h["user-agent"] != "test-agent/1.0" {
		t.Errorf("user-agent = %q, want configured value", h["user-agent"])
	}
	if h["referer"] != "https://example.com/" {
		t.Errorf("referer = %q, want configured value", h["referer"])
	}
}
