package engine

import (
	"strings"

	stealth "github.com/anatolykoptev/go-stealth"
)

// Re-export stealth helpers for engine consumers.

func RandomUserAgent() string         { return stealth.RandomUserAgent() }
func IsRetryableStatus(code int) bool { return stealth.IsRetryableStatus(code) }

// ChromeHeaders returns a private copy of the stealth Chrome header set,
// keyed in lower case.
func ChromeHeaders() map[string]string {
	src := stealth.ChromeHeaders()
	out := make(map[string]string, len(src)+1)
	for k, v := range src {
		out[strings.ToLower(k)] = v
	}
	if out["user-agent"] == "" {
		out["user-agent"] = RandomUserAgent()
	}
	return out
}
