// Package settings builds go_tiktok configuration from the environment and
// sets up logging. Both the MCP server and the CLI start here.
package settings

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/anatolykoptev/go_tiktok/internal/engine"
	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
)

// Settings is everything read from the environment at startup.
type Settings struct {
	Engine engine.Config
	Client tiktok.Config

	LogFile  string
	LogLevel slog.Level
}

// Load reads the environment. Unset variables fall back to the engine and
// client defaults.
func Load() Settings {
	ec := engine.DefaultConfig()
	ec.UserAgent = env.Str("USER_AGENT", "")
	ec.Referer = env.Str("TIKTOK_REFERER", engine.DefaultReferer)
	ec.Proxy = engine.ProxyConfig{
		Host:     env.Str("PROXY_HOST", ""),
		Port:     env.Int("PROXY_PORT", 0),
		Username: env.Str("PROXY_USERNAME", ""),
		Password: env.Str("PROXY_PASSWORD", ""),
	}
	ec.CookieFile = env.Str("COOKIE_FILE", ec.CookieFile)
	ec.Timeout = env.Duration("FETCH_TIMEOUT", ec.Timeout)
	ec.Transport = env.Str("TRANSPORT", ec.Transport)
	ec.RateLimit = env.Float("RATE_LIMIT_RPS", 0)
	ec.MaxRetries = env.Int("MAX_RETRIES", 2)
	ec.BreakerThreshold = env.Int("BREAKER_THRESHOLD", ec.BreakerThreshold)
	ec.BreakerCooldown = env.Duration("BREAKER_COOLDOWN", ec.BreakerCooldown)
	ec.CacheEnabled = boolEnv("CACHE_ENABLED", false)
	ec.CacheTTL = env.Duration("CACHE_TTL", ec.CacheTTL)
	ec.CacheMaxBytes = env.Int("CACHE_MAX_BYTES", ec.CacheMaxBytes)
	ec.CacheCleanupInterval = env.Duration("CACHE_CLEANUP_INTERVAL", ec.CacheCleanupInterval)
	ec.RedisURL = env.Str("REDIS_URL", "")
	ec.DatabaseURL = env.Str("DATABASE_URL", "")
	ec.SQLitePath = env.Str("SQLITE_PATH", "")

	cc := tiktok.DefaultConfig()
	cc.BaseURL = env.Str("TIKTOK_BASE_URL", cc.BaseURL)
	cc.CacheTTL = ec.CacheTTL
	cc.SingleFlight = boolEnv("SINGLE_FLIGHT", false)
	cc.ScriptFallback = boolEnv("SCRIPT_FALLBACK", false)

	return Settings{
		Engine:   ec,
		Client:   cc,
		LogFile:  env.Str("LOG_FILE", ""),
		LogLevel: parseLevel(env.Str("LOG_LEVEL", "info")),
	}
}

// boolEnv reads a boolean variable. Unparseable values keep the default.
func boolEnv(key string, def bool) bool {
	v := env.Str(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("settings: invalid boolean, using default",
			slog.String("key", key),
			slog.String("value", v),
		)
		return def
	}
	return b
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogging installs the default slog handler. Logs go to console and,
// when LogFile is set, to a size-rotated file as well.
func (s Settings) SetupLogging(console io.Writer) io.Closer {
	if console == nil {
		console = os.Stderr
	}
	w := console
	var closer io.Closer = nopCloser{}
	if s.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   s.LogFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		}
		w = io.MultiWriter(console, lj)
		closer = lj
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: s.LogLevel})))
	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// callsPerOperation is the most upstream calls one operation makes: feeds
// resolve their parent before fetching the page.
const callsPerOperation = 2

// Timeout is how long a single operation may run before the caller gives up.
func (s Settings) Timeout() time.Duration {
	return callsPerOperation*s.Engine.CallBudget() + 5*time.Second
}
