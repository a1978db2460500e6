package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// storedCookie is the persisted form of a session cookie. Jars only expose
// name and value for a URL, so that is all that survives a restart.
type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// cookieFile persists per-host cookies as JSON so sessions survive restarts.
// An empty path disables persistence.
type cookieFile struct {
	path string
	mu   sync.Mutex
}

func newCookieFile(path string) *cookieFile {
	return &cookieFile{path: path}
}

// load returns host → cookies. A missing file is not an error.
func (f *cookieFile) load() (map[string][]storedCookie, error) {
	if f == nil || f.path == "" {
		return nil, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readLocked()
}

func (f *cookieFile) readLocked() (map[string][]storedCookie, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string][]storedCookie{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cookie file: %w", err)
	}
	out := map[string][]storedCookie{}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode cookie file: %w", err)
	}
	return out, nil
}

// save replaces the cookies stored for host. Writes go through a temp file
// and rename so a crash never leaves a truncated jar.
func (f *cookieFile) save(host string, cookies []storedCookie) {
	if f == nil || f.path == "" || host == "" {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.readLocked()
	if err != nil {
		slog.Debug("cookies: discarding unreadable jar", slog.String("path", f.path), slog.Any("error", err))
		all = map[string][]storedCookie{}
	}
	if len(cookies) == 0 {
		delete(all, host)
	} else {
		all[host] = cookies
	}

	data, err := json.Marshal(all)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o750); err != nil {
		slog.Debug("cookies: mkdir failed", slog.Any("error", err))
		return
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		slog.Debug("cookies: write failed", slog.Any("error", err))
		return
	}
	if err := os.Rename(tmp, f.path); err != nil {
		slog.Debug("cookies: rename failed", slog.Any("error", err))
	}
}
