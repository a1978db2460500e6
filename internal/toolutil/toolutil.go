// Package toolutil provides shared helper functions for the go_tiktok MCP
// tools and CLI commands.
package toolutil

import (
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
)

// TrimTag normalises a hashtag argument: surrounding space and a leading
// "#" are dropped.
func TrimTag(name string) string {
	return strings.TrimPrefix(strings.TrimSpace(name), "#")
}

// TrimHandle normalises a profile handle: surrounding space and a leading
// "@" are dropped. Case is kept since profile lookups are case-sensitive.
func TrimHandle(username string) string {
	return strings.TrimPrefix(strings.TrimSpace(username), "@")
}

// NormCursor clamps a pagination cursor: negative → 0.
func NormCursor(c int64) int64 {
	if c < 0 {
		return 0
	}
	return c
}

// Envelope adapts a client result to an MCP tool handler return. Caller
// errors (invalid input) become tool errors; upstream failures are ordinary
// results with meta.success false.
func Envelope(env *tiktok.Envelope, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return nil, nil, err
	}
	return nil, env, nil
}
