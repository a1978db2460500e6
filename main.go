// go_tiktok: TikTok web API MCP server.
//
// Exposes hashtag, user, trending and video lookups as MCP tools. Responses
// come back as one envelope shape with meta.success and the upstream codes.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_tiktok/internal/engine"
	"github.com/anatolykoptev/go_tiktok/internal/settings"
	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
	"github.com/anatolykoptev/go_tiktok/internal/tiktokserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8891")
)

func main() {
	s := settings.Load()
	logs := s.SetupLogging(os.Stderr)
	defer logs.Close()

	client, err := initClient(context.Background(), s)
	if err != nil {
		slog.Error("client init failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("starting go_tiktok",
		slog.String("port", mcpPort),
		slog.String("transport", s.Engine.Transport),
		slog.Bool("cache", s.Engine.CacheEnabled),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_tiktok",
		Version: version,
	}, nil)

	tiktokserver.RegisterTools(server, client)
	slog.Info("tools registered", slog.Int("count", tiktokserver.ToolCount))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_tiktok",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: s.Timeout() + 30*time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initClient(ctx context.Context, s settings.Settings) (*tiktok.Client, error) {
	transport, err := engine.NewTransport(s.Engine)
	if err != nil {
		return nil, err
	}
	store := engine.NewStore(ctx, s.Engine)
	return tiktok.New(s.Client, transport, store), nil
}
