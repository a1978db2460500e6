package tiktokserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
	"github.com/anatolykoptev/go_tiktok/internal/toolutil"
)

func registerVideo(server *mcp.Server, client *tiktok.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "tiktok_video",
		Description: "Fetch a single TikTok video by numeric id, short-link code or full tiktok.com URL. Returns the normalized item, the author profile and the video stats.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input VideoInput) (*mcp.CallToolResult, any, error) {
		if u := strings.TrimSpace(input.URL); u != "" {
			return toolutil.Envelope(client.FetchVideoByURL(ctx, u))
		}
		if input.ID == "" {
			return nil, nil, fmt.Errorf("id or url is required")
		}
		return toolutil.Envelope(client.FetchVideoByID(ctx, input.ID))
	})
}
