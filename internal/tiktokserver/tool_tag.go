package tiktokserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
	"github.com/anatolykoptev/go_tiktok/internal/toolutil"
)

func registerTag(server *mcp.Server, client *tiktok.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "tiktok_tag",
		Description: "Look up a TikTok hashtag (challenge). Returns the challenge record (id, title, description) and its stats (video and view counts) inside a result envelope with meta.success, httpCode and the upstream status code.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input TagInput) (*mcp.CallToolResult, any, error) {
		return toolutil.Envelope(client.ResolveTag(ctx, toolutil.TrimTag(input.Name)))
	})
}

func registerTagFeed(server *mcp.Server, client *tiktok.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "tiktok_tag_feed",
		Description: "List videos for a TikTok hashtag, 30 per page. Returns normalized items (video, author, music, stats) plus hasMore and minCursor/maxCursor. Pass the returned maxCursor as max_cursor to get the next page.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input TagFeedInput) (*mcp.CallToolResult, any, error) {
		return toolutil.Envelope(client.TagFeed(ctx, toolutil.TrimTag(input.Name), toolutil.NormCursor(input.MaxCursor)))
	})
}

func registerTrending(server *mcp.Server, client *tiktok.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "tiktok_trending",
		Description: "List trending TikTok videos, 30 per page. Returns normalized items plus hasMore and minCursor/maxCursor for pagination.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input TrendingInput) (*mcp.CallToolResult, any, error) {
		return toolutil.Envelope(client.TrendingFeed(ctx, toolutil.NormCursor(input.MaxCursor)))
	})
}
