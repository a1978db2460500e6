package tiktokserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
	"github.com/anatolykoptev/go_tiktok/internal/toolutil"
)

func registerUser(server *mcp.Server, client *tiktok.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "tiktok_user",
		Description: "Look up a TikTok profile by handle. Returns userinfo.user (id, nickname, signature, avatars, verified, secUid) and userinfo.stats (followers, following, likes, videos). The handle is matched case-sensitively.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input UserInput) (*mcp.CallToolResult, any, error) {
		return toolutil.Envelope(client.ResolveUser(ctx, toolutil.TrimHandle(input.Username)))
	})
}

func registerUserFeed(server *mcp.Server, client *tiktok.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "tiktok_user_feed",
		Description: "List a TikTok user's videos, 30 per page. Returns normalized items plus hasMore and minCursor/maxCursor. Pass the returned maxCursor as max_cursor to get the next page.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input UserFeedInput) (*mcp.CallToolResult, any, error) {
		return toolutil.Envelope(client.UserFeed(ctx, toolutil.TrimHandle(input.Username), toolutil.NormCursor(input.MaxCursor)))
	})
}
