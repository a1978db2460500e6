package tiktokserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
)

// ToolCount is the number of tools RegisterTools adds.
const ToolCount = 6

// RegisterTools registers the TikTok lookup tools on the given MCP server:
// tiktok_tag, tiktok_tag_feed, tiktok_trending, tiktok_user,
// tiktok_user_feed, tiktok_video.
func RegisterTools(server *mcp.Server, client *tiktok.Client) {
	registerTag(server, client)
	registerTagFeed(server, client)
	registerTrending(server, client)
	registerUser(server, client)
	registerUserFeed(server, client)
	registerVideo(server, client)
}
