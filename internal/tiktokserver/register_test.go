package tiktokserver

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_tiktok/internal/engine"
	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
)

type stubTransport struct {
	paths []string
}

func (s *stubTransport) Do(_ context.Context, req *engine.Request) (*engine.Response, error) {
	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, err
	}
	s.paths = append(s.paths, u.Path)
	if u.Path == "/node/share/tag/dance" {
		return &engine.Response{StatusCode: 200, Body: []byte(`{"statusCode":0,"challengeInfo":{"challenge":{"id":"1"},"stats":{}}}`)}, nil
	}
	return &engine.Response{StatusCode: 404}, nil
}

func connect(t *testing.T, tr engine.Transport) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := mcp.NewServer(&mcp.Implementation{Name: "go_tiktok", Version: "test"}, nil)
	RegisterTools(server, tiktok.New(tiktok.DefaultConfig(), tr, nil))

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() })
	return cs
}

func TestRegisterTools(t *testing.T) {
	cs := connect(t, &stubTransport{})

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.Len(t, names, ToolCount)
	assert.ElementsMatch(t, []string{
		"tiktok_tag", "tiktok_tag_feed", "tiktok_trending",
		"tiktok_user", "tiktok_user_feed", "tiktok_video",
	}, names)
}

func TestTagTool(t *testing.T) {
	tr := &stubTransport{}
	cs := connect(t, tr)

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "tiktok_tag",
		Arguments: map[string]any{"name": "#dance"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	var env map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &env))
	assert.Equal(t, true, env["meta"].(map[string]any)["success"])
	assert.Equal(t, []string{"/node/share/tag/dance"}, tr.paths)
}

func TestVideoToolRejectsForeignURL(t *testing.T) {
	tr := &stubTransport{}
	cs := connect(t, tr)

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "tiktok_video",
		Arguments: map[string]any{"url": "https://example.com/video/1"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Empty(t, tr.paths)
}
