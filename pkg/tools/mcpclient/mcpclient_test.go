package mcpclient

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanamz/relay/pkg/tools/advmathtool"
	"github.com/germanamz/relay/pkg/tools/mathtool"
	"github.com/germanamz/relay/pkg/tools/toolbox"
)

// connect serves the given toolboxes over an in-memory transport and returns
// a connected client. The server goroutine is tied to t.Cleanup.
func connect(t *testing.T, tbs ...*toolbox.ToolBox) *Client {
	t.Helper()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "relay-tools",
		Version: "0.1.0",
	}, nil)

	for _, tb := range tbs {
		for _, tool := range tb.Tools() {
			handler := tool.Handler
			server.AddTool(&mcp.Tool{
				Name:        tool.Name,
				Description: tool.Description,
				InputSchema: tool.InputSchema,
			}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				result, err := handler(ctx, req.Params.Arguments)
				if err != nil {
					return &mcp.CallToolResult{
						Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
						IsError: true,
					}, nil
				}
				return &mcp.CallToolResult{
					Content: []mcp.Content{&mcp.TextContent{Text: result}},
				}, nil
			})
		}
	}

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- server.Run(ctx, serverTransport)
	}()
	t.Cleanup(func() {
		cancel()
		<-serverDone
	})

	client, err := newFromTransport(ctx, clientTransport)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestToolsListsServerTools(t *testing.T) {
	client := connect(t, mathtool.Toolbox())

	tools, err := client.Tools(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 3)

	byName := make(map[string]toolbox.Tool, len(tools))
	for _, tool := range tools {
		byName[tool.Name] = tool
	}

	calc, ok := byName["calculate"]
	require.True(t, ok)
	assert.NotEmpty(t, calc.Description)
	assert.NotNil(t, calc.Handler)

	_, ok = byName["convert_units"]
	assert.True(t, ok)
	_, ok = byName["calculate_percentage"]
	assert.True(t, ok)
}

func TestCallRoundTrip(t *testing.T) {
	client := connect(t, mathtool.Toolbox())

	text, err := client.Call(context.Background(), "calculate",
		json.RawMessage(`{"expression":"25 * 4 + 10"}`))
	require.NoError(t, err)
	assert.Equal(t, "25 * 4 + 10 = 110", text)
}

func TestCallToolError(t *testing.T) {
	client := connect(t, mathtool.Toolbox())

	text, err := client.Call(context.Background(), "calculate",
		json.RawMessage(`{"expression":"5 / 0"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
	assert.Empty(t, text)
}

func TestProxiedHandlerCallsBackThroughSession(t *testing.T) {
	client := connect(t, advmathtool.New().Toolbox())

	tb, err := client.Toolbox(context.Background())
	require.NoError(t, err)

	tool, ok := tb.Get("advanced_calculate")
	require.True(t, ok)

	out, err := tool.Handler(context.Background(), json.RawMessage(`{"expression":"sqrt(144)"}`))
	require.NoError(t, err)
	assert.Equal(t, "sqrt(144) = 12", out)
}

func TestCallJoinsMultipleContentItems(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "relay-tools",
		Version: "0.1.0",
	}, nil)

	server.AddTool(&mcp.Tool{
		Name:        "multi",
		Description: "Returns multiple content items",
		InputSchema: json.RawMessage(`{"type":"object"}`),
	}, func(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: "line 1"},
				&mcp.TextContent{Text: "line 2"},
			},
		}, nil
	})

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- server.Run(ctx, serverTransport)
	}()
	defer func() {
		cancel()
		<-serverDone
	}()

	client, err := newFromTransport(ctx, clientTransport)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	text, err := client.Call(context.Background(), "multi", json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "line 1\nline 2", text)
}

func TestClose(t *testing.T) {
	client := connect(t, mathtool.Toolbox())

	assert.NoError(t, client.Close())
}

func TestJoinText(t *testing.T) {
	tests := []struct {
		name   string
		result *mcp.CallToolResult
		want   string
	}{
		{
			name: "single text",
			result: &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "hello"}},
			},
			want: "hello",
		},
		{
			name: "multiple text",
			result: &mcp.CallToolResult{
				Content: []mcp.Content{
					&mcp.TextContent{Text: "a"},
					&mcp.TextContent{Text: "b"},
				},
			},
			want: "a\nb",
		},
		{
			name:   "empty content",
			result: &mcp.CallToolResult{Content: []mcp.Content{}},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinText(tt.result))
		})
	}
}
