// Package mcpclient connects to an external MCP server process and mirrors
// its tools as [toolbox.Tool] values, so a remote toolset can be called the
// same way as a local one.
package mcpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/germanamz/relay/pkg/tools/toolbox"
)

// Client is a connected session with an MCP server.
type Client struct {
	client  *mcp.Client
	session *mcp.ClientSession
}

// New spawns the given command as an MCP server over stdio and connects to
// it. The SDK performs the initialization handshake during Connect.
func New(ctx context.Context, command string, args ...string) (*Client, error) {
	transport := &mcp.CommandTransport{
		Command: exec.Command(command, args...), //nolint:gosec // command is caller-provided
	}

	return newFromTransport(ctx, transport)
}

func newFromTransport(ctx context.Context, transport mcp.Transport) (*Client, error) {
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "relay",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("mcpclient: connect: %w", err)
	}

	return &Client{client: client, session: session}, nil
}

// Tools fetches the server's tool list. Each returned Tool carries a Handler
// that proxies back through Call, so the result can be registered into a
// local ToolBox transparently.
func (c *Client) Tools(ctx context.Context) ([]toolbox.Tool, error) {
	result, err := c.session.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("mcpclient: list tools: %w", err)
	}

	tools := make([]toolbox.Tool, 0, len(result.Tools))
	for _, sdkTool := range result.Tools {
		tools = append(tools, c.proxyTool(sdkTool))
	}

	return tools, nil
}

// Toolbox fetches the server's tools and registers them into a fresh ToolBox.
func (c *Client) Toolbox(ctx context.Context) (*toolbox.ToolBox, error) {
	tools, err := c.Tools(ctx)
	if err != nil {
		return nil, err
	}

	tb := toolbox.New()
	for _, t := range tools {
		tb.Register(t)
	}

	return tb, nil
}

// Call invokes a named tool on the server. A tool-level error (IsError in
// the MCP result) is returned as a Go error wrapping the tool's text output.
func (c *Client) Call(ctx context.Context, name string, arguments json.RawMessage) (string, error) {
	var args map[string]any
	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &args); err != nil {
			return "", fmt.Errorf("mcpclient: unmarshal arguments: %w", err)
		}
	}

	result, err := c.session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return "", fmt.Errorf("mcpclient: call tool: %w", err)
	}

	text := joinText(result)

	if result.IsError {
		return "", fmt.Errorf("mcpclient: tool error: %s", text)
	}

	return text, nil
}

// Close terminates the session. For command transports the SDK closes the
// child's stdin and escalates through SIGTERM/SIGKILL on timeout.
func (c *Client) Close() error {
	return c.session.Close()
}

func (c *Client) proxyTool(sdkTool *mcp.Tool) toolbox.Tool {
	schemaBytes, _ := json.Marshal(sdkTool.InputSchema)

	name := sdkTool.Name

	return toolbox.Tool{
		Name:        sdkTool.Name,
		Description: sdkTool.Description,
		InputSchema: schemaBytes,
		Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
			return c.Call(ctx, name, input)
		},
	}
}

// joinText concatenates all TextContent items from a tool result.
func joinText(result *mcp.CallToolResult) string {
	var texts []string
	for _, item := range result.Content {
		if tc, ok := item.(*mcp.TextContent); ok {
			texts = append(texts, tc.Text)
		}
	}

	return strings.Join(texts, "\n")
}
