// Package toolbox holds the executable tools an agent can call while
// answering a query. Tools are pure request/response functions: JSON input
// in, text out. A ToolBox keeps them by name and converts handler errors into
// error-flagged Results so callers never see a tool failure as a Go error.
package toolbox

import (
	"context"
	"encoding/json"
	"fmt"
)

// ToolBox orchestrates a collection of tools. It allows registering,
// retrieving, listing, and calling tools.
type ToolBox struct {
	tools map[string]Tool
}

// New creates a new ToolBox ready for use.
func New() *ToolBox {
	return &ToolBox{
		tools: make(map[string]Tool),
	}
}

// Register adds one or more tools to the ToolBox. If a tool with the same name
// already exists, it is replaced.
func (tb *ToolBox) Register(tools ...Tool) {
	for _, t := range tools {
		tb.tools[t.Name] = t
	}
}

// Get returns a tool by name and a boolean indicating whether it was found.
func (tb *ToolBox) Get(name string) (Tool, bool) {
	t, ok := tb.tools[name]
	return t, ok
}

// Merge registers all tools from another ToolBox into this one. If a tool
// with the same name already exists, it is replaced.
func (tb *ToolBox) Merge(other *ToolBox) {
	for _, t := range other.tools {
		tb.tools[t.Name] = t
	}
}

// Tools returns all registered tools as a slice.
func (tb *ToolBox) Tools() []Tool {
	result := make([]Tool, 0, len(tb.tools))
	for _, t := range tb.tools {
		result = append(result, t)
	}
	return result
}

// Call executes a tool call and returns a Result. If the tool is not found or
// the handler returns an error, the Result has IsError set to true.
func (tb *ToolBox) Call(ctx context.Context, c Call) Result {
	t, ok := tb.tools[c.Name]
	if !ok {
		return Result{
			CallID:  c.ID,
			Content: fmt.Sprintf("tool not found: %s", c.Name),
			IsError: true,
		}
	}

	result, err := t.Handler(ctx, json.RawMessage(c.Arguments))
	if err != nil {
		return Result{
			CallID:  c.ID,
			Content: err.Error(),
			IsError: true,
		}
	}

	return Result{
		CallID:  c.ID,
		Content: result,
	}
}
