package toolbox

import (
	"context"
	"encoding/json"
)

// Handler executes a tool with the given JSON input and returns a text result.
type Handler func(ctx context.Context, input json.RawMessage) (string, error)

// Tool represents an executable tool with a name, description, JSON Schema, and handler.
type Tool struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     Handler
}

// Call identifies one invocation of a named tool with JSON arguments.
type Call struct {
	ID        string
	Name      string
	Arguments string
}

// Result is the outcome of a Call. IsError marks tool-level failures; Content
// then carries the error text instead of a computed value.
type Result struct {
	CallID  string
	Content string
	IsError bool
}
