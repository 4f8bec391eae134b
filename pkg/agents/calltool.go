package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/germanamz/relay/pkg/tools/toolbox"
)

// callTool invokes a named tool with the given arguments and renders the
// outcome as reply text. Error results are wrapped in an explanatory
// sentence, so a tool failure reads like an answer rather than a fault.
func callTool(ctx context.Context, tb *toolbox.ToolBox, name string, args map[string]any) string {
	payload, err := json.Marshal(args)
	if err != nil {
		return apology
	}

	result := tb.Call(ctx, toolbox.Call{Name: name, Arguments: string(payload)})
	if result.IsError {
		return fmt.Sprintf("I ran into a problem answering that: %s", result.Content)
	}

	return result.Content
}

// jsonNumber converts a numeric literal captured from query text into a
// value that marshals as a JSON number.
func jsonNumber(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
