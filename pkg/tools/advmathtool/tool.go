package advmathtool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/germanamz/relay/pkg/tools/mathtool"
	"github.com/germanamz/relay/pkg/tools/toolbox"
)

// Toolbox returns a ToolBox exposing the evaluator as the advanced_calculate
// tool.
func (e *Evaluator) Toolbox() *toolbox.ToolBox {
	tb := toolbox.New()
	tb.Register(toolbox.Tool{
		Name:        "advanced_calculate",
		Description: "Evaluate an advanced math expression: sqrt, trig, log, exp, factorial, constants pi/e/tau, and registered custom operations",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"expression":{"type":"string","description":"The expression to evaluate"}},"required":["expression"]}`),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var params struct {
				Expression string `json:"expression"`
			}
			if err := json.Unmarshal(input, &params); err != nil {
				return "", fmt.Errorf("advmathtool: invalid input: %w", err)
			}

			v, err := e.Evaluate(params.Expression)
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("%s = %s", params.Expression, mathtool.FormatNumber(v)), nil
		},
	})

	return tb
}
