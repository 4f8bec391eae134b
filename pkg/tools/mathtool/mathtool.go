// Package mathtool provides the basic calculator tools: restricted
// arithmetic expression evaluation, fixed-table unit conversion, and
// percentage calculations. All functions are pure; calling one twice with the
// same input yields the same output.
package mathtool

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/germanamz/relay/pkg/tools/toolbox"
)

// Toolbox returns a ToolBox with the calculate, convert_units, and
// calculate_percentage tools registered.
func Toolbox() *toolbox.ToolBox {
	tb := toolbox.New()
	tb.Register(calculateTool(), convertTool(), percentageTool())
	return tb
}

func calculateTool() toolbox.Tool {
	return toolbox.Tool{
		Name:        "calculate",
		Description: "Evaluate a basic arithmetic expression using + - * / and parentheses",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"expression":{"type":"string","description":"The arithmetic expression to evaluate"}},"required":["expression"]}`),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var params struct {
				Expression string `json:"expression"`
			}
			if err := json.Unmarshal(input, &params); err != nil {
				return "", fmt.Errorf("mathtool: invalid input: %w", err)
			}

			v, err := Evaluate(params.Expression)
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("%s = %s", params.Expression, FormatNumber(v)), nil
		},
	}
}

func convertTool() toolbox.Tool {
	return toolbox.Tool{
		Name:        "convert_units",
		Description: "Convert a value between units. Supported pairs: " + strings.Join(SupportedConversions(), ", "),
		InputSchema: json.RawMessage(`{"type":"object","properties":{"value":{"type":"number"},"from_unit":{"type":"string"},"to_unit":{"type":"string"}},"required":["value","from_unit","to_unit"]}`),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var params struct {
				Value    float64 `json:"value"`
				FromUnit string  `json:"from_unit"`
				ToUnit   string  `json:"to_unit"`
			}
			if err := json.Unmarshal(input, &params); err != nil {
				return "", fmt.Errorf("mathtool: invalid input: %w", err)
			}

			v, err := Convert(params.Value, params.FromUnit, params.ToUnit)
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("%s %s = %s %s",
				FormatNumber(params.Value), params.FromUnit,
				FormatNumber(v), params.ToUnit), nil
		},
	}
}

func percentageTool() toolbox.Tool {
	return toolbox.Tool{
		Name:        "calculate_percentage",
		Description: "Percentage calculations: of, increase, decrease, what_percent",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"value":{"type":"number"},"percent":{"type":"number"},"operation":{"type":"string","enum":["of","increase","decrease","what_percent"]}},"required":["value","percent"]}`),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var params struct {
				Value     float64 `json:"value"`
				Percent   float64 `json:"percent"`
				Operation string  `json:"operation"`
			}
			if err := json.Unmarshal(input, &params); err != nil {
				return "", fmt.Errorf("mathtool: invalid input: %w", err)
			}

			v, err := PercentageOp(params.Value, params.Percent, params.Operation)
			if err != nil {
				return "", err
			}

			op := params.Operation
			if op == "" {
				op = "of"
			}

			return fmt.Sprintf("%s%% %s %s = %s",
				FormatNumber(params.Percent), op,
				FormatNumber(params.Value), FormatNumber(v)), nil
		},
	}
}

// FormatNumber renders a float without a trailing ".0" when the value is
// integral, and with up to 10 significant decimals otherwise.
func FormatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', 10, 64)
}
