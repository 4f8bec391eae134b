package agents

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/germanamz/relay/pkg/classify"
	"github.com/germanamz/relay/pkg/telemetry"
	"github.com/germanamz/relay/pkg/tools/advmathtool"
	"github.com/germanamz/relay/pkg/tools/mathtool"
	"github.com/germanamz/relay/pkg/tools/toolbox"
	"github.com/germanamz/relay/pkg/tools/weathertool"
)

// routerGreeting is the router's direct reply for queries no rule matched:
// greetings, capability questions, and anything else it cannot route.
const routerGreeting = "Hello! I can help with weather lookups and math. " +
	"Ask me about the weather in a city, or give me something to calculate or convert."

// NewRouter creates the supervisor shell. It holds no tools of its own; every
// matched query is forwarded to the weather or calculator capability in the
// roster.
func NewRouter(roster Roster, rec telemetry.Recorder) *Shell {
	return NewShell("router", classify.RouterRules(), roster,
		func(_ context.Context, _ string) string { return routerGreeting }, rec)
}

// NewWeather creates the weather shell. It never delegates further: every
// query is answered from the canned weather table through the get_weather
// tool.
func NewWeather(rec telemetry.Recorder) *Shell {
	tb := weathertool.Toolbox()

	direct := func(ctx context.Context, query string) string {
		unit := weathertool.Celsius
		if strings.Contains(strings.ToLower(query), "fahrenheit") {
			unit = weathertool.Fahrenheit
		}

		return callTool(ctx, tb, "get_weather", map[string]any{
			"location": extractLocation(query),
			"unit":     unit,
		})
	}

	return NewShell("weather", nil, nil, direct, rec)
}

// NewCalculator creates the basic calculator shell. Classification is
// two-staged: the router already decided the query is math-like, and this
// shell re-scans it against the advanced trigger set to decide whether to
// forward once more to the advanced capability.
func NewCalculator(ev *advmathtool.Evaluator, roster Roster, rec telemetry.Recorder) *Shell {
	tb := mathtool.Toolbox()

	direct := func(ctx context.Context, query string) string {
		return calculatorReply(ctx, tb, query)
	}

	return NewShell("calculator", classify.AdvancedRules(ev.CustomNames()...), roster, direct, rec)
}

var (
	percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%\s*of\s*(\d+(?:\.\d+)?)`)
	convertPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([a-zA-Z]+)\s+to\s+([a-zA-Z]+)`)
)

// calculatorReply answers queries that stayed on the basic path: percentage
// phrases, unit conversions, and plain arithmetic. Tool failures become
// explanatory text here; they never leave the shell as errors.
func calculatorReply(ctx context.Context, tb *toolbox.ToolBox, query string) string {
	if m := percentPattern.FindStringSubmatch(query); m != nil {
		return callTool(ctx, tb, "calculate_percentage", map[string]any{
			"value":   jsonNumber(m[2]),
			"percent": jsonNumber(m[1]),
		})
	}

	if m := convertPattern.FindStringSubmatch(query); m != nil {
		return callTool(ctx, tb, "convert_units", map[string]any{
			"value":     jsonNumber(m[1]),
			"from_unit": m[2],
			"to_unit":   m[3],
		})
	}

	expr, _, err := extractExpression(query, mathtool.Evaluate)
	if err != nil {
		return fmt.Sprintf("I couldn't work that out: %v", err)
	}

	return callTool(ctx, tb, "calculate", map[string]any{"expression": expr})
}

// NewAdvancedCalculator creates the advanced math shell. It never delegates
// further; queries are evaluated against the evaluator's allowlist via the
// advanced_calculate tool.
func NewAdvancedCalculator(ev *advmathtool.Evaluator, rec telemetry.Recorder) *Shell {
	tb := ev.Toolbox()

	direct := func(ctx context.Context, query string) string {
		expr, _, err := extractExpression(query, ev.Evaluate)
		if err != nil {
			return fmt.Sprintf("I couldn't evaluate that expression: %v", err)
		}

		return callTool(ctx, tb, "advanced_calculate", map[string]any{"expression": expr})
	}

	return NewShell("advanced_calculator", nil, nil, direct, rec)
}
