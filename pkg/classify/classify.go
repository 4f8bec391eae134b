// Package classify implements the deterministic keyword-rule classifier that
// decides whether a query is answered locally or delegated to a downstream
// capability. Matching is a raw case-insensitive substring scan over an
// ordered rule table: the first rule with any matching trigger wins, so rule
// order encodes priority. There is no tokenization: a trigger embedded in a
// longer word still matches (e.g. "cost" contains the trigger "cos"). This is
// a known false-positive risk kept on purpose; expected routing outcomes in
// recorded traces assume exactly this matching rule.
package classify

import "strings"

// Capability names a downstream specialist an agent can delegate to.
type Capability string

const (
	// Direct means no capability matched; the agent answers locally.
	Direct Capability = ""

	Weather            Capability = "weather"
	Calculator         Capability = "calculator"
	AdvancedCalculator Capability = "advanced_calculator"
)

// String returns the capability name, or "direct" for the zero value.
func (c Capability) String() string {
	if c == Direct {
		return "direct"
	}
	return string(c)
}

// Rule associates a capability with the trigger substrings that select it.
// Triggers are matched case-insensitively anywhere in the query.
type Rule struct {
	Capability Capability
	Triggers   []string
}

// Decision is the outcome of classifying one query. Capability is Direct when
// the agent should answer locally; otherwise Query carries the text to
// forward downstream.
type Decision struct {
	Capability Capability
	Query      string
}

// Delegate reports whether the decision forwards to a downstream capability.
func (d Decision) Delegate() bool { return d.Capability != Direct }

// Classify scans rules in order and returns the first rule whose any trigger
// occurs in the case-folded query. An empty query or a query matching no
// trigger yields a Direct decision. Classification never fails: malformed
// input is simply unmatched input.
func Classify(query string, rules []Rule) Decision {
	folded := strings.ToLower(query)
	if folded == "" {
		return Decision{Capability: Direct, Query: query}
	}

	for _, r := range rules {
		for _, t := range r.Triggers {
			if t == "" {
				continue
			}
			if strings.Contains(folded, strings.ToLower(t)) {
				return Decision{Capability: r.Capability, Query: query}
			}
		}
	}

	return Decision{Capability: Direct, Query: query}
}

// RouterRules is the router's coarse rule table. Weather is listed before
// calculator: when a query has triggers for both, the earlier rule wins.
func RouterRules() []Rule {
	return []Rule{
		{
			Capability: Weather,
			Triggers: []string{
				"weather", "temperature", "forecast", "rain", "sunny",
				"climate", "humidity", "wind",
			},
		},
		{
			Capability: Calculator,
			Triggers: []string{
				"calculate", "compute", "math", "convert", "percentage",
				"percent", "sqrt", "sum", "add", "multiply", "chimichanga",
				"+", "-", "*", "/",
			},
		},
	}
}

// AdvancedRules is the calculator's second-stage rule table: it re-scans a
// query already routed to the calculator to decide whether to forward to the
// advanced capability. Extra names (registered custom operations) are
// appended to the trigger list.
//
// The constants "pi" and "e" are triggers too, and substring matching means
// "e" fires on most worded queries ("Calculate ..."). Bare arithmetic such
// as "25 * 4 + 10" contains no trigger letters and stays on the basic path;
// anything forwarded by a worded false positive is still evaluated correctly
// because the advanced evaluator accepts plain arithmetic.
func AdvancedRules(extra ...string) []Rule {
	triggers := []string{
		"sqrt", "sin", "cos", "tan", "log", "exp", "factorial", "pi", "e",
	}
	triggers = append(triggers, extra...)

	return []Rule{
		{Capability: AdvancedCalculator, Triggers: triggers},
	}
}
