package agents

import (
	"strings"
)

// extractExpression pulls an evaluatable expression out of free text by
// trying progressively shorter word-boundary suffixes of the query against
// eval. "Calculate 25 * 4 + 10" fails on the full text but succeeds once the
// leading word is dropped. The first suffix that evaluates wins; when none
// does, the error from evaluating the full query is returned so the reply
// can explain what was wrong with it.
func extractExpression(query string, eval func(string) (float64, error)) (expr string, value float64, err error) {
	trimmed := strings.TrimRight(strings.TrimSpace(query), "?!.")

	var firstErr error
	for _, candidate := range suffixes(trimmed) {
		v, evalErr := eval(candidate)
		if evalErr == nil {
			return candidate, v, nil
		}
		if firstErr == nil {
			firstErr = evalErr
		}
	}

	return trimmed, 0, firstErr
}

// suffixes returns the query and each suffix starting at a word boundary.
func suffixes(s string) []string {
	out := []string{s}
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			rest := strings.TrimSpace(s[i+1:])
			if rest != "" {
				out = append(out, rest)
			}
		}
	}
	return out
}

// extractLocation finds the location a weather query asks about: the text
// after the last " in ", with trailing punctuation removed. Queries without
// an "in" clause fall back to the whole query, which the weather table
// resolves to a synthesized reading.
func extractLocation(query string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(query), "?!.")

	folded := strings.ToLower(trimmed)
	if idx := strings.LastIndex(folded, " in "); idx >= 0 {
		loc := strings.TrimSpace(trimmed[idx+len(" in "):])
		if loc != "" {
			return loc
		}
	}

	return trimmed
}
