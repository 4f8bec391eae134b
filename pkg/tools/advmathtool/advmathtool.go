// Package advmathtool evaluates advanced math expressions against an
// explicit symbol allowlist. The grammar covers numbers, the operators
// + - * / ^ and parentheses, named constants, and unary function calls. Any
// identifier outside the allowlist is rejected; the safety of the evaluator
// depends on that list being closed, so there is no fallback to a general
// expression engine.
package advmathtool

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/germanamz/relay/pkg/tools/mathtool"
)

// ErrUnknownOperation is returned for any identifier not in the allowlist.
var ErrUnknownOperation = errors.New("advmathtool: unknown operation")

// ErrDomainError is returned when a function is applied outside its domain,
// such as the square root of a negative number.
var ErrDomainError = errors.New("advmathtool: domain error")

// unary is an allowlisted function of one argument.
type unary func(float64) (float64, error)

// Evaluator holds the symbol allowlist: unary functions, constants, and any
// registered custom operations.
type Evaluator struct {
	funcs  map[string]unary
	consts map[string]float64
	custom []string
}

// New creates an Evaluator with the built-in allowlist and the default custom
// operation chimichanga (x times 3.75).
func New() *Evaluator {
	e := &Evaluator{
		funcs: map[string]unary{
			"sqrt": func(x float64) (float64, error) {
				if x < 0 {
					return 0, fmt.Errorf("%w: sqrt of negative %s", ErrDomainError, mathtool.FormatNumber(x))
				}
				return math.Sqrt(x), nil
			},
			"cbrt":      ok(math.Cbrt),
			"sin":       ok(math.Sin),
			"cos":       ok(math.Cos),
			"tan":       ok(math.Tan),
			"log":       positiveOnly("log", math.Log),
			"log10":     positiveOnly("log10", math.Log10),
			"exp":       ok(math.Exp),
			"abs":       ok(math.Abs),
			"floor":     ok(math.Floor),
			"ceil":      ok(math.Ceil),
			"factorial": factorial,
		},
		consts: map[string]float64{
			"pi":  math.Pi,
			"e":   math.E,
			"tau": 2 * math.Pi,
		},
	}

	e.Register("chimichanga", func(x float64) float64 { return x * 3.75 })

	return e
}

// Register adds a custom named operation to the allowlist. Registered names
// also become classifier triggers via CustomNames.
func (e *Evaluator) Register(name string, fn func(float64) float64) {
	e.funcs[name] = ok(fn)
	e.custom = append(e.custom, name)
	sort.Strings(e.custom)
}

// CustomNames returns the registered custom operation names in sorted order.
func (e *Evaluator) CustomNames() []string {
	names := make([]string, len(e.custom))
	copy(names, e.custom)
	return names
}

// Evaluate computes the expression against the allowlist. It fails with
// ErrUnknownOperation on identifiers outside the allowlist, ErrDomainError on
// out-of-domain arguments, mathtool.ErrInvalidExpression on malformed syntax,
// and mathtool.ErrDivisionByZero on zero denominators.
func (e *Evaluator) Evaluate(expr string) (float64, error) {
	toks, err := scan(expr)
	if err != nil {
		return 0, err
	}

	p := &parser{eval: e, toks: toks}

	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if !p.done() {
		return 0, fmt.Errorf("%w: unexpected %q", mathtool.ErrInvalidExpression, p.peek())
	}

	return v, nil
}

// Evaluate computes expr with a fresh default Evaluator.
func Evaluate(expr string) (float64, error) {
	return New().Evaluate(expr)
}

func ok(fn func(float64) float64) unary {
	return func(x float64) (float64, error) { return fn(x), nil }
}

func positiveOnly(name string, fn func(float64) float64) unary {
	return func(x float64) (float64, error) {
		if x <= 0 {
			return 0, fmt.Errorf("%w: %s of non-positive %s", ErrDomainError, name, mathtool.FormatNumber(x))
		}
		return fn(x), nil
	}
}

func factorial(x float64) (float64, error) {
	if x < 0 || x != math.Trunc(x) {
		return 0, fmt.Errorf("%w: factorial requires a non-negative integer, got %s", ErrDomainError, mathtool.FormatNumber(x))
	}
	if x > 170 {
		return 0, fmt.Errorf("%w: factorial of %s overflows", ErrDomainError, mathtool.FormatNumber(x))
	}

	v := 1.0
	for i := 2.0; i <= x; i++ {
		v *= i
	}

	return v, nil
}
