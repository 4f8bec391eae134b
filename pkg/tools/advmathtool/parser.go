package advmathtool

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/germanamz/relay/pkg/tools/mathtool"
)

type tokKind int

const (
	tokNumber tokKind = iota
	tokIdent
	tokOp // single-rune operator or parenthesis
)

type token struct {
	kind tokKind
	num  float64
	text string
}

func scan(expr string) ([]token, error) {
	var toks []token

	s := strings.TrimSpace(expr)
	// "**" is accepted as an alias for the caret power operator.
	s = strings.ReplaceAll(s, "**", "^")

	for i := 0; i < len(s); {
		c := s[i]

		switch {
		case c == ' ' || c == '\t':
			i++
		case strings.ContainsRune("+-*/^(),", rune(c)):
			toks = append(toks, token{kind: tokOp, text: string(c)})
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.') {
				j++
			}
			n, err := strconv.ParseFloat(s[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", mathtool.ErrInvalidExpression, s[i:j])
			}
			toks = append(toks, token{kind: tokNumber, num: n, text: s[i:j]})
			i = j
		case isIdentStart(c):
			j := i
			for j < len(s) && isIdentPart(s[j]) {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: s[i:j]})
			i = j
		default:
			return nil, fmt.Errorf("%w: disallowed token %q", mathtool.ErrInvalidExpression, string(c))
		}
	}

	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty expression", mathtool.ErrInvalidExpression)
	}

	return toks, nil
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

type parser struct {
	eval *Evaluator
	toks []token
	pos  int
}

func (p *parser) done() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() string {
	if p.done() {
		return "end of expression"
	}
	return p.toks[p.pos].text
}

func (p *parser) acceptOp(text string) bool {
	if !p.done() && p.toks[p.pos].kind == tokOp && p.toks[p.pos].text == text {
		p.pos++
		return true
	}
	return false
}

// parseExpr handles + and -.
func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		switch {
		case p.acceptOp("+"):
			r, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += r
		case p.acceptOp("-"):
			r, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return v, nil
		}
	}
}

// parseTerm handles * and /.
func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}

	for {
		switch {
		case p.acceptOp("*"):
			r, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			v *= r
		case p.acceptOp("/"):
			r, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, mathtool.ErrDivisionByZero
			}
			v /= r
		default:
			return v, nil
		}
	}
}

// parseUnary handles leading signs.
func (p *parser) parseUnary() (float64, error) {
	if p.acceptOp("-") {
		v, err := p.parseUnary()
		return -v, err
	}
	if p.acceptOp("+") {
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower handles ^, right-associative.
func (p *parser) parsePower() (float64, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}

	if p.acceptOp("^") {
		exp, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	}

	return base, nil
}

func (p *parser) parsePrimary() (float64, error) {
	if p.acceptOp("(") {
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if !p.acceptOp(")") {
			return 0, fmt.Errorf("%w: missing closing parenthesis", mathtool.ErrInvalidExpression)
		}
		return v, nil
	}

	if !p.done() && p.toks[p.pos].kind == tokNumber {
		v := p.toks[p.pos].num
		p.pos++
		return v, nil
	}

	if !p.done() && p.toks[p.pos].kind == tokIdent {
		name := p.toks[p.pos].text
		p.pos++

		// A call applies an allowlisted function; a bare identifier must be
		// an allowlisted constant.
		if p.acceptOp("(") {
			arg, err := p.parseExpr()
			if err != nil {
				return 0, err
			}
			if !p.acceptOp(")") {
				return 0, fmt.Errorf("%w: missing closing parenthesis", mathtool.ErrInvalidExpression)
			}

			fn, okFn := p.eval.funcs[name]
			if !okFn {
				return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
			}

			return fn(arg)
		}

		c, okConst := p.eval.consts[name]
		if !okConst {
			return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
		}

		return c, nil
	}

	return 0, fmt.Errorf("%w: unexpected %q", mathtool.ErrInvalidExpression, p.peek())
}
