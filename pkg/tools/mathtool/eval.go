package mathtool

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidExpression is returned when an expression contains tokens outside
// the restricted arithmetic grammar or is syntactically malformed.
var ErrInvalidExpression = errors.New("mathtool: invalid expression")

// ErrDivisionByZero is returned when a division has a zero denominator.
var ErrDivisionByZero = errors.New("mathtool: division by zero")

// Evaluate computes a restricted arithmetic expression: numeric literals and
// the operators + - * / ( ) only. Anything else fails with
// ErrInvalidExpression. The grammar is evaluated by a small recursive-descent
// parser; there is deliberately no general-purpose expression engine behind
// it.
func Evaluate(expr string) (float64, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return 0, err
	}

	p := &parser{toks: toks}

	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if !p.done() {
		return 0, fmt.Errorf("%w: unexpected %q", ErrInvalidExpression, p.peek())
	}

	return v, nil
}

type token struct {
	kind rune // 'n' for number, or the operator/paren rune itself
	num  float64
	text string
}

func tokenize(expr string) ([]token, error) {
	var toks []token

	s := strings.TrimSpace(expr)
	for i := 0; i < len(s); {
		c := s[i]

		switch {
		case c == ' ' || c == '\t':
			i++
		case strings.ContainsRune("+-*/()", rune(c)):
			toks = append(toks, token{kind: rune(c), text: string(c)})
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.') {
				j++
			}
			n, err := strconv.ParseFloat(s[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", ErrInvalidExpression, s[i:j])
			}
			toks = append(toks, token{kind: 'n', num: n, text: s[i:j]})
			i = j
		default:
			return nil, fmt.Errorf("%w: disallowed token %q", ErrInvalidExpression, string(c))
		}
	}

	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}

	return toks, nil
}

type parser struct {
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

func (p *parser) accept(kind rune) bool {
	if !p.done() && p.toks[p.pos].kind == kind {
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
		case p.accept('+'):
			r, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += r
		case p.accept('-'):
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
		case p.accept('*'):
			r, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			v *= r
		case p.accept('/'):
			r, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, ErrDivisionByZero
			}
			v /= r
		default:
			return v, nil
		}
	}
}

// parseUnary handles leading signs.
func (p *parser) parseUnary() (float64, error) {
	if p.accept('-') {
		v, err := p.parseUnary()
		return -v, err
	}
	if p.accept('+') {
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (float64, error) {
	if p.accept('(') {
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if !p.accept(')') {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrInvalidExpression)
		}
		return v, nil
	}

	if !p.done() && p.toks[p.pos].kind == 'n' {
		v := p.toks[p.pos].num
		p.pos++
		return v, nil
	}

	return 0, fmt.Errorf("%w: unexpected %q", ErrInvalidExpression, p.peek())
}
