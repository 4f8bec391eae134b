package mathtool

import (
	"errors"
	"fmt"
)

// ErrUnknownPercentageOp is returned when the percentage operation name is
// not one of the supported forms.
var ErrUnknownPercentageOp = errors.New("mathtool: unknown percentage operation")

// Percentage returns percent% of value.
func Percentage(value, percent float64) float64 {
	return value * percent / 100
}

// PercentageOp performs one of the percentage calculation forms:
//
//	"of"           percent% of value
//	"increase"     value raised by percent%
//	"decrease"     value lowered by percent%
//	"what_percent" what percent `percent` is of `value`
func PercentageOp(value, percent float64, op string) (float64, error) {
	switch op {
	case "", "of":
		return Percentage(value, percent), nil
	case "increase":
		return value * (1 + percent/100), nil
	case "decrease":
		return value * (1 - percent/100), nil
	case "what_percent":
		if value == 0 {
			return 0, ErrDivisionByZero
		}
		return percent / value * 100, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPercentageOp, op)
	}
}
