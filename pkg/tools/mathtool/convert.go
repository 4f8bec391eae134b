package mathtool

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsupportedUnit is returned when a unit pair has no entry in the
// conversion table.
var ErrUnsupportedUnit = errors.New("mathtool: unsupported unit conversion")

// conversion maps an input value to an output value. Most conversions are a
// plain factor; temperatures need the affine form.
type conversion struct {
	factor float64
	offset float64
}

func (c conversion) apply(v float64) float64 { return v*c.factor + c.offset }

// conversions is the fixed unit-pair table. Keys are "from->to" with both
// units lowercased.
var conversions = map[string]conversion{
	// Length
	"km->miles":  {factor: 0.621371},
	"miles->km":  {factor: 1.60934},
	"m->ft":      {factor: 3.28084},
	"ft->m":      {factor: 0.3048},
	"cm->inches": {factor: 0.393701},
	"inches->cm": {factor: 2.54},
	"m->cm":      {factor: 100},
	"cm->m":      {factor: 0.01},

	// Temperature
	"celsius->fahrenheit": {factor: 9.0 / 5.0, offset: 32},
	"fahrenheit->celsius": {factor: 5.0 / 9.0, offset: -32.0 * 5.0 / 9.0},
	"celsius->kelvin":     {factor: 1, offset: 273.15},
	"kelvin->celsius":     {factor: 1, offset: -273.15},
	"fahrenheit->kelvin":  {factor: 5.0 / 9.0, offset: 273.15 - 32.0*5.0/9.0},
	"kelvin->fahrenheit":  {factor: 9.0 / 5.0, offset: 32 - 273.15*9.0/5.0},

	// Weight
	"kg->lbs": {factor: 2.20462},
	"lbs->kg": {factor: 0.453592},
	"g->oz":   {factor: 0.035274},
	"oz->g":   {factor: 28.3495},

	// Area
	"sqm->sqft": {factor: 10.7639},
	"sqft->sqm": {factor: 0.092903},
}

// Convert converts value between two units using the fixed table. Unit names
// are case-insensitive. It fails with ErrUnsupportedUnit when the pair is not
// in the table.
func Convert(value float64, from, to string) (float64, error) {
	key := normalizeUnit(from) + "->" + normalizeUnit(to)

	c, ok := conversions[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q to %q", ErrUnsupportedUnit, from, to)
	}

	return c.apply(value), nil
}

// SupportedConversions lists the unit pairs the table covers, in sorted
// order, for error replies and the tool description.
func SupportedConversions() []string {
	pairs := make([]string, 0, len(conversions))
	for k := range conversions {
		pairs = append(pairs, strings.Replace(k, "->", " -> ", 1))
	}
	sort.Strings(pairs)
	return pairs
}

func normalizeUnit(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}
