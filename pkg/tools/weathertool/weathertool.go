// Package weathertool provides canned weather readings. There is no real
// weather source: known cities come from a fixed table, and unknown locations
// get a synthesized reading derived from a hash of the location name, so the
// same query always produces the same answer.
package weathertool

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/germanamz/relay/pkg/tools/toolbox"
)

// Unit selects the temperature scale of a reading.
type Unit string

const (
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"
)

// Reading is one weather observation.
type Reading struct {
	Location    string
	TempC       int
	Description string
	Humidity    int // percent
	WindKPH     int
	Synthesized bool
}

// Temp returns the temperature in the requested unit.
func (r Reading) Temp(u Unit) int {
	if u == Fahrenheit {
		return r.TempC*9/5 + 32
	}
	return r.TempC
}

// String renders the reading the way agents report it.
func (r Reading) String() string {
	return fmt.Sprintf("The weather in %s is currently %d°C with %s. Humidity is at %d%% and wind speeds are %d km/h.",
		r.Location, r.TempC, strings.ToLower(r.Description), r.Humidity, r.WindKPH)
}

// canned is the fixed city table.
var canned = map[string]Reading{
	"london":   {TempC: 12, Description: "Partly Cloudy", Humidity: 78, WindKPH: 15},
	"new york": {TempC: 8, Description: "Sunny", Humidity: 55, WindKPH: 12},
	"tokyo":    {TempC: 18, Description: "Clear Sky", Humidity: 62, WindKPH: 8},
	"paris":    {TempC: 14, Description: "Overcast", Humidity: 80, WindKPH: 10},
	"sydney":   {TempC: 25, Description: "Sunny", Humidity: 45, WindKPH: 18},
	"berlin":   {TempC: 6, Description: "Light Rain", Humidity: 85, WindKPH: 20},
	"madrid":   {TempC: 22, Description: "Clear", Humidity: 40, WindKPH: 14},
	"dubai":    {TempC: 35, Description: "Hot and Sunny", Humidity: 30, WindKPH: 12},
}

// conditions are the descriptions used for synthesized readings.
var conditions = []string{"Sunny", "Partly Cloudy", "Cloudy", "Light Rain", "Clear"}

// Report returns the reading for a location. Unknown locations never fail;
// they get a plausible synthesized reading instead.
func Report(location string) Reading {
	key := strings.ToLower(strings.TrimSpace(location))

	if r, ok := canned[key]; ok {
		r.Location = title(key)
		return r
	}

	return synthesize(key)
}

// synthesize derives a stable pseudo-reading from the location name.
func synthesize(key string) Reading {
	h := fnv.New32a()
	h.Write([]byte(key))
	n := h.Sum32()

	return Reading{
		Location:    title(key),
		TempC:       5 + int(n%26),
		Description: conditions[int(n/7)%len(conditions)],
		Humidity:    30 + int(n/11%61),
		WindKPH:     5 + int(n/13%21),
		Synthesized: true,
	}
}

// title uppercases the first letter of each word, matching how the canned
// table renders city names.
func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Toolbox returns a ToolBox exposing the get_weather tool.
func Toolbox() *toolbox.ToolBox {
	tb := toolbox.New()
	tb.Register(toolbox.Tool{
		Name:        "get_weather",
		Description: "Get the current weather reading for a location",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"location":{"type":"string"},"unit":{"type":"string","enum":["celsius","fahrenheit"]}},"required":["location"]}`),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var params struct {
				Location string `json:"location"`
				Unit     Unit   `json:"unit"`
			}
			if err := json.Unmarshal(input, &params); err != nil {
				return "", fmt.Errorf("weathertool: invalid input: %w", err)
			}

			r := Report(params.Location)

			if params.Unit == Fahrenheit {
				return fmt.Sprintf("The weather in %s is currently %d°F with %s. Humidity is at %d%% and wind speeds are %d km/h.",
					r.Location, r.Temp(Fahrenheit), strings.ToLower(r.Description), r.Humidity, r.WindKPH), nil
			}

			return r.String(), nil
		},
	})

	return tb
}
