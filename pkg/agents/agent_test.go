package agents

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanamz/relay/pkg/classify"
	"github.com/germanamz/relay/pkg/telemetry"
	"github.com/germanamz/relay/pkg/tools/advmathtool"
)

// capture is a Recorder that keeps every event for inspection.
type capture struct {
	mu     sync.Mutex
	events []telemetry.Event
}

func (c *capture) Record(e telemetry.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *capture) byAgent(name string) (telemetry.Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.events {
		if e.Agent == name {
			return e, true
		}
	}
	return telemetry.Event{}, false
}

// failing is an Agent whose downstream call always errors.
type failing struct{}

func (failing) Handle(context.Context, string) (string, error) {
	return "", errors.New("connection refused")
}

// newLocalSystem wires the four shells in-process, the way the engine does
// in local deployment mode.
func newLocalSystem(rec telemetry.Recorder) *Shell {
	ev := advmathtool.New()
	advanced := NewAdvancedCalculator(ev, rec)
	calculator := NewCalculator(ev, Roster{classify.AdvancedCalculator: advanced}, rec)
	weather := NewWeather(rec)

	return NewRouter(Roster{
		classify.Weather:    weather,
		classify.Calculator: calculator,
	}, rec)
}

func TestRouterDirectGreeting(t *testing.T) {
	router := newLocalSystem(nil)

	resp, err := router.Handle(context.Background(), "hello, who are you?")
	require.NoError(t, err)
	assert.Contains(t, resp, "weather")
	assert.Contains(t, resp, "math")
}

func TestRouterDelegatesWeather(t *testing.T) {
	router := newLocalSystem(nil)

	resp, err := router.Handle(context.Background(), "What's the weather in Tokyo?")
	require.NoError(t, err)
	assert.Contains(t, resp, "Tokyo")
	assert.Contains(t, resp, "18°C")
}

func TestRouterDelegatesWeatherFahrenheit(t *testing.T) {
	router := newLocalSystem(nil)

	resp, err := router.Handle(context.Background(), "weather in fahrenheit for london, in London")
	require.NoError(t, err)
	assert.Contains(t, resp, "°F")
}

func TestRouterTwoStageDelegation(t *testing.T) {
	router := newLocalSystem(nil)

	// "Calculate" carries the "e" trigger, so the calculator forwards this
	// to the advanced stage, which evaluates plain arithmetic fine.
	resp, err := router.Handle(context.Background(), "Calculate sqrt(144)")
	require.NoError(t, err)
	assert.Contains(t, resp, "sqrt(144) = 12")
}

func TestRouterChimichanga(t *testing.T) {
	router := newLocalSystem(nil)

	resp, err := router.Handle(context.Background(), "chimichanga(7)")
	require.NoError(t, err)
	assert.Contains(t, resp, "26.25")
}

func TestCalculatorBasicPathArithmetic(t *testing.T) {
	router := newLocalSystem(nil)

	// No letters at all: stage 1 routes on "*" and "+", stage 2 finds no
	// advanced trigger, so the basic evaluator answers.
	resp, err := router.Handle(context.Background(), "25 * 4 + 10")
	require.NoError(t, err)
	assert.Contains(t, resp, "110")
}

func TestCalculatorBasicPathPercent(t *testing.T) {
	ev := advmathtool.New()
	calculator := NewCalculator(ev, nil, nil)

	// "what is 15% of 200" contains no advanced trigger letters.
	resp, err := calculator.Handle(context.Background(), "what is 15% of 200")
	require.NoError(t, err)
	assert.Contains(t, resp, "= 30")
}

func TestCalculatorBasicPathConvert(t *testing.T) {
	ev := advmathtool.New()
	calculator := NewCalculator(ev, nil, nil)

	resp, err := calculator.Handle(context.Background(), "100 kg to lbs")
	require.NoError(t, err)
	assert.Contains(t, resp, "220.462")
}

func TestCalculatorUnsupportedUnitExplains(t *testing.T) {
	ev := advmathtool.New()
	calculator := NewCalculator(ev, nil, nil)

	resp, err := calculator.Handle(context.Background(), "100 kg to furlongs")
	require.NoError(t, err)
	assert.Contains(t, resp, "problem")
}

func TestAdvancedUnknownOperationExplains(t *testing.T) {
	ev := advmathtool.New()
	advanced := NewAdvancedCalculator(ev, nil)

	resp, err := advanced.Handle(context.Background(), "foo(1)")
	require.NoError(t, err)
	assert.Contains(t, resp, "couldn't evaluate")
}

func TestDelegationFailureIsApology(t *testing.T) {
	router := NewRouter(Roster{classify.Weather: failing{}}, nil)

	resp, err := router.Handle(context.Background(), "weather in Tokyo")
	require.NoError(t, err)
	assert.Contains(t, resp, "unable to complete")
}

func TestMissingRosterTargetIsApology(t *testing.T) {
	router := NewRouter(Roster{}, nil)

	resp, err := router.Handle(context.Background(), "weather in Tokyo")
	require.NoError(t, err)
	assert.Contains(t, resp, "unable to complete")
}

func TestTelemetryHopsLinked(t *testing.T) {
	rec := &capture{}
	router := newLocalSystem(rec)

	_, err := router.Handle(context.Background(), "What's the weather in Paris?")
	require.NoError(t, err)

	routerHop, ok := rec.byAgent("router")
	require.True(t, ok)
	weatherHop, ok := rec.byAgent("weather")
	require.True(t, ok)

	assert.Empty(t, routerHop.ParentID)
	assert.Equal(t, routerHop.ID, weatherHop.ParentID)
	assert.Equal(t, "What's the weather in Paris?", routerHop.Input)
	assert.Equal(t, weatherHop.Output, routerHop.Output)
}

func TestTelemetryTwoStageHopsLinked(t *testing.T) {
	rec := &capture{}
	router := newLocalSystem(rec)

	_, err := router.Handle(context.Background(), "Calculate sqrt(144)")
	require.NoError(t, err)

	routerHop, ok := rec.byAgent("router")
	require.True(t, ok)
	calcHop, ok := rec.byAgent("calculator")
	require.True(t, ok)
	advHop, ok := rec.byAgent("advanced_calculator")
	require.True(t, ok)

	assert.Equal(t, routerHop.ID, calcHop.ParentID)
	assert.Equal(t, calcHop.ID, advHop.ParentID)
}
