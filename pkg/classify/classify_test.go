package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyNoTriggerIsDirect(t *testing.T) {
	d := Classify("hello there, who are you?", RouterRules())
	assert.Equal(t, Direct, d.Capability)
	assert.False(t, d.Delegate())
}

func TestClassifyEmptyQueryIsDirect(t *testing.T) {
	d := Classify("", RouterRules())
	assert.Equal(t, Direct, d.Capability)
}

func TestClassifyWeatherTrigger(t *testing.T) {
	d := Classify("What's the weather in Tokyo?", RouterRules())
	assert.Equal(t, Weather, d.Capability)
	assert.Equal(t, "What's the weather in Tokyo?", d.Query)
}

func TestClassifyCalculatorTrigger(t *testing.T) {
	d := Classify("Please calculate 25 * 4 + 10", RouterRules())
	assert.Equal(t, Calculator, d.Capability)
}

func TestClassifyCaseFolds(t *testing.T) {
	d := Classify("TEMPERATURE in berlin", RouterRules())
	assert.Equal(t, Weather, d.Capability)
}

func TestClassifyOrderWins(t *testing.T) {
	// Both capabilities have a matching trigger; the earlier rule wins even
	// though the calculator trigger is the longer match.
	rules := []Rule{
		{Capability: Weather, Triggers: []string{"sun"}},
		{Capability: Calculator, Triggers: []string{"sunny percentage"}},
	}

	d := Classify("sunny percentage of the day", rules)
	assert.Equal(t, Weather, d.Capability)
}

func TestClassifyWeatherBeatsCalculator(t *testing.T) {
	// Weather is listed first in the router table, so a query carrying
	// triggers for both goes to weather.
	d := Classify("calculate the average temperature", RouterRules())
	assert.Equal(t, Weather, d.Capability)
}

func TestClassifySubstringFalsePositive(t *testing.T) {
	// "cost" contains "cos". The raw substring rule fires; this behavior is
	// pinned deliberately.
	d := Classify("what did the cost come to", AdvancedRules())
	assert.Equal(t, AdvancedCalculator, d.Capability)
}

func TestAdvancedRulesWordedQueryForwards(t *testing.T) {
	// "Calculate" contains the "e" trigger, so worded calculator queries
	// forward to the advanced stage.
	d := Classify("Calculate 25 * 4 + 10", AdvancedRules())
	assert.Equal(t, AdvancedCalculator, d.Capability)
}

func TestAdvancedRulesBareArithmeticStaysBasic(t *testing.T) {
	d := Classify("25 * 4 + 10", AdvancedRules())
	assert.Equal(t, Direct, d.Capability)
}

func TestAdvancedRulesCustomOperation(t *testing.T) {
	d := Classify("chimichanga(7)", AdvancedRules("chimichanga"))
	assert.Equal(t, AdvancedCalculator, d.Capability)
}

func TestClassifySkipsEmptyTrigger(t *testing.T) {
	rules := []Rule{{Capability: Weather, Triggers: []string{""}}}

	d := Classify("anything", rules)
	assert.Equal(t, Direct, d.Capability)
}

func TestCapabilityString(t *testing.T) {
	assert.Equal(t, "direct", Direct.String())
	assert.Equal(t, "advanced_calculator", AdvancedCalculator.String())
}
