package weathertool

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportKnownCity(t *testing.T) {
	r := Report("Tokyo")

	assert.Equal(t, "Tokyo", r.Location)
	assert.Equal(t, 18, r.TempC)
	assert.Equal(t, "Clear Sky", r.Description)
	assert.False(t, r.Synthesized)
}

func TestReportNormalizesLocation(t *testing.T) {
	assert.Equal(t, Report("  NEW YORK  "), Report("new york"))
}

func TestReportUnknownLocationSynthesized(t *testing.T) {
	r := Report("Atlantis")

	assert.True(t, r.Synthesized)
	assert.Equal(t, "Atlantis", r.Location)
	assert.GreaterOrEqual(t, r.TempC, 5)
	assert.LessOrEqual(t, r.TempC, 30)
	assert.GreaterOrEqual(t, r.Humidity, 30)
	assert.LessOrEqual(t, r.Humidity, 90)
	assert.NotEmpty(t, r.Description)
}

func TestReportIdempotent(t *testing.T) {
	assert.Equal(t, Report("Atlantis"), Report("Atlantis"))
	assert.Equal(t, Report("london"), Report("london"))
}

func TestTempFahrenheit(t *testing.T) {
	r := Report("london") // 12C
	assert.Equal(t, 53, r.Temp(Fahrenheit))
	assert.Equal(t, 12, r.Temp(Celsius))
}

func TestToolbox(t *testing.T) {
	tb := Toolbox()

	tool, ok := tb.Get("get_weather")
	require.True(t, ok)

	result, err := tool.Handler(context.Background(), json.RawMessage(`{"location":"London"}`))
	require.NoError(t, err)
	assert.Contains(t, result, "London")
	assert.Contains(t, result, "12°C")

	result, err = tool.Handler(context.Background(), json.RawMessage(`{"location":"London","unit":"fahrenheit"}`))
	require.NoError(t, err)
	assert.Contains(t, result, "53°F")
}
