package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentDayNightCycle(t *testing.T) {
	env := NewEnvironmentSystem(1, 0.5, WeatherClear)
	assert.False(t, env.IsNight())

	for i := 0; i < 59; i++ {
		env.Update(1)
	}
	assert.False(t, env.IsNight())
	env.Update(1)
	assert.True(t, env.IsNight())

	// pause keeps the clock
	env.Update(0)
	assert.True(t, env.IsNight())

	for i := 0; i < 30; i++ {
		env.Update(1)
	}
	assert.False(t, env.IsNight(), "a new day starts after 90 ticks")

	env.Update(60)
	assert.True(t, env.IsNight())
	env.Reset()
	assert.False(t, env.IsNight())
}

func TestEnvironmentWithoutNight(t *testing.T) {
	env := NewEnvironmentSystem(1, 0, WeatherRain)
	for i := 0; i < 500; i++ {
		env.Update(1)
		require.False(t, env.IsNight())
	}
	assert.Zero(t, env.Darkness())
	assert.True(t, env.IsRaining())
}

func TestWeather(t *testing.T) {
	tests := []struct {
		in   string
		want Weather
		mult float64
	}{
		{"", WeatherClear, 1},
		{"clear", WeatherClear, 1},
		{"Rain", WeatherRain, 0.85},
		{"storm", WeatherStorm, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, err := ParseWeather(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, w)
			assert.Equal(t, tt.mult, w.Multiplier())
		})
	}
	_, err := ParseWeather("hail")
	assert.Error(t, err)

	env := NewEnvironmentSystem(10, 10, WeatherClear)
	assert.Equal(t, 1.0, env.WeatherMultiplier())
	env.SetWeather(WeatherStorm)
	assert.Equal(t, 0.7, env.WeatherMultiplier())
	assert.Equal(t, "storm", env.Weather().String())
	assert.Equal(t, WeatherClear, env.Weather().Next())
	assert.Equal(t, WeatherRain, WeatherClear.Next())
}

func TestDarknessFades(t *testing.T) {
	env := NewEnvironmentSystem(1, 1, WeatherClear)
	env.Update(60)
	assert.Zero(t, env.Darkness())
	env.Update(30)
	assert.Equal(t, 1.0, env.Darkness())
	env.Update(27)
	assert.InDelta(t, 0.2, env.Darkness(), 1e-9)
}
