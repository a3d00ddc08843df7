// internal/system/environment.go
package system

import (
	"fmt"
	"strings"

	"go-road-defense/internal/config"
)

// Weather affects enemy movement speed.
type Weather int

const (
	WeatherClear Weather = iota
	WeatherRain
	WeatherStorm
)

func (w Weather) String() string {
	switch w {
	case WeatherRain:
		return "rain"
	case WeatherStorm:
		return "storm"
	default:
		return "clear"
	}
}

// ParseWeather maps a settings value to Weather.
func ParseWeather(s string) (Weather, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clear":
		return WeatherClear, nil
	case "rain":
		return WeatherRain, nil
	case "storm":
		return WeatherStorm, nil
	}
	return WeatherClear, fmt.Errorf("unknown weather %q", s)
}

// Next cycles clear, rain, storm.
func (w Weather) Next() Weather {
	return (w + 1) % (WeatherStorm + 1)
}

// Multiplier returns the enemy speed multiplier.
func (w Weather) Multiplier() float64 {
	switch w {
	case WeatherRain:
		return 0.85
	case WeatherStorm:
		return 0.7
	default:
		return 1
	}
}

// EnvironmentSystem ведёт цикл дня и ночи и погоду.
// The clock advances by the speed multiplier, so pause stops it.
type EnvironmentSystem struct {
	dayLength   float64 // ticks
	nightLength float64 // ticks
	clock       float64
	weather     Weather
}

// NewEnvironmentSystem takes day and night lengths in seconds. A zero night
// length disables night.
func NewEnvironmentSystem(daySeconds, nightSeconds float64, weather Weather) *EnvironmentSystem {
	return &EnvironmentSystem{
		dayLength:   config.SecondsToTicks(daySeconds),
		nightLength: config.SecondsToTicks(nightSeconds),
		weather:     weather,
	}
}

func (s *EnvironmentSystem) Update(speed float64) {
	cycle := s.dayLength + s.nightLength
	if cycle <= 0 || speed <= 0 {
		return
	}
	s.clock += speed
	for s.clock >= cycle {
		s.clock -= cycle
	}
}

// IsNight reports whether the cycle is in its night part.
func (s *EnvironmentSystem) IsNight() bool {
	return s.nightLength > 0 && s.clock >= s.dayLength
}

// WeatherMultiplier returns the current enemy speed multiplier.
func (s *EnvironmentSystem) WeatherMultiplier() float64 {
	return s.weather.Multiplier()
}

// IsRaining is consumed by rendering only.
func (s *EnvironmentSystem) IsRaining() bool {
	return s.weather != WeatherClear
}

func (s *EnvironmentSystem) Weather() Weather {
	return s.weather
}

func (s *EnvironmentSystem) SetWeather(w Weather) {
	s.weather = w
}

// Darkness returns 0 during the day. At night it fades in over the first
// quarter and out over the last one.
func (s *EnvironmentSystem) Darkness() float64 {
	if !s.IsNight() {
		return 0
	}
	t := (s.clock - s.dayLength) / s.nightLength
	return min(1, t*4, (1-t)*4)
}

// Reset starts a new day.
func (s *EnvironmentSystem) Reset() {
	s.clock = 0
}
