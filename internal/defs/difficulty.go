// internal/defs/difficulty.go
package defs

import "fmt"

// Difficulty scales enemy stats when they spawn and on live refresh.
type Difficulty struct {
	Name             string  `yaml:"name"`
	HealthMultiplier float64 `yaml:"health_multiplier"`
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`
	GoldMultiplier   float64 `yaml:"gold_multiplier"`
}

// Normal is the neutral difficulty.
var Normal = Difficulty{Name: "normal", HealthMultiplier: 1, SpeedMultiplier: 1, GoldMultiplier: 1}

// Valid reports whether every multiplier is positive.
func (d Difficulty) Valid() bool {
	return d.HealthMultiplier > 0 && d.SpeedMultiplier > 0 && d.GoldMultiplier >= 0
}

// FindDifficulty looks a difficulty up by name.
func FindDifficulty(all []Difficulty, name string) (Difficulty, error) {
	for _, d := range all {
		if d.Name == name {
			if !d.Valid() {
				return Normal, fmt.Errorf("difficulty %q has invalid multipliers", name)
			}
			return d, nil
		}
	}
	return Normal, fmt.Errorf("unknown difficulty %q", name)
}
