// internal/defs/towers.go
package defs

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID             string     `yaml:"id"`
	Damage         int        `yaml:"damage"`
	FireRate       float64    `yaml:"fire_rate"` // Shots per second
	Range          float64    `yaml:"range"`     // tiles
	Attack         AttackType `yaml:"attack"`
	Strategy       string     `yaml:"strategy"`
	SlowFactor     float64    `yaml:"slow_factor,omitempty"`
	SlowDuration   float64    `yaml:"slow_duration,omitempty"`
	FreezeDuration float64    `yaml:"freeze_duration,omitempty"`
	LightRadius    float64    `yaml:"light_radius,omitempty"` // tiles; 0 means the tower is dark
}

// Lit reports whether the tower illuminates its surroundings.
func (d TowerDefinition) Lit() bool {
	return d.LightRadius > 0
}

// TowerLibrary is a map to hold all tower definitions, keyed by their ID.
type TowerLibrary map[string]TowerDefinition

// DefaultTowers returns the built-in tower library.
func DefaultTowers() TowerLibrary {
	return TowerLibrary{
		"arrow":   {ID: "arrow", Damage: 12, FireRate: 1.5, Range: 2.5, Attack: AttackPhysical, Strategy: "first"},
		"cannon":  {ID: "cannon", Damage: 30, FireRate: 0.6, Range: 2, Attack: AttackPhysical, Strategy: "strongest"},
		"frost":   {ID: "frost", Damage: 4, FireRate: 1, Range: 2, Attack: AttackMagical, Strategy: "last", SlowFactor: 0.5, SlowDuration: 2},
		"glacier": {ID: "glacier", Damage: 2, FireRate: 0.25, Range: 2, Attack: AttackMagical, Strategy: "first", FreezeDuration: 0.8},
		"lantern": {ID: "lantern", Damage: 8, FireRate: 1, Range: 2.5, Attack: AttackMagical, Strategy: "weakest", LightRadius: 3},
	}
}
