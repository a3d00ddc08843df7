// internal/defs/enemies.go
package defs

import (
	"fmt"
	"image/color"
	"log/slog"
)

// EnemyType is the closed set of enemy kinds.
type EnemyType uint8

const (
	EnemyRunner EnemyType = iota // light and fast
	EnemyGrunt                   // medium
	EnemyBrute                   // heavy, armored
	EnemyBomber                  // explosive
	EnemyTroll                   // large
	EnemyShade                   // hides at night
	enemyTypeCount
)

var enemyNames = [enemyTypeCount]string{
	EnemyRunner: "runner",
	EnemyGrunt:  "grunt",
	EnemyBrute:  "brute",
	EnemyBomber: "bomber",
	EnemyTroll:  "troll",
	EnemyShade:  "shade",
}

// AllEnemyTypes lists every enemy type in declaration order.
func AllEnemyTypes() []EnemyType {
	types := make([]EnemyType, 0, enemyTypeCount)
	for t := EnemyType(0); t < enemyTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

func (t EnemyType) String() string {
	if t < enemyTypeCount {
		return enemyNames[t]
	}
	return fmt.Sprintf("enemy(%d)", uint8(t))
}

// Valid reports whether t is one of the declared types.
func (t EnemyType) Valid() bool {
	return t < enemyTypeCount
}

// ParseEnemyType maps a data-file name to its type.
func ParseEnemyType(name string) (EnemyType, error) {
	for t, n := range enemyNames {
		if n == name {
			return EnemyType(t), nil
		}
	}
	return 0, fmt.Errorf("unknown enemy type %q", name)
}

// UnmarshalText lets data files refer to enemy types by name.
func (t *EnemyType) UnmarshalText(text []byte) error {
	parsed, err := ParseEnemyType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText writes the data-file name.
func (t EnemyType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid enemy type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

// Fast enemies grant the synergy bonus to nearby heavy ones.
func (t EnemyType) Fast() bool { return t == EnemyRunner }

// Heavy enemies receive the synergy bonus.
func (t EnemyType) Heavy() bool { return t == EnemyBrute }

// Stealthy enemies hide from towers for a while after nightfall.
func (t EnemyType) Stealthy() bool { return t == EnemyShade }

// SizeClass groups enemies for rendering and hit radius.
type SizeClass uint8

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
)

var sizeNames = [...]string{SizeSmall: "small", SizeMedium: "medium", SizeLarge: "large"}

func (s SizeClass) String() string {
	if int(s) < len(sizeNames) {
		return sizeNames[s]
	}
	return "medium"
}

// UnmarshalText parses small, medium or large.
func (s *SizeClass) UnmarshalText(text []byte) error {
	for i, n := range sizeNames {
		if n == string(text) {
			*s = SizeClass(i)
			return nil
		}
	}
	return fmt.Errorf("unknown size class %q", text)
}

// Radius returns the hit radius as a fraction of the tile size.
func (s SizeClass) Radius() float64 {
	switch s {
	case SizeSmall:
		return 0.2
	case SizeLarge:
		return 0.4
	default:
		return 0.3
	}
}

// EnemyStats holds the static data for one enemy type.
type EnemyStats struct {
	Health        int       `yaml:"health"`
	Speed         float64   `yaml:"speed"` // tiles per second
	Gold          int       `yaml:"gold"`
	LifeCost      int       `yaml:"life_cost"`
	PhysicalArmor int       `yaml:"physical_armor"`
	MagicalArmor  int       `yaml:"magical_armor"`
	Size          SizeClass `yaml:"size"`
}

// Valid reports whether the stats can be used to spawn an enemy.
func (s EnemyStats) Valid() bool {
	return s.Health > 0 && s.Speed > 0
}

// StatTable maps every enemy type to its stats.
type StatTable map[EnemyType]EnemyStats

var defaultStats = StatTable{
	EnemyRunner: {Health: 40, Speed: 2.4, Gold: 4, LifeCost: 1, Size: SizeSmall},
	EnemyGrunt:  {Health: 90, Speed: 1.4, Gold: 6, LifeCost: 1, PhysicalArmor: 1, Size: SizeMedium},
	EnemyBrute:  {Health: 220, Speed: 0.9, Gold: 12, LifeCost: 2, PhysicalArmor: 5, MagicalArmor: 1, Size: SizeMedium},
	EnemyBomber: {Health: 70, Speed: 1.6, Gold: 8, LifeCost: 3, Size: SizeSmall},
	EnemyTroll:  {Health: 600, Speed: 0.6, Gold: 30, LifeCost: 5, PhysicalArmor: 3, MagicalArmor: 3, Size: SizeLarge},
	EnemyShade:  {Health: 60, Speed: 1.8, Gold: 10, LifeCost: 2, MagicalArmor: 4, Size: SizeSmall},
}

var enemyColors = [enemyTypeCount]color.RGBA{
	EnemyRunner: {240, 200, 60, 255},
	EnemyGrunt:  {200, 90, 60, 255},
	EnemyBrute:  {120, 120, 140, 255},
	EnemyBomber: {230, 80, 30, 255},
	EnemyTroll:  {70, 140, 70, 255},
	EnemyShade:  {150, 90, 200, 255},
}

// Color returns the render color of the enemy type.
func (t EnemyType) Color() color.RGBA {
	if t.Valid() {
		return enemyColors[t]
	}
	return color.RGBA{255, 0, 255, 255}
}

// DefaultStats returns a copy of the built-in stat table.
func DefaultStats() StatTable {
	out := make(StatTable, len(defaultStats))
	for t, s := range defaultStats {
		out[t] = s
	}
	return out
}

// Lookup returns the stats for t, falling back to the built-in entry when the
// table is nil or holds an unusable record.
func (st StatTable) Lookup(t EnemyType) EnemyStats {
	if s, ok := st[t]; ok && s.Valid() {
		return s
	}
	slog.Warn("enemy stats missing, using defaults", "type", t)
	if s, ok := defaultStats[t]; ok {
		return s
	}
	return defaultStats[EnemyGrunt]
}

// Scaled applies a difficulty to the stats.
func (s EnemyStats) Scaled(d Difficulty) EnemyStats {
	out := s
	out.Health = max(1, int(float64(s.Health)*d.HealthMultiplier+0.5))
	out.Speed = s.Speed * d.SpeedMultiplier
	out.Gold = int(float64(s.Gold)*d.GoldMultiplier + 0.5)
	return out
}
