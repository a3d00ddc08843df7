// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 720
	TileSize     = 40.0 // world units per tile
	MaxDeltaTime = 0.06

	TicksPerSecond = 60

	// Stealth, synergy and drops.
	StealthWindowSeconds    = 10.0
	DropChance              = 0.5
	SynergyBonusRatio       = 0.25 // share of the fast enemy's speed granted to a heavy one
	SynergyLifeCostBonus    = 1
	MinSlowFactor           = 0.1
	DefaultInterWaveSeconds = 5.0

	// Day/night cycle and economy defaults.
	DayLengthSeconds   = 45.0
	NightLengthSeconds = 25.0
	StartingGold       = 100
	StartingLives      = 20
	InterestRate       = 0.05
	CoinGold           = 2
	GemGold            = 10
	HeartLives         = 1

	HUDMargin          = 12
	SpeedButtonSize    = 14.0
	IndicatorFontScale = 3
)

// SpeedSteps are the multipliers the speed button cycles through.
var SpeedSteps = []float64{1, 2, 4, 0}

// SecondsToTicks converts game seconds to scaled ticks.
func SecondsToTicks(seconds float64) float64 {
	return seconds * TicksPerSecond
}

// TicksToSeconds converts scaled ticks to game seconds.
func TicksToSeconds(ticks float64) float64 {
	return ticks / TicksPerSecond
}

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GrassColor      = color.RGBA{46, 70, 52, 255}
	RoadColor       = color.RGBA{150, 130, 95, 255}
	OneWayColor     = color.RGBA{175, 150, 100, 255}
	GateColor       = color.RGBA{90, 60, 40, 255}
	EntryColor      = color.RGBA{0, 255, 0, 255}
	ExitColor       = color.RGBA{255, 0, 0, 255}
	PathColor       = color.RGBA{255, 255, 0, 90}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TowerColor      = color.RGBA{200, 200, 220, 255}
	LightColor      = color.RGBA{255, 230, 140, 40}
	NightTint       = color.RGBA{10, 10, 40, 110}
	HealthBarColor  = color.RGBA{60, 220, 60, 255}
	HealthBackColor = color.RGBA{90, 20, 20, 255}
	FrozenColor     = color.RGBA{160, 220, 255, 255}
	DropColor       = color.RGBA{255, 215, 0, 255}
)

var (
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4, песочно-жёлтый
		color.RGBA{120, 120, 120, 220}, // пауза
	}
)
