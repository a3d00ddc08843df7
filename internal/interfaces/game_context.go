// internal/interfaces/game_context.go
package interfaces

// Environment is what the enemy simulator reads from the world every tick.
type Environment interface {
	IsNight() bool
	WeatherMultiplier() float64 // enemy speed multiplier, 1 in clear weather
}

// LightQuery answers whether a world position is inside a lit tower's radius.
type LightQuery interface {
	IsLit(x, y float64) bool
}
