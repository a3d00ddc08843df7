// internal/component/status_effect.go
package component

// SlowEffect describes a slow to apply on hit.
type SlowEffect struct {
	Duration float64 // seconds
	Factor   float64 // multiplier for speed (e.g., 0.5 for 50% slow)
}

// FreezeEffect stops movement entirely for Duration seconds.
type FreezeEffect struct {
	Duration float64
}
