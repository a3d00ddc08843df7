// internal/system/stealth.go
package system

import "go-road-defense/internal/component"

// stealthClock tracks nightfall for the stealth rule.
type stealthClock struct {
	window     float64 // ticks
	night      bool
	nightStart float64
}

// observe records the night edge. Call once per tick before hidden.
func (c *stealthClock) observe(night bool, now float64) {
	if night && !c.night {
		c.nightStart = now
	}
	c.night = night
}

// hidden reports whether e is untargetable at tick now. Eligibility starts at
// nightfall or at spawn, whichever is later; light cancels stealth.
func (c *stealthClock) hidden(e *component.Enemy, now float64, lit bool) bool {
	if !c.night || !e.Type.Stealthy() || lit {
		return false
	}
	since := max(c.nightStart, e.SpawnedAt)
	return now-since < c.window
}

func (c *stealthClock) reset() {
	c.night = false
	c.nightStart = 0
}
