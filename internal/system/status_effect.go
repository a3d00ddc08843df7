// internal/system/status_effect.go
package system

import (
	"go-road-defense/internal/component"
	"go-road-defense/internal/config"
	"go-road-defense/pkg/utils"
)

// expireEffects снимает истёкшие замедление и заморозку.
func expireEffects(e *component.Enemy, now float64) {
	if e.SlowedUntil > 0 && now >= e.SlowedUntil {
		e.SlowedUntil = 0
		e.SlowFactor = 1
	}
	if e.FrozenUntil > 0 && now >= e.FrozenUntil {
		e.FrozenUntil = 0
	}
}

// applySlow keeps the stronger factor while both slows overlap and the later
// expiry.
func applySlow(e *component.Enemy, eff component.SlowEffect, now float64) {
	if eff.Duration <= 0 {
		return
	}
	factor := utils.Clamp(eff.Factor, config.MinSlowFactor, 1)
	if e.IsSlowed(now) {
		factor = min(factor, e.SlowFactor)
	}
	e.SlowFactor = factor
	e.SlowedUntil = max(e.SlowedUntil, now+config.SecondsToTicks(eff.Duration))
}

func applyFreeze(e *component.Enemy, eff component.FreezeEffect, now float64) {
	if eff.Duration <= 0 {
		return
	}
	e.FrozenUntil = max(e.FrozenUntil, now+config.SecondsToTicks(eff.Duration))
}

// slowMultiplier returns the movement multiplier from status effects.
func slowMultiplier(e *component.Enemy, now float64) float64 {
	if e.IsFrozen(now) {
		return 0
	}
	if e.IsSlowed(now) {
		return e.SlowFactor
	}
	return 1
}
