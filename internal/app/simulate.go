// internal/app/simulate.go
package app

import (
	"context"
	"errors"
	"fmt"

	"go-road-defense/internal/component"
	"go-road-defense/internal/defs"
)

// ErrTickLimit is returned when a level is still running after the tick budget.
var ErrTickLimit = errors.New("tick limit reached")

// ctxCheckEvery is how many ticks run between context checks.
const ctxCheckEvery = 1024

// Outcome summarizes a finished (or abandoned) run.
type Outcome struct {
	Phase     component.GamePhase
	Ticks     int
	Gold      int
	Lives     int
	Kills     int
	Leaks     int
	Collected map[defs.CollectibleKind]int
}

// Outcome returns the current result of the level.
func (g *Game) Outcome() Outcome {
	collected := make(map[defs.CollectibleKind]int, len(g.Economy.Collected))
	for k, v := range g.Economy.Collected {
		collected[k] = v
	}
	return Outcome{
		Phase:     g.Economy.Phase,
		Ticks:     g.ticks,
		Gold:      g.Economy.Gold,
		Lives:     g.Economy.Lives,
		Kills:     g.Economy.Kills,
		Leaks:     g.Economy.Leaks,
		Collected: collected,
	}
}

// Simulate runs the level without a window until it ends. Waves that wait for
// a manual start are started immediately.
func Simulate(ctx context.Context, g *Game, speed float64, maxTicks int) (Outcome, error) {
	if speed <= 0 {
		return g.Outcome(), fmt.Errorf("simulate: speed %v does not advance time", speed)
	}
	if !g.SpawningEnabled() {
		return g.Outcome(), g.RouteErr
	}
	for i := 0; !g.Finished(); i++ {
		if i >= maxTicks {
			return g.Outcome(), fmt.Errorf("%w after %d ticks", ErrTickLimit, i)
		}
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return g.Outcome(), err
			}
		}
		if !g.Level.AutoStartEnabled() {
			g.StartNextWave()
		}
		g.Update(speed)
	}
	return g.Outcome(), nil
}
