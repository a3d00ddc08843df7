// internal/app/economy.go
package app

import (
	"log/slog"

	"go-road-defense/internal/component"
	"go-road-defense/internal/config"
	"go-road-defense/internal/defs"
	"go-road-defense/internal/event"
)

// Economy ведёт золото и жизни игрока. It only listens to simulation events
// and decides victory or defeat.
type Economy struct {
	Gold      int
	Lives     int
	Phase     component.GamePhase
	Kills     int
	Leaks     int
	Collected map[defs.CollectibleKind]int

	startGold    int
	startLives   int
	interestRate float64
}

func NewEconomy(gold, lives int, interestRate float64) *Economy {
	e := &Economy{startGold: gold, startLives: lives, interestRate: interestRate}
	e.Reset()
	return e
}

// Subscribe registers the economy for every event it handles.
func (e *Economy) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.EnemyKilled,
		event.EnemyReachedEnd,
		event.CollectibleDropped,
		event.WaveCompleted,
		event.AllWavesCompleted,
	} {
		d.Subscribe(t, e)
	}
}

// Reset restores the starting balance.
func (e *Economy) Reset() {
	e.Gold = e.startGold
	e.Lives = e.startLives
	e.Phase = component.PhasePlaying
	e.Kills = 0
	e.Leaks = 0
	e.Collected = make(map[defs.CollectibleKind]int)
}

// OnEvent реализует интерфейс event.Listener.
func (e *Economy) OnEvent(ev event.Event) {
	switch ev.Type {
	case event.EnemyKilled:
		if d, ok := ev.Data.(event.EnemyKilledData); ok {
			e.Gold += d.Gold
			e.Kills++
		}
	case event.EnemyReachedEnd:
		if d, ok := ev.Data.(event.EnemyReachedEndData); ok {
			e.Leaks++
			e.loseLives(d.LifeCost)
		}
	case event.CollectibleDropped:
		if d, ok := ev.Data.(event.CollectibleDroppedData); ok {
			e.collect(d.Kind)
		}
	case event.WaveCompleted:
		interest := int(float64(e.Gold) * e.interestRate)
		e.Gold += interest
		if d, ok := ev.Data.(event.WaveData); ok {
			slog.Info("wave completed", "wave", d.Wave, "of", d.TotalWaves, "interest", interest, "gold", e.Gold, "lives", e.Lives)
		}
	case event.AllWavesCompleted:
		if e.Phase == component.PhasePlaying {
			e.Phase = component.PhaseVictory
			slog.Info("victory", "gold", e.Gold, "lives", e.Lives, "kills", e.Kills)
		}
	}
}

func (e *Economy) loseLives(n int) {
	if e.Phase != component.PhasePlaying {
		return
	}
	e.Lives -= n
	if e.Lives <= 0 {
		e.Lives = 0
		e.Phase = component.PhaseDefeat
		slog.Info("defeat", "kills", e.Kills, "leaks", e.Leaks)
	}
}

// Дропы подбираются сразу.
func (e *Economy) collect(kind defs.CollectibleKind) {
	e.Collected[kind]++
	switch kind {
	case defs.CollectibleCoin:
		e.Gold += config.CoinGold
	case defs.CollectibleGem:
		e.Gold += config.GemGold
	case defs.CollectibleHeart:
		if e.Phase == component.PhasePlaying {
			e.Lives += config.HeartLives
		}
	}
}
