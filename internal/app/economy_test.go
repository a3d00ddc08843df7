package app

import (
	"testing"

	"go-road-defense/internal/component"
	"go-road-defense/internal/config"
	"go-road-defense/internal/defs"
	"go-road-defense/internal/event"

	"github.com/stretchr/testify/assert"
)

func TestEconomyEvents(t *testing.T) {
	d := event.NewDispatcher()
	e := NewEconomy(100, 5, 0.1)
	e.Subscribe(d)

	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Gold: 10}})
	assert.Equal(t, 110, e.Gold)
	assert.Equal(t, 1, e.Kills)

	d.Dispatch(event.Event{Type: event.WaveCompleted, Data: event.WaveData{Wave: 1, TotalWaves: 2}})
	assert.Equal(t, 121, e.Gold, "10% interest rounded down")

	d.Dispatch(event.Event{Type: event.CollectibleDropped, Data: event.CollectibleDroppedData{Kind: defs.CollectibleGem}})
	d.Dispatch(event.Event{Type: event.CollectibleDropped, Data: event.CollectibleDroppedData{Kind: defs.CollectibleHeart}})
	assert.Equal(t, 121+config.GemGold, e.Gold)
	assert.Equal(t, 5+config.HeartLives, e.Lives)
	assert.Equal(t, 1, e.Collected[defs.CollectibleGem])

	d.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: event.EnemyReachedEndData{LifeCost: 2}})
	assert.Equal(t, 4, e.Lives)
	assert.Equal(t, component.PhasePlaying, e.Phase)

	d.Dispatch(event.Event{Type: event.AllWavesCompleted, Data: event.WaveData{Wave: 2, TotalWaves: 2}})
	assert.Equal(t, component.PhaseVictory, e.Phase)
}

func TestEconomyDefeat(t *testing.T) {
	e := NewEconomy(0, 3, 0)
	e.OnEvent(event.Event{Type: event.EnemyReachedEnd, Data: event.EnemyReachedEndData{LifeCost: 5}})
	assert.Equal(t, component.PhaseDefeat, e.Phase)
	assert.Zero(t, e.Lives)

	// no victory after defeat, no lives back
	e.OnEvent(event.Event{Type: event.AllWavesCompleted})
	e.OnEvent(event.Event{Type: event.CollectibleDropped, Data: event.CollectibleDroppedData{Kind: defs.CollectibleHeart}})
	assert.Equal(t, component.PhaseDefeat, e.Phase)
	assert.Zero(t, e.Lives)

	e.Reset()
	assert.Equal(t, 3, e.Lives)
	assert.Equal(t, component.PhasePlaying, e.Phase)
	assert.Empty(t, e.Collected)
}
