package system

import (
	"testing"

	"go-road-defense/internal/defs"
	"go-road-defense/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) types() []event.EventType {
	out := make([]event.EventType, len(l.events))
	for i, e := range l.events {
		out[i] = e.Type
	}
	return out
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listen(d *event.Dispatcher, types ...event.EventType) *eventLog {
	l := &eventLog{}
	for _, t := range types {
		d.Subscribe(t, l)
	}
	return l
}

func waveOf(delay float64, entries ...defs.SpawnCount) defs.WaveConfig {
	return defs.WaveConfig{Groups: []defs.GroupConfig{{Entries: entries, Delay: delay}}}
}

func TestSchedulerScenarioTiming(t *testing.T) {
	d := event.NewDispatcher()
	log := listen(d, event.WaveStarted, event.WaveCompleted, event.AllWavesCompleted)
	s := NewWaveScheduler(SchedulerConfig{
		Waves:     []defs.WaveConfig{waveOf(0.5, defs.SpawnCount{Type: defs.EnemyRunner, Count: 2})},
		AutoStart: true,
	}, d)

	var spawnTicks []int
	live := 0
	for tick := 0; tick < 120; tick++ {
		for _, et := range s.Update(1, live) {
			assert.Equal(t, defs.EnemyRunner, et)
			spawnTicks = append(spawnTicks, tick)
			live++
		}
	}
	assert.Equal(t, []int{0, 30}, spawnTicks)
	assert.True(t, s.PendingWaveFinish())
	assert.False(t, s.Done())

	// both enemies removed
	s.Update(1, 0)
	assert.True(t, s.Done())
	assert.Equal(t, []event.EventType{event.WaveStarted, event.WaveCompleted, event.AllWavesCompleted}, log.types())
	assert.Equal(t, event.WaveData{Wave: 1, TotalWaves: 1}, log.events[1].Data)
}

func TestSchedulerSpeedScalesCounters(t *testing.T) {
	s := NewWaveScheduler(SchedulerConfig{
		Waves:     []defs.WaveConfig{waveOf(0.5, defs.SpawnCount{Type: defs.EnemyGrunt, Count: 3})},
		AutoStart: true,
	}, event.NewDispatcher())

	var spawnTicks []int
	for tick := 0; tick < 60; tick++ {
		if len(s.Update(2, 0)) > 0 {
			spawnTicks = append(spawnTicks, tick)
		}
	}
	assert.Equal(t, []int{0, 15, 30}, spawnTicks)
}

func TestSchedulerPauseHaltsProgress(t *testing.T) {
	s := NewWaveScheduler(SchedulerConfig{
		Waves:     []defs.WaveConfig{waveOf(0, defs.SpawnCount{Type: defs.EnemyGrunt, Count: 1})},
		AutoStart: true,
	}, event.NewDispatcher())

	for i := 0; i < 100; i++ {
		assert.Empty(t, s.Update(0, 0))
	}
	assert.Equal(t, -1, s.Progress().Wave)
	assert.Len(t, s.Update(1, 0), 1)
}

func TestSchedulerGatesOnLiveEnemies(t *testing.T) {
	d := event.NewDispatcher()
	log := listen(d, event.WaveCompleted, event.WaveStarted)
	s := NewWaveScheduler(SchedulerConfig{
		Waves: []defs.WaveConfig{
			waveOf(0, defs.SpawnCount{Type: defs.EnemyGrunt, Count: 3}),
			waveOf(0, defs.SpawnCount{Type: defs.EnemyGrunt, Count: 1}),
		},
		AutoStart: true,
	}, d)

	spawned := 0
	for i := 0; i < 10; i++ {
		spawned += len(s.Update(1, spawned))
	}
	require.Equal(t, 3, spawned)
	require.True(t, s.PendingWaveFinish())

	// two killed, one still walking
	for i := 0; i < 1000; i++ {
		assert.Empty(t, s.Update(1, 1))
	}
	assert.True(t, s.PendingWaveFinish())
	assert.Equal(t, 0, log.count(event.WaveCompleted))
	assert.Equal(t, 0, s.Progress().Wave)

	s.Update(1, 0)
	assert.False(t, s.PendingWaveFinish())
	assert.Equal(t, 1, log.count(event.WaveCompleted))
	assert.Equal(t, WaitingNextWave, s.Phase())
}

func TestSchedulerGroupDelay(t *testing.T) {
	wave := defs.WaveConfig{
		GroupDelay: 1,
		Groups: []defs.GroupConfig{
			{Entries: []defs.SpawnCount{{Type: defs.EnemyRunner, Count: 1}}},
			{Entries: []defs.SpawnCount{{Type: defs.EnemyBrute, Count: 1}}},
		},
	}
	s := NewWaveScheduler(SchedulerConfig{Waves: []defs.WaveConfig{wave}, AutoStart: true}, event.NewDispatcher())

	spawns := map[int]defs.EnemyType{}
	for tick := 0; tick < 100; tick++ {
		for _, et := range s.Update(1, 0) {
			spawns[tick] = et
		}
	}
	assert.Equal(t, map[int]defs.EnemyType{0: defs.EnemyRunner, 60: defs.EnemyBrute}, spawns)
}

func TestSchedulerManualStart(t *testing.T) {
	s := NewWaveScheduler(SchedulerConfig{
		Waves:          []defs.WaveConfig{waveOf(0, defs.SpawnCount{Type: defs.EnemyGrunt, Count: 1})},
		InterWaveDelay: 3,
	}, event.NewDispatcher())

	for i := 0; i < 500; i++ {
		require.Empty(t, s.Update(1, 0))
	}
	st := s.Status()
	assert.Equal(t, "wave 1 ready", st.Phase)
	assert.Negative(t, st.NextSpawnIn)

	s.StartNextWave()
	assert.Len(t, s.Update(1, 0), 1)
}

func TestSchedulerInterWaveDelay(t *testing.T) {
	s := NewWaveScheduler(SchedulerConfig{
		Waves:          []defs.WaveConfig{waveOf(0, defs.SpawnCount{Type: defs.EnemyGrunt, Count: 1})},
		InterWaveDelay: 2,
		AutoStart:      true,
	}, event.NewDispatcher())

	st := s.Status()
	assert.Equal(t, 0, st.Wave)
	assert.Equal(t, 1, st.TotalWaves)
	assert.InDelta(t, 2.0, st.NextSpawnIn, 1e-9)

	first := -1
	for tick := 0; tick < 200 && first < 0; tick++ {
		if len(s.Update(1, 0)) > 0 {
			first = tick
		}
	}
	// the 120th increment reaches the limit
	assert.Equal(t, 119, first)
}

func TestSchedulerProgressMonotonic(t *testing.T) {
	waves := []defs.WaveConfig{
		{GroupDelay: 0.5, Groups: []defs.GroupConfig{
			{Entries: []defs.SpawnCount{{Type: defs.EnemyRunner, Count: 3}}, Delay: 0.2},
			{Entries: []defs.SpawnCount{{Type: defs.EnemyBrute, Count: 2}, {Type: defs.EnemyShade, Count: 1}}, Delay: 0.4},
		}},
		waveOf(0.1, defs.SpawnCount{Type: defs.EnemyTroll, Count: 2}),
		waveOf(0, defs.SpawnCount{Type: defs.EnemyGrunt, Count: 4}),
	}
	s := NewWaveScheduler(SchedulerConfig{Waves: waves, InterWaveDelay: 1, AutoStart: true}, event.NewDispatcher())

	speeds := []float64{1, 2, 0, 4}
	prev := s.Progress()
	total := 0
	for tick := 0; tick < 5000 && !s.Done(); tick++ {
		total += len(s.Update(speeds[tick%len(speeds)], 0))
		cur := s.Progress()
		require.False(t, cur.Less(prev), "tick %d: %+v after %+v", tick, cur, prev)
		prev = cur
	}
	assert.True(t, s.Done())
	assert.Equal(t, 6+2+4, total)
}

func TestSchedulerResetAndEmpty(t *testing.T) {
	cfg := SchedulerConfig{
		Waves:     []defs.WaveConfig{waveOf(0, defs.SpawnCount{Type: defs.EnemyGrunt, Count: 2})},
		AutoStart: true,
	}
	s := NewWaveScheduler(cfg, event.NewDispatcher())
	s.Update(1, 0)
	require.Equal(t, 0, s.Progress().Wave)

	s.Reset(cfg)
	assert.Equal(t, Progress{Wave: -1}, s.Progress())
	assert.Equal(t, WaitingNextWave, s.Phase())
	assert.Len(t, s.Update(1, 0), 1)

	s.Reset(SchedulerConfig{})
	assert.True(t, s.Done())
	assert.Empty(t, s.Update(1, 0))
}
