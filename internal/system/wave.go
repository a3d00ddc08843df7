// internal/system/wave.go
package system

import (
	"fmt"
	"log/slog"

	"go-road-defense/internal/config"
	"go-road-defense/internal/defs"
	"go-road-defense/internal/event"
)

// SchedulerPhase is the waiting state of the wave scheduler. Exactly one is
// active at a time; pendingWaveFinish is tracked separately.
type SchedulerPhase int

const (
	WaitingNextWave SchedulerPhase = iota
	PreparingGroup
	WaitingNextGroup
	WaitingNextEnemy
	ReadyToSpawn
	AllWavesDone
)

func (p SchedulerPhase) String() string {
	switch p {
	case WaitingNextWave:
		return "waiting next wave"
	case PreparingGroup:
		return "preparing group"
	case WaitingNextGroup:
		return "waiting next group"
	case WaitingNextEnemy:
		return "waiting next enemy"
	case ReadyToSpawn:
		return "spawning"
	case AllWavesDone:
		return "all waves done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// SchedulerConfig is the static input of the scheduler.
type SchedulerConfig struct {
	Waves          []defs.WaveConfig
	InterWaveDelay float64 // seconds before each wave
	AutoStart      bool    // run the inter-wave timer without StartNextWave
}

// Progress is the scheduler cursor. It only moves forward between resets.
type Progress struct {
	Wave    int // 0-based, -1 before the first wave
	Group   int
	Spawned int // enemies dequeued from the current group
}

// Less orders cursors lexicographically.
func (p Progress) Less(o Progress) bool {
	if p.Wave != o.Wave {
		return p.Wave < o.Wave
	}
	if p.Group != o.Group {
		return p.Group < o.Group
	}
	return p.Spawned < o.Spawned
}

// SchedulerStatus is the UI summary of the scheduler.
type SchedulerStatus struct {
	Wave       int // 1-based, 0 before the first wave
	Group      int // 1-based
	TotalWaves int
	Phase      string
	// NextSpawnIn is the game time until the next spawn or wave start.
	// Negative when nothing is scheduled.
	NextSpawnIn float64
}

// WaveScheduler decides, tick by tick, which enemy to spawn.
type WaveScheduler struct {
	cfg             SchedulerConfig
	eventDispatcher *event.Dispatcher

	phase             SchedulerPhase
	timerActive       bool
	pendingWaveFinish bool

	waveIndex  int
	groupIndex int
	queue      []defs.EnemyType
	spawned    int

	waveCounter, waveLimit   float64
	groupCounter, groupLimit float64
	enemyCounter, enemyLimit float64
}

func NewWaveScheduler(cfg SchedulerConfig, eventDispatcher *event.Dispatcher) *WaveScheduler {
	s := &WaveScheduler{eventDispatcher: eventDispatcher}
	s.Reset(cfg)
	return s
}

// Reset clears all progress and reseeds from cfg. Call between ticks only.
func (s *WaveScheduler) Reset(cfg SchedulerConfig) {
	*s = WaveScheduler{
		cfg:             cfg,
		eventDispatcher: s.eventDispatcher,
		waveIndex:       -1,
	}
	if len(cfg.Waves) == 0 {
		slog.Warn("wave scheduler has no waves")
		s.phase = AllWavesDone
		return
	}
	s.enterWaitingNextWave()
}

func (s *WaveScheduler) enterWaitingNextWave() {
	s.phase = WaitingNextWave
	s.timerActive = s.cfg.AutoStart
	s.waveCounter = 0
	s.waveLimit = config.SecondsToTicks(s.cfg.InterWaveDelay)
}

// StartNextWave skips the remaining inter-wave wait.
func (s *WaveScheduler) StartNextWave() {
	if s.phase != WaitingNextWave || s.pendingWaveFinish {
		return
	}
	s.timerActive = true
	s.waveCounter = s.waveLimit
}

// Update advances the scheduler by one tick and returns the enemy types to
// spawn now. liveEnemies is the number of enemies not yet dead or arrived.
func (s *WaveScheduler) Update(speed float64, liveEnemies int) []defs.EnemyType {
	if s.phase == AllWavesDone || speed <= 0 {
		return nil
	}

	if s.pendingWaveFinish {
		if liveEnemies > 0 {
			return nil
		}
		s.finishWave()
		return nil
	}

	switch s.phase {
	case WaitingNextWave:
		if !s.timerActive {
			return nil
		}
		s.waveCounter += speed
		if s.waveCounter < s.waveLimit {
			return nil
		}
		s.startWave()
	case WaitingNextGroup:
		s.groupCounter += speed
		if s.groupCounter < s.groupLimit {
			return nil
		}
		s.groupIndex++
		s.phase = PreparingGroup
	}

	if s.phase == PreparingGroup {
		s.prepareGroup()
	}

	if s.phase == WaitingNextEnemy {
		s.enemyCounter += speed
		if s.enemyCounter < s.enemyLimit {
			return nil
		}
		s.phase = ReadyToSpawn
	}

	if s.phase != ReadyToSpawn || len(s.queue) == 0 {
		return nil
	}

	next := s.queue[0]
	s.queue = s.queue[1:]
	s.spawned++

	switch {
	case len(s.queue) > 0:
		s.phase = WaitingNextEnemy
		s.enemyCounter = 0
	case s.groupIndex < len(s.currentWave().Groups)-1:
		s.phase = WaitingNextGroup
		s.groupCounter = 0
		s.groupLimit = config.SecondsToTicks(s.currentWave().GroupDelay)
	default:
		s.pendingWaveFinish = true
	}
	return []defs.EnemyType{next}
}

func (s *WaveScheduler) currentWave() defs.WaveConfig {
	return s.cfg.Waves[s.waveIndex]
}

func (s *WaveScheduler) startWave() {
	s.waveIndex++
	s.groupIndex = 0
	s.phase = PreparingGroup
	slog.Debug("wave started", "wave", s.waveIndex+1, "enemies", s.currentWave().Size())
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Wave: s.waveIndex + 1, TotalWaves: len(s.cfg.Waves)},
	})
}

// prepareGroup flattens the group and primes the enemy counter so the first
// enemy of the group spawns on the same tick.
func (s *WaveScheduler) prepareGroup() {
	g := s.currentWave().Groups[s.groupIndex]
	s.queue = g.Flatten()
	s.spawned = 0
	s.enemyLimit = config.SecondsToTicks(g.Delay)
	s.enemyCounter = s.enemyLimit
	s.phase = WaitingNextEnemy
}

func (s *WaveScheduler) finishWave() {
	s.pendingWaveFinish = false
	data := event.WaveData{Wave: s.waveIndex + 1, TotalWaves: len(s.cfg.Waves)}
	slog.Debug("wave completed", "wave", data.Wave)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: data})

	if s.waveIndex >= len(s.cfg.Waves)-1 {
		s.phase = AllWavesDone
		slog.Info("all waves completed", "waves", len(s.cfg.Waves))
		s.eventDispatcher.Dispatch(event.Event{Type: event.AllWavesCompleted, Data: data})
		return
	}
	s.enterWaitingNextWave()
}

// Phase returns the current waiting state.
func (s *WaveScheduler) Phase() SchedulerPhase {
	return s.phase
}

// PendingWaveFinish reports whether the scheduler waits for the field to clear.
func (s *WaveScheduler) PendingWaveFinish() bool {
	return s.pendingWaveFinish
}

// Done reports whether every wave has completed.
func (s *WaveScheduler) Done() bool {
	return s.phase == AllWavesDone
}

// Progress returns the scheduler cursor.
func (s *WaveScheduler) Progress() Progress {
	return Progress{Wave: s.waveIndex, Group: s.groupIndex, Spawned: s.spawned}
}

// QueueLen returns the number of enemies left in the active group.
func (s *WaveScheduler) QueueLen() int {
	return len(s.queue)
}

// Status summarizes the scheduler for display.
func (s *WaveScheduler) Status() SchedulerStatus {
	st := SchedulerStatus{
		Wave:        s.waveIndex + 1,
		Group:       s.groupIndex + 1,
		TotalWaves:  len(s.cfg.Waves),
		NextSpawnIn: -1,
	}
	switch {
	case s.phase == AllWavesDone:
		st.Phase = "all waves done"
	case s.pendingWaveFinish:
		st.Phase = fmt.Sprintf("wave %d: clearing the field", st.Wave)
	case s.phase == WaitingNextWave && !s.timerActive:
		st.Phase = fmt.Sprintf("wave %d ready", st.Wave+1)
	case s.phase == WaitingNextWave:
		st.Phase = fmt.Sprintf("wave %d incoming", st.Wave+1)
		st.NextSpawnIn = config.TicksToSeconds(max(0, s.waveLimit-s.waveCounter))
	case s.phase == WaitingNextGroup:
		st.Phase = fmt.Sprintf("wave %d: next group", st.Wave)
		st.NextSpawnIn = config.TicksToSeconds(max(0, s.groupLimit-s.groupCounter))
	default:
		st.Phase = fmt.Sprintf("wave %d: group %d, %d left", st.Wave, st.Group, len(s.queue))
		st.NextSpawnIn = config.TicksToSeconds(max(0, s.enemyLimit-s.enemyCounter))
	}
	return st
}
