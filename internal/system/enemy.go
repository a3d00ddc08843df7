// internal/system/enemy.go
package system

import (
	"errors"
	"fmt"
	"log/slog"

	"go-road-defense/internal/component"
	"go-road-defense/internal/config"
	"go-road-defense/internal/defs"
	"go-road-defense/internal/entity"
	"go-road-defense/internal/event"
	"go-road-defense/internal/interfaces"
	"go-road-defense/internal/utils"
	"go-road-defense/pkg/roadmap"
)

var (
	// ErrUnknownEnemy is returned for ids that are not in the live collection.
	ErrUnknownEnemy = errors.New("unknown enemy")
	// ErrNoPath is returned by Spawn when the level has no usable route.
	ErrNoPath = errors.New("no path to follow")
)

// SimulatorTuning holds the gameplay constants of the simulator.
type SimulatorTuning struct {
	StealthWindow        float64 // seconds
	DropChance           float64
	SynergyBonusRatio    float64
	SynergyLifeCostBonus int
}

// DefaultSimulatorTuning returns the compile-time defaults.
func DefaultSimulatorTuning() SimulatorTuning {
	return SimulatorTuning{
		StealthWindow:        config.StealthWindowSeconds,
		DropChance:           config.DropChance,
		SynergyBonusRatio:    config.SynergyBonusRatio,
		SynergyLifeCostBonus: config.SynergyLifeCostBonus,
	}
}

// SimulatorDeps are the collaborators of the simulator. Lights may be nil.
type SimulatorDeps struct {
	Store           *entity.Store
	EventDispatcher *event.Dispatcher
	Environment     interfaces.Environment
	Lights          interfaces.LightQuery
	PRNG            *utils.PRNGService
	Stats           defs.StatTable
	Difficulty      defs.Difficulty
	Drops           []defs.DropEntry
	Tuning          SimulatorTuning
}

// EnemySimulator owns the live enemy collection: it moves enemies along the
// path, resolves status effects, synergy and stealth, and fires the death and
// arrival side effects exactly once per enemy.
type EnemySimulator struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
	env             interfaces.Environment
	lights          interfaces.LightQuery
	rng             *utils.PRNGService
	stats           defs.StatTable
	difficulty      defs.Difficulty
	drops           []defs.DropEntry
	tuning          SimulatorTuning

	path   roadmap.Path
	points []Waypoint

	now     float64 // scaled ticks
	stealth stealthClock
	done    []int // slots finished during the current tick
}

func NewEnemySimulator(deps SimulatorDeps, path roadmap.Path) *EnemySimulator {
	if deps.Store == nil {
		deps.Store = entity.NewStore()
	}
	if deps.PRNG == nil {
		deps.PRNG = utils.NewPRNGService(0)
	}
	if !deps.Difficulty.Valid() {
		deps.Difficulty = defs.Normal
	}
	if deps.Drops == nil {
		deps.Drops = defs.DefaultDropTable()
	}
	s := &EnemySimulator{
		store:           deps.Store,
		eventDispatcher: deps.EventDispatcher,
		env:             deps.Environment,
		lights:          deps.Lights,
		rng:             deps.PRNG,
		stats:           deps.Stats,
		difficulty:      deps.Difficulty,
		drops:           deps.Drops,
		tuning:          deps.Tuning,
		stealth:         stealthClock{window: config.SecondsToTicks(deps.Tuning.StealthWindow)},
	}
	s.SetPath(path)
	return s
}

// SetPath replaces the route. Enemies already on the field keep their index;
// call between levels only.
func (s *EnemySimulator) SetPath(path roadmap.Path) {
	s.path = path
	s.points = Waypoints(path, config.TileSize)
}

// SetLights sets the illumination source used by the stealth rule.
func (s *EnemySimulator) SetLights(lights interfaces.LightQuery) {
	s.lights = lights
}

func (s *EnemySimulator) Path() roadmap.Path {
	return s.path
}

// Now returns the time of the last processed tick in scaled ticks.
func (s *EnemySimulator) Now() float64 {
	return s.now
}

// Spawn creates an enemy of type t at the start of the path.
func (s *EnemySimulator) Spawn(t defs.EnemyType) (uint64, error) {
	if len(s.points) == 0 {
		return 0, ErrNoPath
	}
	if !t.Valid() {
		return 0, fmt.Errorf("spawn: invalid enemy type %d", t)
	}
	st := s.stats.Lookup(t).Scaled(s.difficulty)
	start := s.points[0]
	s.observeNight()

	e := component.Enemy{
		ID:            s.store.NewEntity(),
		Type:          t,
		Size:          st.Size,
		X:             start.X,
		Y:             start.Y,
		Health:        st.Health,
		MaxHealth:     st.Health,
		Speed:         st.Speed,
		Gold:          st.Gold,
		LifeCost:      st.LifeCost,
		PhysicalArmor: st.PhysicalArmor,
		MagicalArmor:  st.MagicalArmor,
		Alive:         true,
		SlowFactor:    1,
		SpawnedAt:     s.now,
	}
	e.Invisible = s.stealth.hidden(&e, s.now, s.isLit(e.X, e.Y))
	s.store.Add(e)
	slog.Debug("enemy spawned", "id", e.ID, "type", t, "health", e.Health)
	return e.ID, nil
}

func (s *EnemySimulator) observeNight() {
	if s.env != nil {
		s.stealth.observe(s.env.IsNight(), s.now)
	}
}

func (s *EnemySimulator) isLit(x, y float64) bool {
	return s.lights != nil && s.lights.IsLit(x, y)
}

func (s *EnemySimulator) weather() float64 {
	if s.env == nil {
		return 1
	}
	return s.env.WeatherMultiplier()
}

// Update advances every live enemy by one tick.
func (s *EnemySimulator) Update(speed float64) {
	if speed <= 0 {
		return
	}
	s.now += speed
	s.observeNight()

	// Синергия и скрытность считаются по позициям на начало тика.
	applySynergy(s.store, s.tuning.SynergyBonusRatio)
	for i := 0; i < s.store.Slots(); i++ {
		e := s.store.At(i)
		if e.Active() {
			e.Invisible = s.stealth.hidden(e, s.now, s.isLit(e.X, e.Y))
		}
	}

	weather := s.weather()
	last := len(s.points) - 1
	s.done = s.done[:0]
	for i := 0; i < s.store.Slots(); i++ {
		e := s.store.At(i)
		if !e.Active() {
			continue
		}
		expireEffects(e, s.now)

		if e.PathIndex >= last {
			e.ReachedEnd = true
		} else {
			moveAlongPath(e, s.points, stepLength(e, speed, weather, slowMultiplier(e, s.now)))
		}

		if e.Health <= 0 {
			e.Alive = false
		}
		if !e.Alive || e.ReachedEnd {
			s.done = append(s.done, i)
		}
	}

	for _, i := range s.done {
		s.finish(s.store.At(i))
	}
	s.store.Compact()
}

// finish fires the death or arrival side effects once and removes the enemy.
// Death wins when both apply.
func (s *EnemySimulator) finish(e *component.Enemy) {
	if e.Handled {
		return
	}
	e.Handled = true
	id := e.ID

	if !e.Alive {
		slog.Debug("enemy killed", "id", id, "type", e.Type, "gold", e.Gold)
		s.dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{
			EnemyID: id, Type: e.Type, Gold: e.Gold, X: e.X, Y: e.Y,
		}})
		if s.rng.Chance(s.tuning.DropChance) {
			s.dispatch(event.Event{Type: event.CollectibleDropped, Data: event.CollectibleDroppedData{
				Kind: s.rng.ChooseWeighted(s.drops), X: e.X, Y: e.Y,
			}})
		}
	} else {
		cost := e.LifeCost
		if e.SynergyBonus > 0 {
			cost += s.tuning.SynergyLifeCostBonus
		}
		slog.Debug("enemy reached end", "id", id, "type", e.Type, "life_cost", cost)
		s.dispatch(event.Event{Type: event.EnemyReachedEnd, Data: event.EnemyReachedEndData{
			EnemyID: id, Type: e.Type, LifeCost: cost,
		}})
	}
	s.store.Remove(id)
}

func (s *EnemySimulator) dispatch(e event.Event) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(e)
	}
}

// ApplyDamage hits a live enemy and returns the damage dealt and the health
// left. A dead or arrived enemy is a no-op; death is resolved on the next
// Update.
func (s *EnemySimulator) ApplyDamage(id uint64, damage int, attackType defs.AttackType) (dealt, left int, err error) {
	e, ok := s.store.Get(id)
	if !ok {
		return 0, 0, fmt.Errorf("damage enemy %d: %w", id, ErrUnknownEnemy)
	}
	if !e.Active() || e.Health <= 0 {
		return 0, e.Health, nil
	}
	dealt = applyDamage(e, damage, attackType)
	return dealt, e.Health, nil
}

// ApplySlow slows a live enemy.
func (s *EnemySimulator) ApplySlow(id uint64, eff component.SlowEffect) error {
	e, ok := s.store.Get(id)
	if !ok {
		return fmt.Errorf("slow enemy %d: %w", id, ErrUnknownEnemy)
	}
	if e.Active() {
		applySlow(e, eff, s.now)
	}
	return nil
}

// ApplyFreeze stops a live enemy.
func (s *EnemySimulator) ApplyFreeze(id uint64, eff component.FreezeEffect) error {
	e, ok := s.store.Get(id)
	if !ok {
		return fmt.Errorf("freeze enemy %d: %w", id, ErrUnknownEnemy)
	}
	if e.Active() {
		applyFreeze(e, eff, s.now)
	}
	return nil
}

// RefreshStats applies a new stat table and difficulty to future spawns and
// to every live enemy. Current health keeps its ratio to max health.
func (s *EnemySimulator) RefreshStats(stats defs.StatTable, difficulty defs.Difficulty) {
	if !difficulty.Valid() {
		slog.Warn("invalid difficulty, keeping current", "difficulty", difficulty.Name)
		difficulty = s.difficulty
	}
	if stats != nil {
		s.stats = stats
	}
	s.difficulty = difficulty

	for i := 0; i < s.store.Slots(); i++ {
		e := s.store.At(i)
		if !e.Active() {
			continue
		}
		st := s.stats.Lookup(e.Type).Scaled(s.difficulty)
		if e.MaxHealth > 0 && e.Health > 0 {
			ratio := float64(e.Health) / float64(e.MaxHealth)
			e.Health = max(1, int(ratio*float64(st.Health)+0.5))
		}
		e.MaxHealth = st.Health
		e.Speed = st.Speed
		e.Gold = st.Gold
		e.LifeCost = st.LifeCost
		e.PhysicalArmor = st.PhysicalArmor
		e.MagicalArmor = st.MagicalArmor
	}
	slog.Info("enemy stats refreshed", "difficulty", s.difficulty.Name, "live", s.store.Len())
}

func (s *EnemySimulator) Difficulty() defs.Difficulty {
	return s.difficulty
}

// Snapshot returns a read-only copy of the live enemies in insertion order.
func (s *EnemySimulator) Snapshot() []component.EnemyView {
	return s.store.Snapshot(s.now)
}

// LiveCount returns the number of enemies not yet dead or arrived.
func (s *EnemySimulator) LiveCount() int {
	return s.store.Len()
}

// Reset drops every enemy and restarts the clock. Call between ticks only.
func (s *EnemySimulator) Reset() {
	s.store.Reset()
	s.now = 0
	s.stealth.reset()
	s.done = s.done[:0]
}
