// internal/component/enemy.go
package component

import "go-road-defense/internal/defs"

// Enemy представляет вражескую сущность. It lives in entity.Store and is
// mutated only by the enemy simulator. Timestamps are in scaled ticks.
type Enemy struct {
	ID   uint64
	Type defs.EnemyType
	Size defs.SizeClass

	// Позиция в мировых координатах и индекс текущей точки пути.
	X, Y      float64
	PathIndex int

	Health        int
	MaxHealth     int
	Speed         float64 // tiles per second, difficulty already applied
	Gold          int
	LifeCost      int
	PhysicalArmor int
	MagicalArmor  int

	Alive      bool
	ReachedEnd bool
	Removed    bool // tombstone, compacted at the end of the tick
	Handled    bool // death or arrival side effects already fired

	SlowedUntil  float64
	SlowFactor   float64
	FrozenUntil  float64
	Invisible    bool
	SynergyBonus float64 // tiles per second granted by a nearby fast enemy

	SpawnedAt float64
}

// Active reports whether the enemy still takes part in the simulation.
func (e *Enemy) Active() bool {
	return e.Alive && !e.ReachedEnd && !e.Removed
}

// Targetable reports whether towers may select the enemy. An enemy with no
// health left waits for removal and is skipped.
func (e *Enemy) Targetable() bool {
	return e.Active() && !e.Invisible && e.Health > 0
}

// IsSlowed reports whether a slow is running at tick now.
func (e *Enemy) IsSlowed(now float64) bool {
	return now < e.SlowedUntil
}

// IsFrozen reports whether a freeze is running at tick now.
func (e *Enemy) IsFrozen(now float64) bool {
	return now < e.FrozenUntil
}

// EnemyView is the read-only snapshot handed to targeting, rendering and UI.
type EnemyView struct {
	ID         uint64
	Type       defs.EnemyType
	Size       defs.SizeClass
	X, Y       float64
	PathIndex  int
	Health     int
	MaxHealth  int
	Alive      bool
	Targetable bool
	Invisible  bool
	Slowed     bool
	Frozen     bool
	Buffed     bool
}

// View copies the externally visible state.
func (e *Enemy) View(now float64) EnemyView {
	return EnemyView{
		ID:         e.ID,
		Type:       e.Type,
		Size:       e.Size,
		X:          e.X,
		Y:          e.Y,
		PathIndex:  e.PathIndex,
		Health:     e.Health,
		MaxHealth:  e.MaxHealth,
		Alive:      e.Active(),
		Targetable: e.Targetable(),
		Invisible:  e.Invisible,
		Slowed:     e.IsSlowed(now),
		Frozen:     e.IsFrozen(now),
		Buffed:     e.SynergyBonus > 0,
	}
}
