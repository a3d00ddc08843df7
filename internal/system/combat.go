// internal/system/combat.go
package system

import (
	"errors"
	"fmt"
	"log/slog"

	"go-road-defense/internal/component"
	"go-road-defense/internal/config"
	"go-road-defense/internal/defs"
	"go-road-defense/internal/targeting"
	"go-road-defense/pkg/roadmap"
	"go-road-defense/pkg/utils"
)

// ErrNoTower is returned for tower indices out of range.
var ErrNoTower = errors.New("no such tower")

type towerSlot struct {
	component.Tower
	strategy targeting.Strategy
}

// CombatSystem управляет атакой башен. Towers read the enemy snapshot, pick a
// target with their strategy and hit it through the simulator. It also
// answers light queries for the stealth rule.
type CombatSystem struct {
	sim    *EnemySimulator
	towers []towerSlot
}

func NewCombatSystem(sim *EnemySimulator) *CombatSystem {
	return &CombatSystem{sim: sim}
}

// AddTower places a tower at cell. An unknown strategy falls back to First.
func (s *CombatSystem) AddTower(def defs.TowerDefinition, cell roadmap.GridCell) int {
	strategy, err := targeting.ParseStrategy(def.Strategy)
	if err != nil {
		slog.Warn("tower strategy fallback", "tower", def.ID, "err", err)
	}
	x, y := cell.Center(config.TileSize)
	s.towers = append(s.towers, towerSlot{
		Tower:    component.Tower{Def: def, Cell: cell, X: x, Y: y},
		strategy: strategy,
	})
	return len(s.towers) - 1
}

// Towers returns a copy of the placed towers.
func (s *CombatSystem) Towers() []component.Tower {
	out := make([]component.Tower, len(s.towers))
	for i, t := range s.towers {
		out[i] = t.Tower
	}
	return out
}

// Strategy returns the targeting strategy of tower i.
func (s *CombatSystem) Strategy(i int) (targeting.Strategy, error) {
	if i < 0 || i >= len(s.towers) {
		return targeting.First, fmt.Errorf("tower %d: %w", i, ErrNoTower)
	}
	return s.towers[i].strategy, nil
}

// SetStrategy swaps the strategy of one tower; others are unaffected.
func (s *CombatSystem) SetStrategy(i int, strategy targeting.Strategy) error {
	if i < 0 || i >= len(s.towers) {
		return fmt.Errorf("tower %d: %w", i, ErrNoTower)
	}
	s.towers[i].strategy = strategy
	return nil
}

// ClearTowers removes every tower.
func (s *CombatSystem) ClearTowers() {
	s.towers = s.towers[:0]
}

// ResetCooldowns makes every tower ready to fire.
func (s *CombatSystem) ResetCooldowns() {
	for i := range s.towers {
		s.towers[i].FireCooldown = 0
		s.towers[i].TargetID = 0
	}
}

func (s *CombatSystem) Update(speed float64) {
	if speed <= 0 || len(s.towers) == 0 {
		return
	}
	snapshot := s.sim.Snapshot()
	index := make(map[uint64]int, len(snapshot))
	for i, e := range snapshot {
		index[e.ID] = i
	}

	for i := range s.towers {
		t := &s.towers[i]
		if t.FireCooldown > 0 {
			t.FireCooldown -= speed
			if t.FireCooldown > 0 {
				continue
			}
		}

		candidates := targeting.InRange(snapshot, t.X, t.Y, t.Def.Range*config.TileSize)
		target, ok := targeting.Select(t.strategy, candidates)
		if !ok {
			t.TargetID = 0
			continue
		}
		t.TargetID = target.ID
		s.fire(t, target.ID)

		// Убитый в этом тике враг больше не цель для остальных башен.
		if e, ok := s.sim.store.Get(target.ID); ok {
			j := index[target.ID]
			snapshot[j].Health = e.Health
			snapshot[j].Targetable = e.Targetable()
		}
		if t.Def.FireRate > 0 {
			t.FireCooldown += config.TicksPerSecond / t.Def.FireRate
		}
	}
}

func (s *CombatSystem) fire(t *towerSlot, id uint64) {
	if _, _, err := s.sim.ApplyDamage(id, t.Def.Damage, t.Def.Attack); err != nil {
		slog.Debug("tower shot missed", "tower", t.Def.ID, "err", err)
		return
	}
	if t.Def.SlowDuration > 0 {
		_ = s.sim.ApplySlow(id, component.SlowEffect{Duration: t.Def.SlowDuration, Factor: t.Def.SlowFactor})
	}
	if t.Def.FreezeDuration > 0 {
		_ = s.sim.ApplyFreeze(id, component.FreezeEffect{Duration: t.Def.FreezeDuration})
	}
}

// IsLit reports whether (x, y) is inside the light radius of any lit tower.
func (s *CombatSystem) IsLit(x, y float64) bool {
	for _, t := range s.towers {
		if !t.Def.Lit() {
			continue
		}
		if utils.Dist(t.X, t.Y, x, y) <= t.Def.LightRadius*config.TileSize {
			return true
		}
	}
	return false
}
