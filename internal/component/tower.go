// internal/component/tower.go
package component

import (
	"go-road-defense/internal/defs"
	"go-road-defense/pkg/roadmap"
)

// Tower is a placed tower. Towers sit outside the enemy simulation and only
// read its snapshot.
type Tower struct {
	Def          defs.TowerDefinition
	Cell         roadmap.GridCell
	X, Y         float64 // center in world units
	FireCooldown float64 // scaled ticks until the next shot
	TargetID     uint64  // last selected enemy, 0 when idle
}
