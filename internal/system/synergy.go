// internal/system/synergy.go
package system

import (
	"go-road-defense/internal/component"
	"go-road-defense/internal/config"
	"go-road-defense/internal/entity"
	"go-road-defense/pkg/utils"
)

// applySynergy grants every heavy enemy standing within one tile of a fast
// enemy a speed bonus keyed to the nearest such fast enemy. The bonus is
// revoked when no fast enemy is near. Runs before movement, so every distance
// uses start-of-tick positions.
func applySynergy(store *entity.Store, ratio float64) {
	var fast []*component.Enemy
	for i := 0; i < store.Slots(); i++ {
		e := store.At(i)
		if e.Active() && e.Type.Fast() {
			fast = append(fast, e)
		}
	}

	for i := 0; i < store.Slots(); i++ {
		e := store.At(i)
		if !e.Active() || !e.Type.Heavy() {
			continue
		}
		e.SynergyBonus = 0

		var nearest *component.Enemy
		best := config.TileSize
		for _, f := range fast {
			d := utils.Dist(e.X, e.Y, f.X, f.Y)
			// первый найденный выигрывает при равенстве
			if d <= best && (nearest == nil || d < best) {
				nearest = f
				best = d
			}
		}
		if nearest != nil {
			e.SynergyBonus = nearest.Speed * ratio
		}
	}
}
