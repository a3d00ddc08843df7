// internal/system/movement.go
package system

import (
	"math"

	"go-road-defense/internal/component"
	"go-road-defense/internal/config"
	"go-road-defense/pkg/roadmap"
)

// Waypoint is the world position of one path cell.
type Waypoint struct {
	X, Y float64
}

// Waypoints converts a grid path to cell centers.
func Waypoints(path roadmap.Path, tileSize float64) []Waypoint {
	out := make([]Waypoint, len(path))
	for i, c := range path {
		out[i].X, out[i].Y = c.Center(tileSize)
	}
	return out
}

// stepLength returns the distance covered in one tick. Speed is in tiles per
// second, the result is in world units.
func stepLength(e *component.Enemy, speed, weather, slow float64) float64 {
	tilesPerSecond := e.Speed + e.SynergyBonus
	return tilesPerSecond * config.TileSize / config.TicksPerSecond * speed * weather * slow
}

// moveAlongPath двигает врага к следующей точке пути. Если до точки ближе,
// чем шаг за тик, враг встаёт в неё и индекс сдвигается; перелёта нет.
func moveAlongPath(e *component.Enemy, points []Waypoint, step float64) {
	if step <= 0 || e.PathIndex+1 >= len(points) {
		return
	}
	target := points[e.PathIndex+1]
	dx := target.X - e.X
	dy := target.Y - e.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	if dist <= step {
		e.X = target.X
		e.Y = target.Y
		e.PathIndex++
		return
	}
	e.X += (dx / dist) * step
	e.Y += (dy / dist) * step
}
