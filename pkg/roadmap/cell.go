// pkg/roadmap/cell.go
package roadmap

import (
	"fmt"

	"go-road-defense/pkg/utils"
)

// GridCell identifies a tile by column and row. Row grows to the south.
type GridCell struct {
	Col, Row int
}

func (c GridCell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Direction is one of the four road directions.
type Direction uint8

const (
	East Direction = iota
	South
	West
	North
)

// Directions is the fixed expansion order. Pathfinding and gate resolution
// depend on it for deterministic results.
var Directions = [4]Direction{East, South, West, North}

var directionOffsets = [4]GridCell{
	East:  {Col: 1, Row: 0},
	South: {Col: 0, Row: 1},
	West:  {Col: -1, Row: 0},
	North: {Col: 0, Row: -1},
}

var directionNames = [4]string{"E", "S", "W", "N"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "?"
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// bit returns the mask bit used by tile connectivity tables.
func (d Direction) bit() uint8 {
	return 1 << d
}

// Step returns the neighbor of c in direction d.
func (c GridCell) Step(d Direction) GridCell {
	o := directionOffsets[d]
	return GridCell{Col: c.Col + o.Col, Row: c.Row + o.Row}
}

// Add возвращает сумму двух клеток
func (c GridCell) Add(other GridCell) GridCell {
	return GridCell{Col: c.Col + other.Col, Row: c.Row + other.Row}
}

// Distance is the Manhattan distance, the A* heuristic for 4-way movement.
func (c GridCell) Distance(to GridCell) int {
	return utils.Abs(c.Col-to.Col) + utils.Abs(c.Row-to.Row)
}

// DirectionTo reports the direction from c to an adjacent cell.
func (c GridCell) DirectionTo(to GridCell) (Direction, bool) {
	for _, d := range Directions {
		if c.Step(d) == to {
			return d, true
		}
	}
	return 0, false
}

// Center returns the world position of the cell center for the given tile size.
func (c GridCell) Center(tileSize float64) (x, y float64) {
	x = (float64(c.Col) + 0.5) * tileSize
	y = (float64(c.Row) + 0.5) * tileSize
	return
}

// CellAt converts a world position back to the cell containing it.
func CellAt(x, y, tileSize float64) GridCell {
	return GridCell{Col: utils.FloorDiv(x, tileSize), Row: utils.FloorDiv(y, tileSize)}
}
