// pkg/roadmap/validate.go
package roadmap

import (
	"errors"
	"fmt"
)

// StepError describes one disconnected step of a path.
type StepError struct {
	Index    int
	From, To GridCell
	FromTile TileType
	ToTile   TileType
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d %v[%v] -> %v[%v] is not connected", e.Index, e.From, e.FromTile, e.To, e.ToTile)
}

// ValidatePath re-walks a path and checks every consecutive pair against the
// tile connectivity rule. It only reports: callers keep using the path.
func ValidatePath(grid *Grid, path Path) error {
	var errs []error
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		d, adjacent := a.DirectionTo(b)
		if adjacent && Connects(grid.At(a), grid.At(b), d) {
			continue
		}
		errs = append(errs, &StepError{
			Index:    i,
			From:     a,
			To:       b,
			FromTile: grid.At(a),
			ToTile:   grid.At(b),
		})
	}
	return errors.Join(errs...)
}

// ResolveEnd returns the effective end cell. When the marker sits on a gate
// tile the first road neighbor in E, S, W, N order is used instead.
func ResolveEnd(grid *Grid, g *Graph, end GridCell) (GridCell, bool) {
	if grid.At(end) != TileGate {
		return end, g.HasNode(end)
	}
	for _, d := range Directions {
		n := end.Step(d)
		if g.HasNode(n) {
			return n, true
		}
	}
	return end, false
}
