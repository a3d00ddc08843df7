// pkg/roadmap/grid.go
package roadmap

import (
	"fmt"
	"strings"
)

// Grid is the tile layer of a level, stored row-major.
type Grid struct {
	Cols, Rows int
	Tiles      []TileType
}

// NewGrid creates an empty grid.
func NewGrid(cols, rows int) *Grid {
	return &Grid{Cols: cols, Rows: rows, Tiles: make([]TileType, cols*rows)}
}

// ParseTiles builds a grid from ASCII rows. Short rows are padded with empty tiles.
func ParseTiles(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("tile grid has no rows")
	}
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	g := NewGrid(cols, len(rows))
	for row, line := range rows {
		for col := 0; col < len(line); col++ {
			t, err := TileFromGlyph(line[col])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row, col, err)
			}
			g.Tiles[row*cols+col] = t
		}
	}
	return g, nil
}

// MustParseTiles is ParseTiles for fixed layouts known to be valid.
func MustParseTiles(rows ...string) *Grid {
	g, err := ParseTiles(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// InBounds reports whether the cell lies inside the grid.
func (g *Grid) InBounds(c GridCell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.Cols && c.Row < g.Rows
}

// At returns the tile at c; cells outside the grid are empty.
func (g *Grid) At(c GridCell) TileType {
	if !g.InBounds(c) {
		return TileEmpty
	}
	return g.Tiles[c.Row*g.Cols+c.Col]
}

// Set replaces the tile at c. Out-of-bounds writes are ignored.
func (g *Grid) Set(c GridCell, t TileType) {
	if g.InBounds(c) {
		g.Tiles[c.Row*g.Cols+c.Col] = t
	}
}

// String renders the grid back to level glyphs.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			b.WriteByte(g.Tiles[row*g.Cols+col].Glyph())
		}
		if row < g.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
