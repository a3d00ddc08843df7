// pkg/roadmap/tiles.go
package roadmap

import "fmt"

// TileType is the closed set of tile kinds a level grid is made of.
type TileType uint8

const (
	TileEmpty TileType = iota
	TileGate
	TileHorizontal
	TileVertical
	TileCross
	TileCornerES // ┌
	TileCornerWS // ┐
	TileCornerEN // └
	TileCornerWN // ┘
	TileTeeS     // ┬
	TileTeeN     // ┴
	TileTeeE     // ├
	TileTeeW     // ┤
	TileOneWayEast
	TileOneWayWest
	TileOneWaySouth
	TileOneWayNorth
	tileTypeCount
)

// tileRule describes which sides of a tile can be left and which can be entered.
type tileRule struct {
	glyph   byte
	exits   uint8
	entries uint8
}

func both(dirs ...Direction) (uint8, uint8) {
	var m uint8
	for _, d := range dirs {
		m |= d.bit()
	}
	return m, m
}

var tileRules [tileTypeCount]tileRule

func init() {
	set := func(t TileType, glyph byte, exits, entries uint8) {
		tileRules[t] = tileRule{glyph: glyph, exits: exits, entries: entries}
	}
	set(TileEmpty, '.', 0, 0)
	set(TileGate, 'G', 0, 0)

	ex, en := both(East, West)
	set(TileHorizontal, '-', ex, en)
	ex, en = both(North, South)
	set(TileVertical, '|', ex, en)
	ex, en = both(East, South, West, North)
	set(TileCross, '+', ex, en)
	ex, en = both(East, South)
	set(TileCornerES, 'r', ex, en)
	ex, en = both(West, South)
	set(TileCornerWS, '7', ex, en)
	ex, en = both(East, North)
	set(TileCornerEN, 'L', ex, en)
	ex, en = both(West, North)
	set(TileCornerWN, 'J', ex, en)
	ex, en = both(East, West, South)
	set(TileTeeS, 'T', ex, en)
	ex, en = both(East, West, North)
	set(TileTeeN, 'A', ex, en)
	ex, en = both(North, South, East)
	set(TileTeeE, 'E', ex, en)
	ex, en = both(North, South, West)
	set(TileTeeW, '3', ex, en)

	// Односторонние дороги: въезд с одной стороны, выезд с противоположной.
	set(TileOneWayEast, '>', East.bit(), West.bit())
	set(TileOneWayWest, '<', West.bit(), East.bit())
	set(TileOneWaySouth, 'v', South.bit(), North.bit())
	set(TileOneWayNorth, '^', North.bit(), South.bit())
}

// IsRoad reports whether any movement can start or end on the tile.
func (t TileType) IsRoad() bool {
	if t >= tileTypeCount {
		return false
	}
	r := tileRules[t]
	return r.exits != 0 || r.entries != 0
}

// CanExit reports whether the tile lets movement leave through side d.
func (t TileType) CanExit(d Direction) bool {
	return t < tileTypeCount && tileRules[t].exits&d.bit() != 0
}

// CanEnter reports whether movement can enter the tile through side d.
func (t TileType) CanEnter(d Direction) bool {
	return t < tileTypeCount && tileRules[t].entries&d.bit() != 0
}

// Glyph returns the ASCII character used in level files.
func (t TileType) Glyph() byte {
	if t >= tileTypeCount {
		return '?'
	}
	return tileRules[t].glyph
}

func (t TileType) String() string {
	return string(t.Glyph())
}

// Connects applies the two-sided rule for a move from tile a to tile b in direction d.
func Connects(a, b TileType, d Direction) bool {
	return a.CanExit(d) && b.CanEnter(d.Opposite())
}

// TileFromGlyph parses a single level glyph. Space is treated as empty.
func TileFromGlyph(g byte) (TileType, error) {
	if g == ' ' {
		return TileEmpty, nil
	}
	for t := TileType(0); t < tileTypeCount; t++ {
		if tileRules[t].glyph == g {
			return t, nil
		}
	}
	return TileEmpty, fmt.Errorf("unknown tile glyph %q", g)
}
