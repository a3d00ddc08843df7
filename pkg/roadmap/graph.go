// pkg/roadmap/graph.go
package roadmap

// Edge is a directed connection to a neighboring road cell.
type Edge struct {
	To  GridCell
	Dir Direction
}

// Graph is the directed road connectivity graph of a level.
// It is built once and never modified afterwards.
type Graph struct {
	nodes map[GridCell][]Edge
}

// BuildGraph walks the grid once and links every pair of adjacent road tiles
// that pass the two-sided connectivity check. Edges are stored in the fixed
// direction order E, S, W, N.
func BuildGraph(g *Grid) *Graph {
	graph := &Graph{nodes: make(map[GridCell][]Edge)}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cell := GridCell{Col: col, Row: row}
			tile := g.At(cell)
			if !tile.IsRoad() {
				continue
			}
			edges := make([]Edge, 0, 4)
			for _, d := range Directions {
				next := cell.Step(d)
				if !g.InBounds(next) {
					continue
				}
				if Connects(tile, g.At(next), d) {
					edges = append(edges, Edge{To: next, Dir: d})
				}
			}
			graph.nodes[cell] = edges
		}
	}
	return graph
}

// HasNode reports whether the cell is a road tile of the graph.
func (g *Graph) HasNode(c GridCell) bool {
	_, ok := g.nodes[c]
	return ok
}

// Edges returns the outgoing edges of c in direction order.
func (g *Graph) Edges(c GridCell) []Edge {
	return g.nodes[c]
}

// HasEdge reports whether a directed edge from a to b exists.
func (g *Graph) HasEdge(a, b GridCell) bool {
	for _, e := range g.nodes[a] {
		if e.To == b {
			return true
		}
	}
	return false
}

// NodeCount returns the number of road cells.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}
