// pkg/roadmap/pathfinding.go
package roadmap

import (
	"container/heap"
	"errors"
)

var (
	ErrStartNotOnRoad = errors.New("start cell is not on the road graph")
	ErrEndNotOnRoad   = errors.New("end cell is not on the road graph")
	ErrNoRoute        = errors.New("no route between start and end")
)

// Path is an ordered list of cells from a level's start to its end.
type Path []GridCell

// Last returns the final cell of a non-empty path.
func (p Path) Last() GridCell {
	return p[len(p)-1]
}

// FindPath runs A* and returns the empty path when no route exists.
func FindPath(g *Graph, start, goal GridCell) Path {
	path, _ := FindRoute(g, start, goal)
	return path
}

// FindRoute is FindPath with the reason for an empty result.
// Frontier ties are broken by push order, and neighbors are pushed
// in E, S, W, N order, so the result is deterministic.
func FindRoute(g *Graph, start, goal GridCell) (Path, error) {
	if !g.HasNode(start) {
		return nil, ErrStartNotOnRoad
	}
	if !g.HasNode(goal) {
		return nil, ErrEndNotOnRoad
	}
	if start == goal {
		return Path{start}, nil
	}

	pq := &PriorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &Node{Cell: start, Cost: start.Distance(goal), Seq: seq})
	costSoFar := map[GridCell]int{start: 0}
	closed := make(map[GridCell]bool)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if closed[current.Cell] {
			continue
		}
		if current.Cell == goal {
			return reconstructPath(current), nil
		}
		closed[current.Cell] = true

		for _, e := range g.Edges(current.Cell) {
			if closed[e.To] {
				continue
			}
			newCost := costSoFar[current.Cell] + 1
			if old, exists := costSoFar[e.To]; exists && newCost >= old {
				continue
			}
			costSoFar[e.To] = newCost
			seq++
			heap.Push(pq, &Node{
				Cell:   e.To,
				Cost:   newCost + e.To.Distance(goal),
				Seq:    seq,
				Parent: current,
			})
		}
	}
	return nil, ErrNoRoute
}

// Node is a frontier entry of the A* search.
type Node struct {
	Cell   GridCell
	Cost   int // g + h
	Seq    int
	Parent *Node
}

// PriorityQueue для A*
type PriorityQueue []*Node

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Cost != pq[j].Cost {
		return pq[i].Cost < pq[j].Cost
	}
	return pq[i].Seq < pq[j].Seq
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x any) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) Path {
	var path Path
	for n := node; n != nil; n = n.Parent {
		path = append(path, n.Cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
