// Package nav implements the bounded breadth-first search shared by every
// autonomous agent, plus helpers for enumerating legal moves.
package nav

import "github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"

// DefaultExpansionCap bounds a single search on the reference map.
const DefaultExpansionCap = 600

// Status is the outcome of a search.
type Status uint8

const (
	// Unreachable means the cap was hit or the frontier emptied first.
	Unreachable Status = iota
	// Reached means the start tile already satisfies the target.
	Reached
	// Found means a matching tile was reached; Dir holds the first step.
	Found
)

func (s Status) String() string {
	switch s {
	case Reached:
		return "reached"
	case Found:
		return "found"
	default:
		return "unreachable"
	}
}

// Result is what Find returns. Only the first step of the path is kept.
type Result struct {
	Status   Status
	Dir      maze.Dir
	Goal     maze.Coord
	Expanded int
}

// OK reports whether the search produced a direction to move in.
func (r Result) OK() bool {
	return r.Status == Found
}

type node struct {
	at    maze.Coord
	first maze.Dir
}

// Find runs a breadth-first search from start for the nearest tile matching
// target, using the legality rules of mover m. At most expansionCap nodes are
// expanded; a cap of zero or less returns Unreachable without touching the
// grid.
//
// Neighbors are visited in maze.SearchOrder, which fixes the tie-break
// between equally short paths. Tunnel wrap edges are never followed even
// though agents may walk through them.
func Find(g *maze.Grid, start maze.Coord, target Target, m maze.Mover, expansionCap int) Result {
	res := Result{Status: Unreachable}
	if expansionCap <= 0 || !g.InBounds(start) {
		return res
	}

	visited := make([]bool, g.Cols()*g.Rows())
	visited[start.Y*g.Cols()+start.X] = true

	queue := make([]node, 0, 64)
	queue = append(queue, node{at: start, first: maze.DirNone})

	for len(queue) > 0 && res.Expanded < expansionCap {
		cur := queue[0]
		queue = queue[1:]
		res.Expanded++

		if target.Match(g, cur.at) {
			res.Goal = cur.at
			res.Dir = cur.first
			if cur.first == maze.DirNone {
				res.Status = Reached
			} else {
				res.Status = Found
			}
			return res
		}

		for _, d := range maze.SearchOrder {
			n, wrapped, ok := g.Neighbor(cur.at, d)
			if !ok || wrapped {
				continue
			}
			idx := n.Y*g.Cols() + n.X
			if visited[idx] || !g.At(n).Caps().Allows(m, d) {
				continue
			}
			visited[idx] = true

			first := cur.first
			if first == maze.DirNone {
				first = d
			}
			queue = append(queue, node{at: n, first: first})
		}
	}

	return res
}
