package nav

import "github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"

// Rand is the subset of *rand.Rand used for move selection.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// LegalMoves lists the directions mover m may take from c, tunnel edges
// included, in maze.SearchOrder.
func LegalMoves(g *maze.Grid, c maze.Coord, m maze.Mover) []maze.Dir {
	moves := make([]maze.Dir, 0, 4)
	for _, d := range maze.SearchOrder {
		if g.CanMove(c, d, m) {
			moves = append(moves, d)
		}
	}
	return moves
}

// RandomMove picks a uniformly random legal move from c.
// ok is false when no legal move exists.
func RandomMove(rng Rand, g *maze.Grid, c maze.Coord, m maze.Mover) (maze.Dir, bool) {
	moves := LegalMoves(g, c, m)
	if len(moves) == 0 {
		return maze.DirNone, false
	}
	return moves[rng.Intn(len(moves))], true
}
