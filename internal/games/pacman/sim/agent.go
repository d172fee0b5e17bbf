package sim

import (
	"math"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// Vec is a continuous position in tile units.
type Vec struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two positions.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

func tileVec(c maze.Coord) Vec {
	return Vec{X: float64(c.X), Y: float64(c.Y)}
}

// Agent is the movement state shared by Pac-Man and the ghosts.
// Tile is the last tile the agent fully entered; Progress in [0,1) is how far
// it has travelled from there towards the neighbor in Dir.
type Agent struct {
	Tile     maze.Coord
	Dir      maze.Dir
	Progress float64
}

// AtBoundary reports whether the agent sits exactly on its tile and may
// choose a new direction.
func (a Agent) AtBoundary() bool {
	return a.Progress == 0
}

// Interpolated returns the agent's continuous position. It is used for
// distance checks only; legality is always decided on whole tiles.
func (a Agent) Interpolated() Vec {
	dx, dy := a.Dir.Delta()
	return Vec{
		X: float64(a.Tile.X) + float64(dx)*a.Progress,
		Y: float64(a.Tile.Y) + float64(dy)*a.Progress,
	}
}

// Advance moves the agent speed tiles along Dir. An agent on a boundary whose
// next tile is closed to m halts and drops its direction. entered is true when
// the agent crossed into a new tile this call; tunnel rows wrap.
func (a *Agent) Advance(g *maze.Grid, speed float64, m maze.Mover) (entered bool) {
	if a.Dir == maze.DirNone {
		return false
	}
	if a.AtBoundary() && !g.CanMove(a.Tile, a.Dir, m) {
		a.Dir = maze.DirNone
		return false
	}

	a.Progress += speed
	if a.Progress < 1 {
		return false
	}

	next, _, _ := g.Neighbor(a.Tile, a.Dir)
	a.Tile = next
	a.Progress = 0
	return true
}

// place puts the agent on c, at rest on the boundary.
func (a *Agent) place(c maze.Coord, d maze.Dir) {
	a.Tile = c
	a.Dir = d
	a.Progress = 0
}
