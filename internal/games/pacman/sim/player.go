package sim

import (
	"math"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/nav"
)

// Player is Pac-Man.
type Player struct {
	Agent

	// Manual is false while the autopilot (attract mode) drives. The first
	// directional input flips it for good.
	Manual bool
	// Queued is the last requested direction in manual mode. It stays queued
	// until it can be taken.
	Queued maze.Dir

	Powered    bool
	PowerTimer int
}

// Queue records a directional request and hands control to the player.
func (p *Player) Queue(d maze.Dir) {
	if d == maze.DirNone {
		return
	}
	p.Manual = true
	p.Queued = d
}

// decidePlayer picks Pac-Man's direction on a tile boundary.
func (w *World) decidePlayer(snap *positions) {
	p := &w.player
	if p.Manual {
		// A turn into a wall is ignored and retried on the next boundary.
		if p.Queued != maze.DirNone && w.grid.CanMove(p.Tile, p.Queued, maze.MoverPacman) {
			p.Dir = p.Queued
		}
		return
	}

	dir, ok := w.autopilot(snap)
	if !ok {
		w.log.Warn("no legal move", "agent", "pacman", "tile", p.Tile)
		p.Dir = maze.DirNone
		return
	}
	p.Dir = dir
}

// autopilot is the attract-mode controller: flee nearby chasing ghosts,
// otherwise head for a power pellet while unpowered, otherwise the nearest
// dot, otherwise wander.
func (w *World) autopilot(snap *positions) (maze.Dir, bool) {
	p := &w.player

	if w.inDanger(p.Tile, snap) {
		if d, ok := w.evade(snap); ok {
			return d, true
		}
	}
	if !p.Powered {
		if r := w.search(p.Tile, nav.Power(), maze.MoverPacman); r.OK() {
			return r.Dir, true
		}
	}
	if r := w.search(p.Tile, nav.Dot(), maze.MoverPacman); r.OK() {
		return r.Dir, true
	}
	return nav.RandomMove(w.rng, w.grid, p.Tile, maze.MoverPacman)
}

func (w *World) inDanger(at maze.Coord, snap *positions) bool {
	return w.nearestGhost(at, snap, true) < w.params.DangerRadius
}

// nearestGhost returns the distance from c to the closest ghost, or +Inf
// when there is none. With chasing set, only ghosts in Chase count.
func (w *World) nearestGhost(c maze.Coord, snap *positions, chasing bool) float64 {
	best := math.Inf(1)
	for _, g := range snap.ghosts {
		if chasing && g.State != Chase {
			continue
		}
		if d := tileVec(c).Dist(tileVec(g.Tile)); d < best {
			best = d
		}
	}
	return best
}

// evade scores every legal move by the distance it leaves to the nearest
// ghost of any state, penalizing a reversal. Ties keep maze.SearchOrder.
func (w *World) evade(snap *positions) (maze.Dir, bool) {
	p := &w.player
	var (
		best  = maze.DirNone
		score = math.Inf(-1)
	)
	for _, d := range nav.LegalMoves(w.grid, p.Tile, maze.MoverPacman) {
		next, _, _ := w.grid.Neighbor(p.Tile, d)
		s := w.nearestGhost(next, snap, false)
		if d == p.Dir.Opposite() {
			s -= w.params.ReversePenalty
		}
		if s > score {
			best, score = d, s
		}
	}
	return best, best != maze.DirNone
}
