package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/nav"
)

// GhostType identifies one of the four ghosts. The value doubles as the
// ghost's index in World and as its decision order within a tick.
type GhostType int

const (
	Blinky GhostType = iota
	Pinky
	Inky
	Clyde
)

// GhostCount is the number of ghosts in play.
const GhostCount = 4

func (t GhostType) String() string {
	switch t {
	case Blinky:
		return "blinky"
	case Pinky:
		return "pinky"
	case Inky:
		return "inky"
	case Clyde:
		return "clyde"
	default:
		return "unknown"
	}
}

// MarshalText encodes the ghost by name.
func (t GhostType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a ghost name.
func (t *GhostType) UnmarshalText(text []byte) error {
	for g := range GhostType(GhostCount) {
		if g.String() == string(text) {
			*t = g
			return nil
		}
	}
	return fmt.Errorf("sim: unknown ghost %q", text)
}

// GhostState is a ghost's behavior mode.
type GhostState int

const (
	Chase GhostState = iota
	Scared
	Dead
)

func (s GhostState) String() string {
	switch s {
	case Chase:
		return "chase"
	case Scared:
		return "scared"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s GhostState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *GhostState) UnmarshalText(text []byte) error {
	for _, v := range []GhostState{Chase, Scared, Dead} {
		if v.String() == string(text) {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("sim: unknown ghost state %q", text)
}

// Policy is how a chasing ghost picks its next move.
type Policy int

const (
	// PolicyDirect paths to Pac-Man's tile.
	PolicyDirect Policy = iota
	// PolicyAmbush paths to a tile ahead of Pac-Man, falling back to direct.
	PolicyAmbush
	// PolicyProbabilistic pursues directly with some probability and
	// wanders otherwise.
	PolicyProbabilistic
)

func (p Policy) String() string {
	switch p {
	case PolicyDirect:
		return "direct"
	case PolicyAmbush:
		return "ambush"
	case PolicyProbabilistic:
		return "probabilistic"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a policy name back to its value.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "direct":
		return PolicyDirect, true
	case "ambush":
		return PolicyAmbush, true
	case "probabilistic":
		return PolicyProbabilistic, true
	default:
		return PolicyDirect, false
	}
}

// Ghost is a pursuing agent.
type Ghost struct {
	Agent
	Type      GhostType
	Policy    Policy
	State     GhostState
	BaseSpeed float64
}

// Mover returns the legality rules for the ghost's current state.
func (g Ghost) Mover() maze.Mover {
	if g.State == Dead {
		return maze.MoverDeadGhost
	}
	return maze.MoverGhost
}

// Speed returns the ghost's speed in its current state.
func (g Ghost) Speed(p Params) float64 {
	switch g.State {
	case Scared:
		return g.BaseSpeed * p.ScaredMultiplier
	case Dead:
		return g.BaseSpeed * p.DeadMultiplier
	default:
		return g.BaseSpeed
	}
}

// decideGhost commits a new direction for a ghost standing on a tile
// boundary. Pac-Man's position is read from the start-of-tick snapshot.
func (w *World) decideGhost(g *Ghost, snap *positions) {
	var (
		dir maze.Dir
		ok  bool
	)

	switch g.State {
	case Dead:
		r := w.search(g.Tile, nav.Home(w.params.Home), maze.MoverDeadGhost)
		switch r.Status {
		case nav.Reached:
			g.State = Chase
			w.log.Debug("ghost revived", "ghost", g.Type, "tile", g.Tile)
			dir, ok = w.chaseMove(g, snap)
		case nav.Found:
			dir, ok = r.Dir, true
		default:
			dir, ok = nav.RandomMove(w.rng, w.grid, g.Tile, maze.MoverDeadGhost)
		}
	case Scared:
		dir, ok = nav.RandomMove(w.rng, w.grid, g.Tile, maze.MoverGhost)
	default:
		dir, ok = w.chaseMove(g, snap)
	}

	if !ok {
		w.log.Warn("no legal move", "agent", g.Type, "tile", g.Tile, "state", g.State)
		g.Dir = maze.DirNone
		return
	}
	g.Dir = dir
}

// chaseMove applies the ghost's pursuit policy. A failed search degrades to
// a uniformly random legal move.
func (w *World) chaseMove(g *Ghost, snap *positions) (maze.Dir, bool) {
	switch g.Policy {
	case PolicyAmbush:
		if d, ok := w.pathTo(g, nav.Pos(w.ambushTile(snap.pacman))); ok {
			return d, true
		}
		if d, ok := w.pathTo(g, nav.Pacman(snap.pacman.Tile)); ok {
			return d, true
		}
	case PolicyProbabilistic:
		if w.rng.Float64() < w.params.ChaseProbability {
			if d, ok := w.pathTo(g, nav.Pacman(snap.pacman.Tile)); ok {
				return d, true
			}
		}
	default:
		if d, ok := w.pathTo(g, nav.Pacman(snap.pacman.Tile)); ok {
			return d, true
		}
	}
	return nav.RandomMove(w.rng, w.grid, g.Tile, g.Mover())
}

func (w *World) pathTo(g *Ghost, t nav.Target) (maze.Dir, bool) {
	r := w.search(g.Tile, t, g.Mover())
	return r.Dir, r.OK()
}

// ambushTile projects Pac-Man's heading AmbushLookahead tiles ahead and
// clamps the result to the grid.
func (w *World) ambushTile(pac Agent) maze.Coord {
	dx, dy := pac.Dir.Delta()
	n := w.params.AmbushLookahead
	return maze.C(
		core.Clamp(pac.Tile.X+dx*n, 0, w.grid.Cols()-1),
		core.Clamp(pac.Tile.Y+dy*n, 0, w.grid.Rows()-1),
	)
}
