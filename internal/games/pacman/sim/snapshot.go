package sim

import (
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// AgentFrame is the render view of one agent.
type AgentFrame struct {
	Tile     maze.Coord `json:"tile"`
	Dir      maze.Dir   `json:"dir"`
	Progress float64    `json:"progress"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
}

// PacmanFrame adds Pac-Man's flags to AgentFrame.
type PacmanFrame struct {
	AgentFrame
	Manual     bool `json:"manual"`
	Powered    bool `json:"powered"`
	PowerTimer int  `json:"power_timer"`
}

// GhostFrame adds a ghost's identity and state to AgentFrame.
type GhostFrame struct {
	AgentFrame
	Type  GhostType  `json:"type"`
	State GhostState `json:"state"`
}

// Frame is a self-contained copy of the world for renderers and spectators.
// It shares no memory with the World.
type Frame struct {
	Tick    uint64                 `json:"tick"`
	Cols    int                    `json:"cols"`
	Rows    int                    `json:"rows"`
	Tiles   []maze.Tile            `json:"-"`
	Pellets int                    `json:"pellets"`
	Pacman  PacmanFrame            `json:"pacman"`
	Ghosts  [GhostCount]GhostFrame `json:"ghosts"`
	Frozen  bool                   `json:"frozen"`
	Levels  int                    `json:"levels"`
	Deaths  int                    `json:"deaths"`
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Frame {
	f := Frame{
		Tick:    w.tick,
		Cols:    w.grid.Cols(),
		Rows:    w.grid.Rows(),
		Tiles:   w.grid.Tiles(),
		Pellets: w.grid.PelletCount(),
		Pacman: PacmanFrame{
			AgentFrame: agentFrame(&w.player.Agent),
			Manual:     w.player.Manual,
			Powered:    w.player.Powered,
			PowerTimer: w.player.PowerTimer,
		},
		Frozen: w.Frozen(),
		Levels: w.levels,
		Deaths: w.deaths,
	}
	for i := range w.ghosts {
		g := &w.ghosts[i]
		f.Ghosts[i] = GhostFrame{
			AgentFrame: agentFrame(&g.Agent),
			Type:       g.Type,
			State:      g.State,
		}
	}
	return f
}

func agentFrame(a *Agent) AgentFrame {
	v := a.Interpolated()
	return AgentFrame{
		Tile:     a.Tile,
		Dir:      a.Dir,
		Progress: a.Progress,
		X:        v.X,
		Y:        v.Y,
	}
}

// At returns the tile at (x, y) in the frame, or Wall outside it.
func (f Frame) At(x, y int) maze.Tile {
	if x < 0 || x >= f.Cols || y < 0 || y >= f.Rows {
		return maze.Wall
	}
	return f.Tiles[y*f.Cols+x]
}

// Layout renders the frame's tiles in layout notation, one string per row.
func (f Frame) Layout() []string {
	rows := make([]string, f.Rows)
	var sb strings.Builder
	for y := range f.Rows {
		sb.Reset()
		for x := range f.Cols {
			sb.WriteRune(f.At(x, y).Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}
