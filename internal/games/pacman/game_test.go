package pacman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

func newGame(t *testing.T, w, h int, opts ...Option) *Game {
	t.Helper()
	g, err := New(config.DefaultPacmanConfig(), opts...)
	require.NoError(t, err)
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 42})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultPacmanConfig()
	cfg.Rules.ExpansionCap = 0

	_, err := New(cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestGameStartsInAttractMode(t *testing.T) {
	g := newGame(t, 80, 40)

	for range 30 {
		g.Step(input())
	}
	assert.True(t, g.State().Attract)
	assert.Equal(t, uint64(30), g.World().Tick())

	g.Step(input(core.ActionUp, core.ActionLeft))
	st := g.State()
	assert.False(t, st.Attract)
	assert.Equal(t, maze.DirLeft, g.World().Player().Queued, "latest direction of the frame wins")
}

func TestGamePause(t *testing.T) {
	g := newGame(t, 80, 40)
	g.Step(input())

	res := g.Step(input(core.ActionPause))
	require.True(t, res.State.Paused)
	tick := g.World().Tick()

	for range 10 {
		g.Step(input(core.ActionRight))
	}
	assert.Equal(t, tick, g.World().Tick(), "paused world does not advance")
	assert.True(t, g.State().Attract, "input while paused is dropped")

	res = g.Step(input(core.ActionPause))
	assert.False(t, res.State.Paused)
	assert.Equal(t, tick+1, g.World().Tick())
}

func TestGameRestart(t *testing.T) {
	g := newGame(t, 80, 40)
	g.Step(input(core.ActionDown))
	for range 50 {
		g.Step(input())
	}
	require.False(t, g.State().Attract)

	g.Step(input(core.ActionRestart))
	assert.True(t, g.State().Attract)
	assert.Equal(t, uint64(1), g.World().Tick())
}

func TestGameTooSmall(t *testing.T) {
	g := newGame(t, 20, 10)
	require.True(t, g.State().TooSmall)

	g.Step(input())
	assert.Zero(t, g.World().Tick())

	s := core.NewScreen(20, 10)
	g.Render(s)
	assert.Contains(t, s.String(), "Window too small")

	g.Resize(80, 40)
	assert.False(t, g.State().TooSmall)
	g.Step(input())
	assert.Equal(t, uint64(1), g.World().Tick())
}

func TestRenderDrawsMazeAndAgents(t *testing.T) {
	g := newGame(t, 60, 34)
	s := core.NewScreen(60, 34)
	g.Render(s)

	out := s.String()
	assert.Contains(t, out, "PAC-MAN")
	assert.Contains(t, out, "ATTRACT MODE")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "·")
	assert.Equal(t, 4, strings.Count(out, "Ѡ"), "all four ghosts drawn")

	// Pac-Man spawns at (13,23) facing left; cells are two columns wide.
	l := g.layout()
	x, y := l.offX+13*l.cellW, l.offY+23
	cell := s.GetCell(x, y)
	assert.Equal(t, core.ColorPacman, cell.Color)
	assert.Equal(t, 'ᗤ', cell.Rune)
}

func TestRenderManualBannerAndPause(t *testing.T) {
	g := newGame(t, 60, 34)
	g.Step(input(core.ActionLeft))
	g.Step(input(core.ActionPause))

	s := core.NewScreen(60, 34)
	g.Render(s)
	out := s.String()
	assert.NotContains(t, out, "ATTRACT MODE")
	assert.Contains(t, out, "PAUSED")
}

func TestEventsReachSink(t *testing.T) {
	var kinds []sim.EventKind
	g := newGame(t, 80, 40, WithSink(sim.SinkFunc(func(e sim.Event) { kinds = append(kinds, e.Kind) })))

	for range 600 {
		g.Step(input())
	}
	assert.Contains(t, kinds, sim.EventDotEaten)
}

func TestBuildCustomMaze(t *testing.T) {
	cfg := config.DefaultPacmanConfig()
	cfg.Maze = config.MazeConfig{
		Layout: []string{
			"#########",
			"#...o...#",
			"#.#-#-#.#",
			"#. . . .#",
			"#########",
		},
		PacmanSpawn: config.Point{X: 1, Y: 1},
		GhostSpawns: []config.Point{{X: 3, Y: 3}, {X: 5, Y: 3}, {X: 7, Y: 3}, {X: 1, Y: 3}},
		Home:        config.Point{X: 3, Y: 3},
	}

	p, grid, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, 9, grid.Cols())
	assert.Equal(t, maze.C(1, 1), p.PacmanSpawn)
	assert.Equal(t, maze.C(7, 3), p.Ghosts[sim.Inky].Spawn)
	assert.Equal(t, sim.PolicyAmbush, p.Ghosts[sim.Pinky].Policy)

	cfg.Maze.PacmanSpawn = config.Point{X: 0, Y: 0}
	_, _, err = Build(cfg)
	assert.ErrorIs(t, err, maze.ErrBadLayout)

	cfg.Maze.Layout[0] = "#### ####"
	_, _, err = Build(cfg)
	assert.ErrorIs(t, err, maze.ErrBadLayout)
}
