// Package pacman adapts the pursuit simulation to the platform: it maps
// input frames to simulation input, owns pause, and draws frames into a
// core.Screen.
package pacman

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

// Option configures a Game.
type Option func(*Game)

// WithSink forwards simulation events, typically to the audio player.
func WithSink(s sim.Sink) Option {
	return func(g *Game) { g.sink = s }
}

// WithLogger sets the logger handed to the simulation.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// Game implements core.Game.
type Game struct {
	params sim.Params
	maze   *maze.Grid // pristine copy; every Reset clones it
	sink   sim.Sink
	log    *log.Logger

	world *sim.World
	rng   *rand.Rand

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New builds a game from cfg. The configuration is checked here so Reset
// cannot fail later.
func New(cfg config.PacmanConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	params, grid, err := Build(cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{
		params: params,
		maze:   grid,
		log:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pacman"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Reset starts a fresh world in attract mode.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.world = sim.New(g.maze.Clone(), g.params, g.rng.Int63(),
		sim.WithSink(g.sink),
		sim.WithLogger(g.log),
	)
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the new screen size. The simulation keeps running at any
// size; it is only paused while the maze does not fit.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < g.maze.Cols() || h < g.maze.Rows()+hudRows
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.world.Reset()
		g.paused = false
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.world.Step(sim.Input{Dir: direction(in.LastDirection())})
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	p := g.world.Player()
	return core.GameState{
		Paused:   g.paused,
		Attract:  !p.Manual,
		Frozen:   g.world.Frozen(),
		TooSmall: g.tooSmall,
		Levels:   g.world.Levels(),
		Deaths:   g.world.Deaths(),
	}
}

// World exposes the running simulation.
func (g *Game) World() *sim.World {
	return g.world
}

func direction(a core.Action) maze.Dir {
	switch a {
	case core.ActionUp:
		return maze.DirUp
	case core.ActionDown:
		return maze.DirDown
	case core.ActionLeft:
		return maze.DirLeft
	case core.ActionRight:
		return maze.DirRight
	default:
		return maze.DirNone
	}
}
