// Package sim runs the pursuit simulation: Pac-Man and four ghosts moving on
// a maze.Grid one fixed tick at a time.
//
// A tick runs in a fixed order: power countdown, input, Pac-Man decision,
// Pac-Man movement and consumption, ghost decisions (blinky, pinky, inky,
// clyde), ghost movement, collision resolution. Decisions read the agent
// positions captured at the start of the tick, so no agent reacts to a move
// made earlier in the same tick. The simulation never fails; unreachable
// targets and dead ends are absorbed inside the tick and logged.
package sim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/nav"
)

// Input is the player input for one tick. Only the latest directional event
// of the tick is kept; DirNone means no input.
type Input struct {
	Dir maze.Dir
}

// StepResult describes what happened during one tick.
type StepResult struct {
	Tick   uint64
	Events []Event
	Frozen bool // the world is in its post-death pause
}

// positions is the start-of-tick view every decision reads.
type positions struct {
	pacman Agent
	ghosts [GhostCount]ghostPos
}

type ghostPos struct {
	Tile  maze.Coord
	State GhostState
}

// Option configures a World.
type Option func(*World)

// WithSink routes events to s in addition to StepResult.Events.
func WithSink(s Sink) Option {
	return func(w *World) {
		if s != nil {
			w.sink = s
		}
	}
}

// WithLogger sets the logger for recoverable anomalies. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithRand replaces the seeded source used for random moves.
func WithRand(r nav.Rand) Option {
	return func(w *World) {
		if r != nil {
			w.rng = r
		}
	}
}

// World is the complete simulation state. It is not safe for concurrent use.
type World struct {
	params Params
	grid   *maze.Grid
	rng    nav.Rand
	sink   Sink
	log    *log.Logger

	tick       uint64
	player     Player
	ghosts     [GhostCount]Ghost
	deathTimer int
	levels     int
	deaths     int

	events []Event
}

// New builds a world on grid with every agent at its spawn. The world owns
// grid from here on and mutates it as pellets are eaten.
func New(grid *maze.Grid, params Params, seed int64, opts ...Option) *World {
	w := &World{
		params: params,
		grid:   grid,
		rng:    rand.New(rand.NewSource(seed)),
		sink:   nopSink{},
		log:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.respawn()
	return w
}

// Reset restores the world to its initial state: pellets refilled, agents at
// their spawns, autopilot back in control.
func (w *World) Reset() {
	w.grid.Refill()
	w.tick = 0
	w.levels = 0
	w.deaths = 0
	w.player.Manual = false
	w.player.Queued = maze.DirNone
	w.respawn()
}

// Grid returns the live grid. Callers must not modify it.
func (w *World) Grid() *maze.Grid { return w.grid }

// Params returns the world's tuning.
func (w *World) Params() Params { return w.params }

// Tick returns the number of ticks stepped since the last Reset.
func (w *World) Tick() uint64 { return w.tick }

// Player returns a copy of Pac-Man's state.
func (w *World) Player() Player { return w.player }

// Ghost returns a copy of the given ghost's state.
func (w *World) Ghost(t GhostType) Ghost { return w.ghosts[t] }

// Frozen reports whether the world is paused after a death.
func (w *World) Frozen() bool { return w.deathTimer > 0 }

// Levels returns how many times the grid has been cleared since Reset.
func (w *World) Levels() int { return w.levels }

// Deaths returns how many times Pac-Man has been caught since Reset.
func (w *World) Deaths() int { return w.deaths }

// Step advances the simulation by one tick.
func (w *World) Step(in Input) StepResult {
	w.tick++
	w.events = nil
	w.player.Queue(in.Dir)

	if w.deathTimer > 0 {
		w.deathTimer--
		if w.deathTimer == 0 {
			w.respawn()
		}
		return w.result()
	}

	w.tickPower()
	snap := w.capture()

	if w.player.AtBoundary() {
		w.decidePlayer(&snap)
	}
	if w.player.Advance(w.grid, w.params.PacmanSpeed, maze.MoverPacman) {
		if w.consume(w.player.Tile) {
			return w.result()
		}
	}

	for i := range w.ghosts {
		if g := &w.ghosts[i]; g.AtBoundary() {
			w.decideGhost(g, &snap)
		}
	}
	for i := range w.ghosts {
		g := &w.ghosts[i]
		g.Advance(w.grid, g.Speed(w.params), g.Mover())
	}

	w.resolveCollisions()
	return w.result()
}

func (w *World) result() StepResult {
	return StepResult{Tick: w.tick, Events: w.events, Frozen: w.Frozen()}
}

// tickPower counts the power timer down and releases scared ghosts when it
// runs out.
func (w *World) tickPower() {
	p := &w.player
	if !p.Powered {
		return
	}
	p.PowerTimer--
	if p.PowerTimer > 0 {
		return
	}
	p.Powered = false
	p.PowerTimer = 0
	for i := range w.ghosts {
		if w.ghosts[i].State == Scared {
			w.ghosts[i].State = Chase
		}
	}
}

func (w *World) capture() positions {
	s := positions{pacman: w.player.Agent}
	for i, g := range w.ghosts {
		s.ghosts[i] = ghostPos{Tile: g.Tile, State: g.State}
	}
	return s
}

// respawn puts every agent back on its spawn tile. Pellets are left alone
// unless none remain. Manual control and the queued turn are kept, so input
// given during the death pause applies once play resumes.
func (w *World) respawn() {
	if w.grid.PelletCount() == 0 {
		w.grid.Refill()
	}

	w.deathTimer = 0
	w.player.place(w.params.PacmanSpawn, w.params.PacmanDir)
	w.player.Powered = false
	w.player.PowerTimer = 0

	for i, gp := range w.params.Ghosts {
		w.ghosts[i] = Ghost{
			Type:      gp.Type,
			Policy:    gp.Policy,
			State:     Chase,
			BaseSpeed: gp.Speed,
		}
		w.ghosts[i].place(gp.Spawn, maze.DirNone)
	}
}

func (w *World) search(from maze.Coord, t nav.Target, m maze.Mover) nav.Result {
	return nav.Find(w.grid, from, t, m, w.params.ExpansionCap)
}

func (w *World) emit(e Event) {
	e.Tick = w.tick
	w.events = append(w.events, e)
	w.sink.Notify(e)
}
