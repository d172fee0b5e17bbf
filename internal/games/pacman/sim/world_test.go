package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// roomLayout is an open 9x7 room with a single dot at (5,5) and four sealed
// one-tile pockets on row 9 where the ghosts are parked out of the way.
var roomLayout = []string{
	"###########",
	"#         #",
	"#         #",
	"#         #",
	"#         #",
	"#    .    #",
	"#         #",
	"#         #",
	"###########",
	"# # # # ###",
	"###########",
}

var pockets = [GhostCount]maze.Coord{maze.C(1, 9), maze.C(3, 9), maze.C(5, 9), maze.C(7, 9)}

// parkedParams spawns Pac-Man at spawn and parks every ghost in a pocket.
// Evasion is disabled so the autopilot goes straight for pellets.
func parkedParams(spawn maze.Coord, dir maze.Dir) Params {
	p := DefaultParams()
	p.PacmanSpawn = spawn
	p.PacmanDir = dir
	for i := range p.Ghosts {
		p.Ghosts[i].Spawn = pockets[i]
	}
	p.Home = pockets[0]
	p.DangerRadius = 0
	return p
}

func newRoomWorld(t *testing.T, layout []string, p Params, opts ...Option) *World {
	t.Helper()
	g, err := maze.New(layout)
	require.NoError(t, err)
	return New(g, p, 1, opts...)
}

type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Intn(int) int { return r.n }
func (r fixedRand) Float64() float64 { return r.f }

func stepUntil(w *World, limit int, in Input, done func(StepResult) bool) (StepResult, bool) {
	for range limit {
		if res := w.Step(in); done(res) {
			return res, true
		}
	}
	return StepResult{}, false
}

func TestAutopilotHeadsForAdjacentDot(t *testing.T) {
	w := newRoomWorld(t, roomLayout, parkedParams(maze.C(5, 4), maze.DirNone))

	w.Step(Input{})

	p := w.Player()
	assert.False(t, p.Manual)
	assert.Equal(t, maze.DirDown, p.Dir)
	assert.InDelta(t, 0.15, p.Progress, 1e-9)
}

func TestEatingLastPelletRestartsLevel(t *testing.T) {
	var seen []Event
	sink := SinkFunc(func(e Event) { seen = append(seen, e) })
	w := newRoomWorld(t, roomLayout, parkedParams(maze.C(5, 4), maze.DirNone), WithSink(sink))

	res, ok := stepUntil(w, 20, Input{}, func(r StepResult) bool { return len(r.Events) > 0 })
	require.True(t, ok, "pellet never eaten")

	require.Len(t, res.Events, 2)
	assert.Equal(t, EventDotEaten, res.Events[0].Kind)
	assert.Equal(t, maze.C(5, 5), res.Events[0].Tile)
	assert.Equal(t, EventLevelCleared, res.Events[1].Kind)
	assert.Equal(t, res.Events, seen)

	assert.Equal(t, 1, w.Levels())
	assert.Equal(t, 1, w.Grid().PelletCount(), "grid refilled")
	assert.Equal(t, maze.Dot, w.Grid().At(maze.C(5, 5)))
	assert.Equal(t, maze.C(5, 4), w.Player().Tile, "agents reset")
	assert.True(t, w.Player().AtBoundary())
}

func TestEatingPelletRemovesOnlyThatPellet(t *testing.T) {
	layout := append([]string(nil), roomLayout...)
	layout[1] = "#.        #"
	w := newRoomWorld(t, layout, parkedParams(maze.C(5, 4), maze.DirNone))
	require.Equal(t, 2, w.Grid().PelletCount())

	res, ok := stepUntil(w, 20, Input{}, func(r StepResult) bool { return len(r.Events) > 0 })
	require.True(t, ok, "pellet never eaten")

	require.Len(t, res.Events, 1, "no level clear while pellets remain")
	assert.Equal(t, EventDotEaten, res.Events[0].Kind)
	assert.Equal(t, maze.C(5, 5), res.Events[0].Tile)
	assert.Equal(t, 1, w.Grid().PelletCount())
	assert.Equal(t, maze.Path, w.Grid().At(maze.C(5, 5)))
	assert.Equal(t, maze.Dot, w.Grid().At(maze.C(1, 1)))
	assert.Zero(t, w.Levels())
}

func TestTunnelWrapsToOppositeEdge(t *testing.T) {
	layout := []string{
		"###########",
		"#.........#",
		"           ",
		"#         #",
		"###########",
		"# # # # ###",
		"###########",
	}
	g, err := maze.New(layout, 2)
	require.NoError(t, err)
	p := parkedParams(maze.C(0, 2), maze.DirLeft)
	p.Ghosts[0].Spawn, p.Ghosts[1].Spawn = maze.C(1, 5), maze.C(3, 5)
	p.Ghosts[2].Spawn, p.Ghosts[3].Spawn = maze.C(5, 5), maze.C(7, 5)
	w := New(g, p, 1)

	w.Step(Input{Dir: maze.DirLeft})
	w.Step(Input{})
	w.Step(Input{})
	assert.InDelta(t, -0.45, w.Player().Interpolated().X, 1e-9)

	_, ok := stepUntil(w, 10, Input{}, func(StepResult) bool { return w.Player().Tile != maze.C(0, 2) })
	require.True(t, ok)
	assert.Equal(t, maze.C(10, 2), w.Player().Tile)
	assert.Equal(t, maze.DirLeft, w.Player().Dir)
}

func TestCaptureScaredGhost(t *testing.T) {
	w := newRoomWorld(t, roomLayout, parkedParams(maze.C(3, 3), maze.DirNone))
	w.startPower()
	w.ghosts[Pinky].place(maze.C(4, 3), maze.DirLeft)
	w.ghosts[Pinky].Progress = 0.5
	require.Equal(t, Scared, w.ghosts[Pinky].State)

	w.resolveCollisions()

	assert.Equal(t, Dead, w.ghosts[Pinky].State)
	require.Len(t, w.events, 1)
	assert.Equal(t, EventGhostCaptured, w.events[0].Kind)
	assert.Equal(t, Pinky, w.events[0].Ghost)
	assert.False(t, w.Frozen())
	assert.Zero(t, w.Deaths())
}

func TestChaseGhostKillsUnpoweredPacman(t *testing.T) {
	p := parkedParams(maze.C(3, 3), maze.DirNone)
	p.DeathDelay = 3
	w := newRoomWorld(t, roomLayout, p)
	w.player.place(maze.C(6, 6), maze.DirRight)
	w.ghosts[Blinky].place(maze.C(6, 6), maze.DirNone)
	w.ghosts[Clyde].place(maze.C(7, 6), maze.DirLeft)
	w.ghosts[Clyde].Progress = 0.6

	w.resolveCollisions()

	require.Len(t, w.events, 1, "a death is reported once")
	assert.Equal(t, EventPacmanDied, w.events[0].Kind)
	assert.True(t, w.Frozen())
	assert.Equal(t, 1, w.Deaths())

	for range p.DeathDelay - 1 {
		res := w.Step(Input{Dir: maze.DirUp})
		assert.True(t, res.Frozen)
		assert.Equal(t, maze.C(6, 6), w.Player().Tile, "world frozen")
		assert.True(t, w.Player().Manual, "input during the pause takes control")
		assert.Equal(t, maze.DirUp, w.Player().Queued)
	}
	res := w.Step(Input{})
	assert.False(t, res.Frozen)
	assert.Equal(t, maze.C(3, 3), w.Player().Tile)
	assert.True(t, w.Player().Manual)
	assert.Equal(t, maze.DirUp, w.Player().Queued, "turn queued in the pause survives respawn")
	for i := range GhostCount {
		assert.Equal(t, pockets[i], w.ghosts[i].Tile)
		assert.Equal(t, Chase, w.ghosts[i].State)
	}
}

func TestChaseGhostHarmlessWhilePowered(t *testing.T) {
	w := newRoomWorld(t, roomLayout, parkedParams(maze.C(3, 3), maze.DirNone))
	w.player.Powered = true
	w.player.PowerTimer = 10
	w.ghosts[Blinky].place(maze.C(3, 3), maze.DirNone)

	w.resolveCollisions()

	assert.Empty(t, w.events)
	assert.False(t, w.Frozen())
	assert.Equal(t, Chase, w.ghosts[Blinky].State)
}

func TestDeadGhostNeverCollides(t *testing.T) {
	w := newRoomWorld(t, roomLayout, parkedParams(maze.C(3, 3), maze.DirNone))
	w.ghosts[Inky].place(maze.C(3, 3), maze.DirNone)
	w.ghosts[Inky].State = Dead

	w.resolveCollisions()

	assert.Empty(t, w.events)
	assert.Equal(t, Dead, w.ghosts[Inky].State)
}

func TestPowerPelletFrightensLivingGhosts(t *testing.T) {
	w := newRoomWorld(t, roomLayout, parkedParams(maze.C(3, 3), maze.DirNone))
	w.ghosts[Clyde].State = Dead

	w.startPower()

	assert.True(t, w.player.Powered)
	assert.Equal(t, w.params.PowerDuration, w.player.PowerTimer)
	assert.Equal(t, Scared, w.ghosts[Blinky].State)
	assert.Equal(t, Scared, w.ghosts[Pinky].State)
	assert.Equal(t, Scared, w.ghosts[Inky].State)
	assert.Equal(t, Dead, w.ghosts[Clyde].State)
}

func TestPowerExpiryReleasesScaredGhosts(t *testing.T) {
	w := newRoomWorld(t, roomLayout, parkedParams(maze.C(3, 3), maze.DirNone))
	w.startPower()
	w.player.PowerTimer = 2
	w.ghosts[Inky].State = Dead

	w.Step(Input{})
	assert.True(t, w.Player().Powered)
	assert.Equal(t, 1, w.Player().PowerTimer)

	w.Step(Input{})
	assert.False(t, w.Player().Powered)
	assert.Zero(t, w.Player().PowerTimer)
	assert.Equal(t, Chase, w.ghosts[Blinky].State)
	assert.Equal(t, Dead, w.ghosts[Inky].State, "dead ghosts are unaffected")
}

func TestDeadGhostRevivesAtHome(t *testing.T) {
	w := New(maze.Reference(), DefaultParams(), 7)
	g := &w.ghosts[Blinky]
	g.State = Dead
	g.place(maze.RefHome, maze.DirNone)
	snap := w.capture()

	w.decideGhost(g, &snap)

	assert.Equal(t, Chase, g.State)
	assert.Contains(t, []maze.Dir{maze.DirUp, maze.DirLeft, maze.DirRight, maze.DirDown}, g.Dir)
	assert.True(t, w.grid.CanMove(g.Tile, g.Dir, maze.MoverGhost))
}

func TestDeadGhostPathsThroughDoor(t *testing.T) {
	w := New(maze.Reference(), DefaultParams(), 7)
	g := &w.ghosts[Blinky]
	g.State = Dead
	g.place(maze.C(13, 11), maze.DirNone)
	snap := w.capture()

	w.decideGhost(g, &snap)

	assert.Equal(t, Dead, g.State)
	assert.Equal(t, maze.DirDown, g.Dir)
	assert.InDelta(t, 0.24, g.Speed(w.params), 1e-9)
}

func TestGhostSpeedByState(t *testing.T) {
	p := DefaultParams()
	g := Ghost{BaseSpeed: 0.1}

	assert.InDelta(t, 0.1, g.Speed(p), 1e-9)
	g.State = Scared
	assert.Less(t, g.Speed(p), 0.1)
	g.State = Dead
	assert.Greater(t, g.Speed(p), 0.1)
	assert.Equal(t, maze.MoverDeadGhost, g.Mover())
}

func TestProbabilisticPolicy(t *testing.T) {
	p := parkedParams(maze.C(8, 1), maze.DirNone)

	// 0.1 < ChaseProbability: pursue.
	w := newRoomWorld(t, roomLayout, p, WithRand(fixedRand{f: 0.1, n: 0}))
	g := &w.ghosts[Inky]
	g.place(maze.C(2, 1), maze.DirNone)
	snap := w.capture()
	w.decideGhost(g, &snap)
	assert.Equal(t, maze.DirRight, g.Dir)

	// 0.9 >= ChaseProbability: wander. Legal moves are [right left down].
	w = newRoomWorld(t, roomLayout, p, WithRand(fixedRand{f: 0.9, n: 1}))
	g = &w.ghosts[Inky]
	g.place(maze.C(2, 1), maze.DirNone)
	snap = w.capture()
	w.decideGhost(g, &snap)
	assert.Equal(t, maze.DirLeft, g.Dir)
}

func TestAmbushTileIsClamped(t *testing.T) {
	w := newRoomWorld(t, roomLayout, parkedParams(maze.C(1, 1), maze.DirNone))

	assert.Equal(t, maze.C(1, 0), w.ambushTile(Agent{Tile: maze.C(1, 1), Dir: maze.DirUp}))
	assert.Equal(t, maze.C(10, 4), w.ambushTile(Agent{Tile: maze.C(8, 4), Dir: maze.DirRight}))
	assert.Equal(t, maze.C(5, 4), w.ambushTile(Agent{Tile: maze.C(5, 4), Dir: maze.DirNone}))
}

func TestAmbushFallsBackToDirect(t *testing.T) {
	// Pac-Man faces a wall, so the ambush tile is a wall and unreachable.
	w := newRoomWorld(t, roomLayout, parkedParams(maze.C(1, 4), maze.DirNone))
	w.player.Dir = maze.DirLeft
	g := &w.ghosts[Pinky]
	g.place(maze.C(1, 1), maze.DirNone)
	snap := w.capture()

	w.decideGhost(g, &snap)

	assert.Equal(t, maze.DirDown, g.Dir)
}

func TestEvadePrefersDistanceAndAvoidsReversing(t *testing.T) {
	w := newRoomWorld(t, roomLayout, parkedParams(maze.C(5, 4), maze.DirUp))
	for i := range w.ghosts {
		w.ghosts[i].State = Scared
	}
	w.ghosts[Blinky].State = Chase
	w.ghosts[Blinky].place(maze.C(5, 2), maze.DirNone)
	snap := w.capture()

	// Down scores 3 but reverses Up; Right and Left tie and Right is searched first.
	d, ok := w.evade(&snap)
	require.True(t, ok)
	assert.Equal(t, maze.DirRight, d)

	w.player.Dir = maze.DirLeft
	d, ok = w.evade(&snap)
	require.True(t, ok)
	assert.Equal(t, maze.DirDown, d)
}

func TestEvadeKeepsClearOfEveryGhost(t *testing.T) {
	w := newRoomWorld(t, roomLayout, parkedParams(maze.C(5, 4), maze.DirNone))
	for i := range w.ghosts {
		w.ghosts[i].State = Dead
	}
	w.ghosts[Blinky].State = Chase
	w.ghosts[Blinky].place(maze.C(5, 1), maze.DirNone)
	w.ghosts[Pinky].State = Scared
	w.ghosts[Pinky].place(maze.C(8, 5), maze.DirNone)
	snap := w.capture()

	// Down is farthest from Blinky but runs at Pinky.
	d, ok := w.evade(&snap)
	require.True(t, ok)
	assert.Equal(t, maze.DirLeft, d)
}

func TestAutopilotEvadesWithinDangerRadius(t *testing.T) {
	p := parkedParams(maze.C(5, 4), maze.DirNone)
	p.DangerRadius = 3
	w := newRoomWorld(t, roomLayout, p)
	for i := range w.ghosts {
		w.ghosts[i].State = Dead
	}
	w.ghosts[Blinky].State = Chase
	w.ghosts[Blinky].place(maze.C(5, 6), maze.DirNone)
	snap := w.capture()

	w.decidePlayer(&snap)

	// The dot lies toward the ghost; fleeing wins.
	assert.Equal(t, maze.DirUp, w.player.Dir)
}

func TestManualTurnIntoWallIsRetried(t *testing.T) {
	layout := []string{
		"###########",
		"#         #",
		"# ###     #",
		"#         #",
		"###########",
		"# # # # ###",
		"###########",
	}
	p := parkedParams(maze.C(2, 1), maze.DirRight)
	p.Ghosts[0].Spawn, p.Ghosts[1].Spawn = maze.C(1, 5), maze.C(3, 5)
	p.Ghosts[2].Spawn, p.Ghosts[3].Spawn = maze.C(5, 5), maze.C(7, 5)
	w := newRoomWorld(t, layout, p)

	w.Step(Input{Dir: maze.DirDown})
	assert.True(t, w.Player().Manual)
	assert.Equal(t, maze.DirRight, w.Player().Dir, "blocked turn leaves motion unchanged")
	assert.Equal(t, maze.DirDown, w.Player().Queued)

	_, ok := stepUntil(w, 60, Input{}, func(StepResult) bool { return w.Player().Dir == maze.DirDown })
	require.True(t, ok)
	assert.Equal(t, maze.C(5, 1), w.Player().Tile, "turn taken at the first open tile")
}

func TestManualStopsAtWall(t *testing.T) {
	w := newRoomWorld(t, roomLayout, parkedParams(maze.C(2, 1), maze.DirNone))

	w.Step(Input{Dir: maze.DirLeft})
	_, ok := stepUntil(w, 30, Input{}, func(StepResult) bool { return w.Player().Dir == maze.DirNone })
	require.True(t, ok)
	assert.Equal(t, maze.C(1, 1), w.Player().Tile)
	assert.Equal(t, maze.DirLeft, w.Player().Queued)
}

func TestManualModeIsPermanent(t *testing.T) {
	w := New(maze.Reference(), DefaultParams(), 3)

	for range 10 {
		w.Step(Input{})
	}
	assert.False(t, w.Player().Manual)

	w.Step(Input{Dir: maze.DirRight})
	assert.True(t, w.Player().Manual)

	for range 200 {
		w.Step(Input{})
	}
	assert.True(t, w.Player().Manual)

	w.Reset()
	assert.False(t, w.Player().Manual, "a full reset returns to attract mode")
}

func TestWorldInvariantsHold(t *testing.T) {
	w := New(maze.Reference(), DefaultParams(), 99)
	g := w.Grid()

	for tick := range 5000 {
		w.Step(Input{})

		p := w.Player()
		require.Equal(t, p.Powered, p.PowerTimer > 0, "tick %d", tick)
		require.True(t, g.At(p.Tile).Caps().Has(maze.CapPacman), "pacman on %s at tick %d", g.At(p.Tile), tick)
		require.GreaterOrEqual(t, p.Progress, 0.0)
		require.Less(t, p.Progress, 1.0)

		for i := range GhostCount {
			gh := w.Ghost(GhostType(i))
			require.NotEqual(t, maze.Wall, g.At(gh.Tile), "%s in a wall at tick %d", gh.Type, tick)
			if !p.Powered {
				require.NotEqual(t, Scared, gh.State, "%s scared without power at tick %d", gh.Type, tick)
			}
		}
	}
}

func TestWorldDeterminism(t *testing.T) {
	inputs := make([]Input, 3000)
	for i := range inputs {
		switch {
		case i == 500:
			inputs[i].Dir = maze.DirLeft
		case i > 500 && i%97 == 0:
			inputs[i].Dir = maze.Dir(1 + i%4)
		}
	}

	run := func() (Frame, int) {
		w := New(maze.Reference(), DefaultParams(), 12345)
		events := 0
		for _, in := range inputs {
			events += len(w.Step(in).Events)
		}
		return w.Snapshot(), events
	}

	f1, e1 := run()
	f2, e2 := run()
	assert.Equal(t, f1, f2)
	assert.Equal(t, e1, e2)
	assert.Positive(t, e1, "something happened in 3000 ticks")
}

func TestSnapshotIsACopy(t *testing.T) {
	w := New(maze.Reference(), DefaultParams(), 1)
	f := w.Snapshot()

	f.Tiles[0] = maze.Path
	assert.Equal(t, maze.Wall, w.Grid().At(maze.C(0, 0)))

	assert.Equal(t, maze.RefCols, f.Cols)
	assert.Equal(t, maze.RefRows, f.Rows)
	assert.Equal(t, w.Grid().PelletCount(), f.Pellets)
	assert.Equal(t, maze.RefPacmanSpawn, f.Pacman.Tile)
	for i, g := range f.Ghosts {
		assert.Equal(t, GhostType(i), g.Type)
		assert.Equal(t, Chase, g.State)
	}
	assert.Equal(t, maze.RefLayout, w.Snapshot().Layout())
}
