package pacman

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

// hudRows is the number of screen rows used around the maze: one status
// line above and one banner line below.
const hudRows = 2

// Scared ghosts start flashing when this many power ticks remain.
const flashTicks = 120

var pacmanRunes = map[maze.Dir]rune{
	maze.DirRight: 'ᗧ',
	maze.DirLeft:  'ᗤ',
	maze.DirUp:    'ᗢ',
	maze.DirDown:  'ᗣ',
	maze.DirNone:  '●',
}

var ghostColors = [sim.GhostCount]core.Color{
	sim.Blinky: core.ColorBlinky,
	sim.Pinky:  core.ColorPinky,
	sim.Inky:   core.ColorInky,
	sim.Clyde:  core.ColorClyde,
}

// layout is where the maze sits on the screen.
type layout struct {
	offX, offY int
	cellW      int // screen columns per tile
}

func (g *Game) layout() layout {
	cols := g.maze.Cols()
	cellW := 1
	if g.screenW >= cols*2 {
		cellW = 2
	}
	return layout{
		offX:  (g.screenW - cols*cellW) / 2,
		offY:  1,
		cellW: cellW,
	}
}

// project maps a continuous tile position to a screen cell. Positions
// half-way through a tunnel edge are folded back onto the grid.
func (l layout) project(x, y float64, cols int) (int, int) {
	col := int(math.Round(x))
	if col < 0 {
		col += cols
	} else if col >= cols {
		col -= cols
	}
	return l.offX + col*l.cellW, l.offY + int(math.Round(y))
}

// Render draws the current state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	f := g.world.Snapshot()
	l := g.layout()

	g.renderMaze(dst, &f, l)
	for i := range f.Ghosts {
		g.renderGhost(dst, &f, &f.Ghosts[i], l)
	}
	g.renderPacman(dst, &f, l)
	g.renderHUD(dst, &f)

	if g.paused {
		g.renderPause(dst)
	}
}

func (g *Game) renderMaze(dst *core.Screen, f *sim.Frame, l layout) {
	blink := f.Tick/15%2 == 0
	for y := range f.Rows {
		for x := range f.Cols {
			sx, sy := l.offX+x*l.cellW, l.offY+y
			switch f.At(x, y) {
			case maze.Wall:
				for i := range l.cellW {
					dst.SetCell(sx+i, sy, '█', core.ColorWall)
				}
			case maze.Dot:
				dst.SetCell(sx, sy, '·', core.ColorPellet)
			case maze.PowerPellet:
				if blink || f.Frozen {
					dst.SetCell(sx, sy, '●', core.ColorPower)
				}
			case maze.Door:
				for i := range l.cellW {
					dst.SetCell(sx+i, sy, '─', core.ColorDoor)
				}
			}
		}
	}
}

func (g *Game) renderGhost(dst *core.Screen, f *sim.Frame, gf *sim.GhostFrame, l layout) {
	x, y := l.project(gf.X, gf.Y, f.Cols)

	r, color := 'Ѡ', ghostColors[gf.Type]
	switch gf.State {
	case sim.Scared:
		color = core.ColorScared
		if f.Pacman.PowerTimer < flashTicks && f.Tick/10%2 == 1 {
			color = core.ColorScaredFlash
		}
	case sim.Dead:
		r, color = '"', core.ColorEyes
	}
	dst.SetCell(x, y, r, color)
}

func (g *Game) renderPacman(dst *core.Screen, f *sim.Frame, l layout) {
	x, y := l.project(f.Pacman.X, f.Pacman.Y, f.Cols)

	r := pacmanRunes[f.Pacman.Dir]
	switch {
	case f.Frozen:
		r = '✶'
	case f.Pacman.Dir != maze.DirNone && f.Tick/8%2 == 1:
		r = '●'
	}
	dst.SetCell(x, y, r, core.ColorPacman)
}

func (g *Game) renderHUD(dst *core.Screen, f *sim.Frame) {
	status := fmt.Sprintf("PAC-MAN  LEVEL %d  DEATHS %d  PELLETS %d", f.Levels+1, f.Deaths, f.Pellets)
	if f.Pacman.Powered {
		bars := (f.Pacman.PowerTimer*10 + g.params.PowerDuration - 1) / g.params.PowerDuration
		status += "  POWER " + strings.Repeat("▮", bars)
	}
	dst.DrawTextCentered(0, status, core.ColorText)

	bottom := g.layout().offY + f.Rows
	if !f.Pacman.Manual {
		dst.DrawTextCentered(bottom, "ATTRACT MODE (AUTO)  PRESS ARROW KEYS TO START", core.ColorPower)
		return
	}
	dst.DrawTextCentered(bottom, "arrows move  p pause  r restart  q quit", core.ColorDim)
}

func (g *Game) renderPause(dst *core.Screen) {
	lines := []string{"PAUSED", "", "p to resume", "q to quit"}
	w, h := 20, len(lines)+2
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w, h)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorText)
	for i, line := range lines {
		dst.DrawText(box.X+(w-len(line))/2, box.Y+1+i, line, core.ColorText)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	needW, needH := g.maze.Cols(), g.maze.Rows()+hudRows
	msg := "Window too small"
	need := fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, g.screenW, g.screenH)

	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, msg, core.ColorText)
	dst.DrawTextCentered(y+1, need, core.ColorDim)
}
