package sim

import "github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"

// consume eats whatever Pac-Man just entered. It reports true when the last
// pellet went and the level restarted, in which case the rest of the tick is
// skipped.
func (w *World) consume(c maze.Coord) bool {
	switch w.grid.Consume(c) {
	case maze.Dot:
		w.emit(Event{Kind: EventDotEaten, Tile: c})
	case maze.PowerPellet:
		w.emit(Event{Kind: EventPowerEaten, Tile: c})
		w.startPower()
	default:
		return false
	}

	if w.grid.PelletCount() > 0 {
		return false
	}
	w.levels++
	w.log.Debug("level cleared", "levels", w.levels, "tick", w.tick)
	w.grid.Refill()
	w.respawn()
	w.emit(Event{Kind: EventLevelCleared, Tile: c})
	return true
}

// startPower (re)starts the power countdown and frightens every ghost that
// is not already on its way home.
func (w *World) startPower() {
	w.player.Powered = true
	w.player.PowerTimer = w.params.PowerDuration
	for i := range w.ghosts {
		if w.ghosts[i].State != Dead {
			w.ghosts[i].State = Scared
		}
	}
}

// resolveCollisions checks every ghost against Pac-Man's interpolated
// position. Scared ghosts are captured; a chasing ghost kills an unpowered
// Pac-Man. Dead ghosts pass through. All ghosts are checked even after a
// death so captures in the same tick still count.
func (w *World) resolveCollisions() {
	pos := w.player.Interpolated()
	caught := false

	for i := range w.ghosts {
		g := &w.ghosts[i]
		if g.State == Dead || g.Interpolated().Dist(pos) >= w.params.CaptureThreshold {
			continue
		}
		switch g.State {
		case Scared:
			g.State = Dead
			w.emit(Event{Kind: EventGhostCaptured, Tile: g.Tile, Ghost: g.Type})
		case Chase:
			if !w.player.Powered {
				caught = true
			}
		}
	}

	if caught {
		w.die()
	}
}

func (w *World) die() {
	w.deaths++
	w.emit(Event{Kind: EventPacmanDied, Tile: w.player.Tile})
	w.log.Debug("pacman died", "tile", w.player.Tile, "deaths", w.deaths, "tick", w.tick)

	if w.params.DeathDelay <= 0 {
		w.respawn()
		return
	}
	w.deathTimer = w.params.DeathDelay
}
