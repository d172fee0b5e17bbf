package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

// Build turns a validated configuration into simulation parameters and the
// maze they run on.
func Build(cfg config.PacmanConfig) (sim.Params, *maze.Grid, error) {
	p := sim.DefaultParams()

	p.PacmanSpeed = cfg.Pacman.Speed
	p.DangerRadius = cfg.Pacman.DangerRadius
	p.ReversePenalty = cfg.Pacman.ReversePenalty

	ghosts := [sim.GhostCount]config.GhostConfig{cfg.Ghosts.Blinky, cfg.Ghosts.Pinky, cfg.Ghosts.Inky, cfg.Ghosts.Clyde}
	for i, gc := range ghosts {
		policy, ok := sim.ParsePolicy(gc.Policy)
		if !ok {
			return p, nil, fmt.Errorf("pacman: %s: unknown policy %q", sim.GhostType(i), gc.Policy)
		}
		p.Ghosts[i].Speed = gc.Speed
		p.Ghosts[i].Policy = policy
	}
	p.ScaredMultiplier = cfg.Ghosts.ScaredMultiplier
	p.DeadMultiplier = cfg.Ghosts.DeadMultiplier
	p.AmbushLookahead = cfg.Ghosts.AmbushLookahead
	p.ChaseProbability = cfg.Ghosts.ChaseProbability

	p.CaptureThreshold = cfg.Rules.CaptureThreshold
	p.PowerDuration = cfg.Rules.PowerDuration
	p.DeathDelay = cfg.Rules.DeathDelay
	p.ExpansionCap = cfg.Rules.ExpansionCap

	if len(cfg.Maze.Layout) == 0 {
		return p, maze.Reference(), nil
	}

	grid, err := maze.New(cfg.Maze.Layout, cfg.Maze.TunnelRows...)
	if err != nil {
		return p, nil, fmt.Errorf("pacman: custom maze: %w", err)
	}
	if len(cfg.Maze.GhostSpawns) != sim.GhostCount {
		return p, nil, fmt.Errorf("pacman: custom maze: %w: need %d ghost spawns, got %d",
			maze.ErrBadLayout, sim.GhostCount, len(cfg.Maze.GhostSpawns))
	}

	p.PacmanSpawn = point(cfg.Maze.PacmanSpawn)
	if !grid.At(p.PacmanSpawn).Caps().Has(maze.CapPacman) {
		return p, nil, fmt.Errorf("pacman: custom maze: %w: pacman spawn %s is not walkable",
			maze.ErrBadLayout, p.PacmanSpawn)
	}
	for i, sp := range cfg.Maze.GhostSpawns {
		p.Ghosts[i].Spawn = point(sp)
		if grid.At(p.Ghosts[i].Spawn) == maze.Wall {
			return p, nil, fmt.Errorf("pacman: custom maze: %w: %s spawn %s is a wall",
				maze.ErrBadLayout, sim.GhostType(i), p.Ghosts[i].Spawn)
		}
	}
	p.Home = point(cfg.Maze.Home)
	if grid.At(p.Home) == maze.Wall {
		return p, nil, fmt.Errorf("pacman: custom maze: %w: home %s is a wall", maze.ErrBadLayout, p.Home)
	}

	return p, grid, nil
}

func point(pt config.Point) maze.Coord {
	return maze.C(pt.X, pt.Y)
}
