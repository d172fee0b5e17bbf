package config

import (
	"errors"
	"fmt"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

var policies = map[string]bool{
	"direct":        true,
	"ambush":        true,
	"probabilistic": true,
}

// Validate rejects values the simulation cannot run with. Speeds must stay
// below one tile per tick in every ghost state so no tile is ever skipped.
func (c PacmanConfig) Validate() error {
	var errs []error
	bad := func(field string, v any, want string) {
		errs = append(errs, fmt.Errorf("%w: %s = %v, want %s", ErrInvalid, field, v, want))
	}

	if c.Pacman.Speed <= 0 || c.Pacman.Speed >= 1 {
		bad("pacman.speed", c.Pacman.Speed, "0 < speed < 1")
	}
	if c.Pacman.DangerRadius < 0 {
		bad("pacman.danger_radius", c.Pacman.DangerRadius, ">= 0")
	}
	if c.Pacman.ReversePenalty < 0 {
		bad("pacman.reverse_penalty", c.Pacman.ReversePenalty, ">= 0")
	}

	g := c.Ghosts
	if g.ScaredMultiplier <= 0 || g.ScaredMultiplier >= 1 {
		bad("ghosts.scared_multiplier", g.ScaredMultiplier, "0 < m < 1")
	}
	if g.DeadMultiplier <= 1 {
		bad("ghosts.dead_multiplier", g.DeadMultiplier, "> 1")
	}
	for _, named := range []struct {
		name string
		gc   GhostConfig
	}{{"blinky", g.Blinky}, {"pinky", g.Pinky}, {"inky", g.Inky}, {"clyde", g.Clyde}} {
		name, gc := named.name, named.gc
		if gc.Speed <= 0 || gc.Speed*max(1, g.DeadMultiplier) >= 1 {
			bad("ghosts."+name+".speed", gc.Speed, "0 < speed and speed*dead_multiplier < 1")
		}
		if !policies[gc.Policy] {
			bad("ghosts."+name+".policy", gc.Policy, "direct, ambush or probabilistic")
		}
	}
	if g.AmbushLookahead < 0 {
		bad("ghosts.ambush_lookahead", g.AmbushLookahead, ">= 0")
	}
	if g.ChaseProbability < 0 || g.ChaseProbability > 1 {
		bad("ghosts.chase_probability", g.ChaseProbability, "0..1")
	}

	r := c.Rules
	if r.CaptureThreshold <= 0 {
		bad("rules.capture_threshold", r.CaptureThreshold, "> 0")
	}
	if r.PowerDuration <= 0 {
		bad("rules.power_duration", r.PowerDuration, "> 0")
	}
	if r.DeathDelay < 0 {
		bad("rules.death_delay", r.DeathDelay, ">= 0")
	}
	if r.ExpansionCap <= 0 {
		bad("rules.expansion_cap", r.ExpansionCap, "> 0")
	}

	if len(c.Maze.Layout) > 0 && len(c.Maze.GhostSpawns) != 4 {
		bad("maze.ghost_spawns", len(c.Maze.GhostSpawns), "4 spawns with a custom layout")
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		bad("audio.volume", c.Audio.Volume, "0..1")
	}

	return errors.Join(errs...)
}
