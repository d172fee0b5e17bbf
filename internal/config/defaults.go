package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the built-in configuration. It matches
// defaults/pacman.yaml and is used when even the embedded file cannot be
// parsed.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Pacman: PacmanPlayer{
			Speed:          0.15,
			DangerRadius:   8,
			ReversePenalty: 2,
		},
		Ghosts: GhostsConfig{
			Blinky:           GhostConfig{Speed: 0.08, Policy: "direct"},
			Pinky:            GhostConfig{Speed: 0.075, Policy: "ambush"},
			Inky:             GhostConfig{Speed: 0.07, Policy: "probabilistic"},
			Clyde:            GhostConfig{Speed: 0.06, Policy: "probabilistic"},
			ScaredMultiplier: 0.6,
			DeadMultiplier:   3.0,
			AmbushLookahead:  4,
			ChaseProbability: 0.5,
		},
		Rules: RulesConfig{
			CaptureThreshold: 0.8,
			PowerDuration:    600,
			DeathDelay:       60,
			ExpansionCap:     600,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}
