package sim

import "github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"

// GhostParams configures one ghost.
type GhostParams struct {
	Type   GhostType
	Policy Policy
	Speed  float64    // tiles per tick while chasing
	Spawn  maze.Coord // reset position
}

// Params holds every tunable of the simulation.
// All speeds are in tiles per tick and must stay below 1.
type Params struct {
	PacmanSpeed float64
	PacmanSpawn maze.Coord
	PacmanDir   maze.Dir // initial heading after a reset

	Ghosts [GhostCount]GhostParams
	Home   maze.Coord // tile a dead ghost returns to

	ScaredMultiplier float64
	DeadMultiplier   float64
	AmbushLookahead  int     // tiles ahead of Pac-Man the ambusher aims for
	ChaseProbability float64 // chance a probabilistic ghost pursues on a decision

	CaptureThreshold float64 // interpolated distance below which agents collide
	PowerDuration    int     // ticks
	DeathDelay       int     // ticks the world stays frozen after a death

	DangerRadius   float64 // tiles; attract-mode evasion trigger
	ReversePenalty float64 // subtracted from an evasion move that reverses heading

	ExpansionCap int // BFS node budget per search
}

// DefaultParams returns the tuning of the arcade reference level.
func DefaultParams() Params {
	return Params{
		PacmanSpeed: 0.15,
		PacmanSpawn: maze.RefPacmanSpawn,
		PacmanDir:   maze.DirLeft,
		Ghosts: [GhostCount]GhostParams{
			{Type: Blinky, Policy: PolicyDirect, Speed: 0.08, Spawn: maze.RefGhostSpawns[Blinky]},
			{Type: Pinky, Policy: PolicyAmbush, Speed: 0.075, Spawn: maze.RefGhostSpawns[Pinky]},
			{Type: Inky, Policy: PolicyProbabilistic, Speed: 0.07, Spawn: maze.RefGhostSpawns[Inky]},
			{Type: Clyde, Policy: PolicyProbabilistic, Speed: 0.06, Spawn: maze.RefGhostSpawns[Clyde]},
		},
		Home:             maze.RefHome,
		ScaredMultiplier: 0.6,
		DeadMultiplier:   3.0,
		AmbushLookahead:  4,
		ChaseProbability: 0.5,
		CaptureThreshold: 0.8,
		PowerDuration:    600,
		DeathDelay:       60,
		DangerRadius:     8,
		ReversePenalty:   2,
		ExpansionCap:     600,
	}
}
