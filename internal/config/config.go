// Package config provides YAML-based configuration loading and difficulty
// presets for the Pac-Man simulation.
package config

// PacmanConfig contains every tunable of the game.
type PacmanConfig struct {
	Pacman PacmanPlayer `yaml:"pacman"`
	Ghosts GhostsConfig `yaml:"ghosts"`
	Rules  RulesConfig  `yaml:"rules"`
	Maze   MazeConfig   `yaml:"maze"`
	Audio  AudioConfig  `yaml:"audio"`
}

// PacmanPlayer defines Pac-Man's movement and attract-mode autopilot.
type PacmanPlayer struct {
	Speed          float64 `yaml:"speed"`           // tiles per tick
	DangerRadius   float64 `yaml:"danger_radius"`   // tiles; autopilot flees chasers inside it
	ReversePenalty float64 `yaml:"reverse_penalty"` // evasion score taken off a reversal
}

// GhostConfig defines one ghost.
type GhostConfig struct {
	Speed  float64 `yaml:"speed"`
	Policy string  `yaml:"policy"` // "direct", "ambush" or "probabilistic"
}

// GhostsConfig defines the four ghosts and their shared modifiers.
type GhostsConfig struct {
	Blinky GhostConfig `yaml:"blinky"`
	Pinky  GhostConfig `yaml:"pinky"`
	Inky   GhostConfig `yaml:"inky"`
	Clyde  GhostConfig `yaml:"clyde"`

	ScaredMultiplier float64 `yaml:"scared_multiplier"`
	DeadMultiplier   float64 `yaml:"dead_multiplier"`
	AmbushLookahead  int     `yaml:"ambush_lookahead"`
	ChaseProbability float64 `yaml:"chase_probability"`
}

// RulesConfig defines collision, power and search limits.
type RulesConfig struct {
	CaptureThreshold float64 `yaml:"capture_threshold"`
	PowerDuration    int     `yaml:"power_duration"` // ticks
	DeathDelay       int     `yaml:"death_delay"`    // ticks
	ExpansionCap     int     `yaml:"expansion_cap"`  // BFS nodes per search
}

// Point is a tile coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// MazeConfig optionally replaces the reference maze. An empty Layout keeps
// the built-in level and ignores the other fields.
type MazeConfig struct {
	Layout      []string `yaml:"layout"`
	TunnelRows  []int    `yaml:"tunnel_rows"`
	PacmanSpawn Point    `yaml:"pacman_spawn"`
	GhostSpawns []Point  `yaml:"ghost_spawns"` // blinky, pinky, inky, clyde
	Home        Point    `yaml:"home"`
}

// AudioConfig controls the sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
