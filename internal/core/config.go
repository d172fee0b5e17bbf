package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 asks the platform for a time-based one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Paused   bool // simulation is not being stepped
	Attract  bool // the autopilot is still playing
	Frozen   bool // post-death pause
	TooSmall bool // the terminal cannot fit the maze
	Levels   int  // boards cleared
	Deaths   int
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}

// Game is implemented by anything the platform can run. Games hold pure
// logic; the platform owns input mapping, timing and output.
type Game interface {
	// ID returns a short identifier used in logs.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset (re)starts the game with the given screen size and seed.
	Reset(cfg RuntimeConfig)

	// Resize adapts to a new screen size without restarting.
	Resize(w, h int)

	// Step advances the game by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into dst, which is pre-cleared.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
