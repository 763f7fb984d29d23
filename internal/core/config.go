package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic mazes
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // The walker advanced one cell this tick
}

// RunRecord summarizes one finished maze for the run history.
type RunRecord struct {
	GameID  string
	Seed    int64
	Width   int
	Height  int
	PathLen int
	Steps   int
	Ticks   int
	Solved  bool
}

// RunReporter is implemented by games that record finished mazes.
// The platform drains the records after each step and persists them.
type RunReporter interface {
	DrainRuns() []RunRecord
}
