// Package core provides the dependency-free types shared between the game
// core and the platform layer: the runtime configuration, the per-tick input
// frame and the character screen buffer games render into.
package core

// RuntimeConfig is passed to a game at initialization. Games use it to adapt
// to the terminal size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports back to the platform after a tick.
type GameState struct {
	Paused bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
