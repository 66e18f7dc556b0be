package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame clock ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState represents the externally visible status of a round.
type GameState struct {
	Phase    string  // "ready", "playing" or "dead"
	Score    int     // Current score
	GameOver bool    // Whether the avatar has crashed
	Paused   bool    // Whether the simulation is paused
	Speed    float64 // Current difficulty multiplier
	Frame    int     // Simulated PLAYING frames since round start
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and the events emitted during the frame.
type StepResult struct {
	State  GameState
	Events []Event
}
