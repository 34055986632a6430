package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Obstacles passed over the whole run
	Level    int  // Current level (0 when the mode has no levels)
	Lives    int  // Lives left for Player1
	GameOver bool // Whether the run has ended, by defeat or victory
	Won      bool // Whether the run ended in victory
	Paused   bool // Whether the game is paused
	Phase    string
}

// Event is a notable thing that happened during a tick, expressed as a
// message plus structured key/value pairs for the platform logger.
type Event struct {
	Message string
	KeyVals []any
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
