package core

// RuntimeConfig is what a host passes to a game at (re)start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second
	Seed     int64 // RNG seed; 0 lets the host pick one from the clock
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 Hz.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the summary a host needs after every tick.
type GameState struct {
	Score        int
	HighestCombo int
	Level        int
	GameOver     bool
	Paused       bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State  GameState
	Events int // Simulation events emitted this tick
}
