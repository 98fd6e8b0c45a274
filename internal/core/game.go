package core

// Game is the interface the platform drives once per tick.
// Implementations contain pure logic with no terminal dependencies;
// the platform handles input mapping, timing and display.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by exactly one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
