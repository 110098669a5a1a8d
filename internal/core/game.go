package core

// Game is the interface the platform drives.
// Games contain pure logic with no dependency on Bubble Tea; the platform
// handles input mapping, timing, and terminal output.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "tetris").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game for a new session.
	// The RuntimeConfig provides screen dimensions, frame rate and RNG seed.
	Reset(cfg RuntimeConfig)

	// Step advances the game by one frame, applying the actions in the frame.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// Resize informs the game of new screen dimensions without resetting it.
	Resize(width, height int)

	// State returns the current game state.
	State() GameState
}
