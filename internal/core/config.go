package core

import "time"

// DefaultTickRate is the frame rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game on Reset: the drawable
// area, the frame rate driving Step and the seed for its piece source.
type RuntimeConfig struct {
	ScreenW  int   // Columns available to the game
	ScreenH  int   // Rows available to the game, help bar excluded
	TickRate int   // Step calls per second
	Seed     int64 // Zero picks a seed from the clock in WithDefaults
}

// DefaultConfig returns an 80x24 terminal at DefaultTickRate with no seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// WithDefaults fills a zero Seed from now and a non-positive TickRate with
// DefaultTickRate. Screen dimensions are left alone.
func (c RuntimeConfig) WithDefaults(now time.Time) RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// GameState is the summary the platform polls after every frame.
type GameState struct {
	Score    int
	Lines    int
	GameOver bool // Also true before the first run starts
	Paused   bool
}

// Running reports whether a run is in progress, paused or not.
func (s GameState) Running() bool {
	return !s.GameOver
}

// StepResult carries the state reached by one Step.
type StepResult struct {
	State GameState
}
