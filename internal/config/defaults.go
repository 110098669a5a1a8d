package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			TickIntervalMs: 200,
			FrameRate:      60,
		},
		Display: DisplayConfig{
			HiddenRows: 4,
			Block:      "[]",
			Empty:      " .",
			Palette:    []string{"red", "green", "blue", "cyan", "magenta", "yellow", "orange"},
		},
		Keys: KeysConfig{
			Left:    []string{"left", "h"},
			Right:   []string{"right", "l"},
			Rotate:  []string{"up", "k"},
			Drop:    []string{"down", "j"},
			Advance: []string{"a"},
			Start:   []string{" "},
			Pause:   []string{"p"},
			Scores:  []string{"tab"},
			Quit:    []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
