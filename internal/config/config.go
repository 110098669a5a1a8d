// Package config provides YAML-based configuration loading for the game's
// presentation and timing. The rules themselves are not configurable.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// PaletteSize is the number of piece colours, one per kind.
const PaletteSize = 7

// MaxHiddenRows caps display.hidden_rows so the visible well is never empty.
const MaxHiddenRows = 20

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
	Keys    KeysConfig    `yaml:"keys"`
}

// TimingConfig defines how often gravity and frames run.
type TimingConfig struct {
	TickIntervalMs int `yaml:"tick_interval_ms"` // Gravity cadence in milliseconds
	FrameRate      int `yaml:"frame_rate"`       // Frames per second
}

// TickInterval returns the gravity cadence as a duration.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickIntervalMs) * time.Millisecond
}

// FramesPerTick returns how many frames pass between two gravity steps.
// Always at least 1.
func (t TimingConfig) FramesPerTick() int {
	frames := (t.TickIntervalMs*t.FrameRate + 500) / 1000
	return max(1, frames)
}

// DisplayConfig defines how the well is drawn.
type DisplayConfig struct {
	HiddenRows int      `yaml:"hidden_rows"` // Spawn rows not drawn
	Block      string   `yaml:"block"`       // Two characters for an occupied cell
	Empty      string   `yaml:"empty"`       // Two characters for an empty cell
	Palette    []string `yaml:"palette"`     // Colour names for kinds 1..7
}

// Colors resolves the palette names.
func (d DisplayConfig) Colors() ([PaletteSize]core.Color, error) {
	var colors [PaletteSize]core.Color
	if len(d.Palette) != PaletteSize {
		return colors, fmt.Errorf("config: palette has %d colors, want %d", len(d.Palette), PaletteSize)
	}
	for i, name := range d.Palette {
		c, err := core.ParseColor(name)
		if err != nil {
			return colors, fmt.Errorf("config: palette[%d]: %w", i, err)
		}
		colors[i] = c
	}
	return colors, nil
}

// KeysConfig lists the key names bound to each action.
// Names follow Bubble Tea's key strings ("left", "ctrl+c", " ").
type KeysConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Rotate  []string `yaml:"rotate"`
	Drop    []string `yaml:"drop"`
	Advance []string `yaml:"advance"`
	Start   []string `yaml:"start"`
	Pause   []string `yaml:"pause"`
	Scores  []string `yaml:"scores"`
	Quit    []string `yaml:"quit"`
}

// bindings returns the key lists by action name, in a fixed order.
func (k KeysConfig) bindings() []struct {
	name string
	keys []string
} {
	return []struct {
		name string
		keys []string
	}{
		{"left", k.Left},
		{"right", k.Right},
		{"rotate", k.Rotate},
		{"drop", k.Drop},
		{"advance", k.Advance},
		{"start", k.Start},
		{"pause", k.Pause},
		{"scores", k.Scores},
		{"quit", k.Quit},
	}
}

// Validate reports every problem in the configuration at once.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Timing.TickIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("config: timing.tick_interval_ms must be positive, got %d", c.Timing.TickIntervalMs))
	}
	if c.Timing.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("config: timing.frame_rate must be positive, got %d", c.Timing.FrameRate))
	}
	if c.Display.HiddenRows < 0 || c.Display.HiddenRows > MaxHiddenRows {
		errs = append(errs, fmt.Errorf("config: display.hidden_rows %d out of range [0, %d]",
			c.Display.HiddenRows, MaxHiddenRows))
	}
	if n := utf8.RuneCountInString(c.Display.Block); n != 2 {
		errs = append(errs, fmt.Errorf("config: display.block must be 2 characters, got %d", n))
	}
	if n := utf8.RuneCountInString(c.Display.Empty); n != 2 {
		errs = append(errs, fmt.Errorf("config: display.empty must be 2 characters, got %d", n))
	}
	if _, err := c.Display.Colors(); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]string)
	for _, b := range c.Keys.bindings() {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("config: keys.%s has no keys", b.name))
		}
		for _, k := range b.keys {
			if other, dup := seen[k]; dup {
				errs = append(errs, fmt.Errorf("config: key %q bound to both %s and %s", k, other, b.name))
				continue
			}
			seen[k] = b.name
		}
	}

	return errors.Join(errs...)
}
