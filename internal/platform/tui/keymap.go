package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap holds the configured key bindings.
// It implements help.KeyMap for the help bar.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Rotate  key.Binding
	Drop    key.Binding
	Advance key.Binding
	Start   key.Binding
	Pause   key.Binding
	Scores  key.Binding
	Quit    key.Binding
}

// NewKeyMap builds bindings from the key lists in the configuration.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:    binding(cfg.Left, "left"),
		Right:   binding(cfg.Right, "right"),
		Rotate:  binding(cfg.Rotate, "rotate"),
		Drop:    binding(cfg.Drop, "drop"),
		Advance: binding(cfg.Advance, "step"),
		Start:   binding(cfg.Start, "play"),
		Pause:   binding(cfg.Pause, "pause"),
		Scores:  binding(cfg.Scores, "scores"),
		Quit:    binding(cfg.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpLabel(keys), desc),
	)
}

// helpLabel joins key names for display, spelling out the space bar.
func helpLabel(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, "/")
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.Drop):
		return core.ActionDrop
	case key.Matches(msg, k.Advance):
		return core.ActionAdvance
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Scores):
		return core.ActionScores
	}
	return core.ActionNone
}

// ForState returns a copy with only the bindings that do something in the
// given state enabled, so the help bar stays short.
func (k KeyMap) ForState(state core.GameState) KeyMap {
	playing := state.Running()
	moving := playing && !state.Paused

	k.Left.SetEnabled(moving)
	k.Right.SetEnabled(moving)
	k.Rotate.SetEnabled(moving)
	k.Drop.SetEnabled(moving)
	k.Advance.SetEnabled(moving)
	k.Pause.SetEnabled(playing)
	k.Start.SetEnabled(!playing)
	k.Scores.SetEnabled(!playing)
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Drop, k.Start, k.Pause, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.Drop, k.Advance},
		{k.Start, k.Pause, k.Scores, k.Quit},
	}
}
