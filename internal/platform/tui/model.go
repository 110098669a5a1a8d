package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// helpHeight is the number of terminal rows reserved below the game.
const helpHeight = 1

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig
	Keys    KeyMap
	History *storage.History // Finished runs are recorded here
	Logger  *log.Logger      // Nil discards
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	history    *storage.History
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState

	runStarted time.Time // Frame time the current run started

	scores     scoreboard
	showScores bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, opts Options) Model {
	cfg := opts.Runtime.WithDefaults(time.Now())

	history := opts.History
	if history == nil {
		history = storage.NewHistory()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		history:    history,
		logger:     logger,
		config:     cfg,
		keys:       opts.Keys,
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		scores:     newScoreboard(history, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("session ended", "runs", m.history.Count(), "best", m.history.BestScore())
		return m, tea.Quit
	}

	if m.showScores {
		if action == core.ActionScores || msg.String() == "esc" {
			m.showScores = false
			return m, nil
		}
		var cmd tea.Cmd
		m.scores, cmd = m.scores.update(msg)
		return m, cmd
	}

	switch action {
	case core.ActionNone:
	case core.ActionScores:
		if m.gameState.GameOver {
			m.scores.refresh()
			m.showScores = true
		}
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(0, msg.Height-helpHeight)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	m.scores.resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	prev := m.gameState

	if !m.showScores {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
	}
	m.inputFrame.Clear()

	m.observe(prev, m.gameState, now)

	return m, tickCmd(m.config.TickRate)
}

// observe logs state transitions and records finished runs.
func (m *Model) observe(prev, cur core.GameState, now time.Time) {
	switch {
	case !prev.Running() && cur.Running():
		m.runStarted = now
		m.logger.Info("run started")

	case prev.Running() && !cur.Running():
		duration := now.Sub(m.runStarted)
		id := m.history.SaveScore(cur.Score, cur.Lines, duration)
		m.logger.Info("game over", "run", id, "score", cur.Score, "lines", cur.Lines,
			"duration", duration.Round(time.Second))
	}

	if cur.Lines > prev.Lines && !cur.GameOver {
		m.logger.Debug("lines cleared", "count", cur.Lines-prev.Lines, "score", cur.Score)
	}
	if cur.Paused != prev.Paused {
		m.logger.Debug("pause toggled", "paused", cur.Paused)
	}
}

// helpStyle dims the help bar.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showScores {
		return m.scores.view()
	}

	m.game.Render(m.screen)
	keys := m.keys.ForState(m.gameState)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// ShowingScores reports whether the scoreboard is open.
func (m Model) ShowingScores() bool {
	return m.showScores
}

// Run starts the Bubble Tea program for the given game.
func Run(game core.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
