package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

func newTestModel(t *testing.T) (Model, *storage.History) {
	t.Helper()
	cfg := config.DefaultTetrisConfig()
	game, err := tetris.NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	history := storage.NewHistory()
	m := NewModel(game, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99},
		Keys:    NewKeyMap(cfg.Keys),
		History: history,
	})
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25}), history
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

// frameAt builds a frame message at a fixed offset from a base time.
func frameAt(n int) TickMsg {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return TickMsg(base.Add(time.Duration(n) * time.Second / 60))
}

func TestModelStartsOnSpace(t *testing.T) {
	m, _ := newTestModel(t)

	if !m.State().GameOver {
		t.Fatal("Model should wait for start")
	}
	if !strings.Contains(m.View(), "PRESS SPACE TO PLAY") {
		t.Error("Expected start prompt in view")
	}

	m = update(t, m, spaceKey)
	m = update(t, m, frameAt(1))
	if m.State().GameOver {
		t.Error("Space should start the game")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Quit command should produce tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelTickSchedulesNextFrame(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(frameAt(1))
	if cmd == nil {
		t.Error("Each frame should schedule the next one")
	}
}

// playUntilOver hard drops every piece until the run ends.
func playUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	m = update(t, m, spaceKey)
	m = update(t, m, frameAt(1))
	for i := 2; i < 2000; i++ {
		if m.State().GameOver {
			return m
		}
		m = update(t, m, downKey)
		m = update(t, m, runeKey('a'))
		m = update(t, m, frameAt(i))
	}
	t.Fatal("Run did not end")
	return m
}

func TestModelRecordsFinishedRun(t *testing.T) {
	m, history := newTestModel(t)
	m = playUntilOver(t, m)

	if history.Count() != 1 {
		t.Fatalf("Expected one recorded run, got %d", history.Count())
	}
	run := history.TopScores(1)[0]
	if run.Duration <= 0 {
		t.Errorf("Run duration should be positive, got %v", run.Duration)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("Expected game over overlay")
	}

	// Further frames do not record the same run again
	m = update(t, m, frameAt(5000))
	if history.Count() != 1 {
		t.Errorf("Run recorded twice")
	}
}

func TestModelScoreboardToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, spaceKey)
	m = update(t, m, frameAt(1))

	m = update(t, m, tabKey)
	if m.ShowingScores() {
		t.Fatal("Scoreboard should not open during a run")
	}

	m = playUntilOver(t, m)
	m = update(t, m, tabKey)
	if !m.ShowingScores() {
		t.Fatal("Scoreboard should open while over")
	}
	if !strings.Contains(m.View(), "SESSION SCORES") {
		t.Error("Expected scoreboard title")
	}

	// Keys do not reach the game while the scoreboard is open
	m = update(t, m, spaceKey)
	m = update(t, m, frameAt(9000))
	if !m.State().GameOver {
		t.Error("Game started behind the scoreboard")
	}

	m = update(t, m, escKey)
	if m.ShowingScores() {
		t.Error("Esc should close the scoreboard")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, spaceKey)
	m = update(t, m, frameAt(1))

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = update(t, m, frameAt(2))
	if m.State().GameOver {
		t.Error("Resizing should not end the run")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("Expected size warning")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '#', core.ColorRed)
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "#") {
		t.Errorf("Line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "cd") {
		t.Errorf("Line 1 = %q", lines[1])
	}
}

func TestRenderShapes(t *testing.T) {
	shapes, err := tetris.BuildShapeTable(tetris.ClassicEncodings)
	if err != nil {
		t.Fatalf("BuildShapeTable: %v", err)
	}
	colors, err := config.DefaultTetrisConfig().Display.Colors()
	if err != nil {
		t.Fatalf("Colors: %v", err)
	}

	out := RenderShapes(shapes, "[]", colors)
	if got := strings.Count(out, "[]"); got != tetris.PieceKinds*tetris.Rotations*tetris.CellsPerPiece {
		t.Errorf("Gallery has %d blocks", got)
	}
	for _, letter := range []string{"I", "O", "Z", "S", "J", "L", "T"} {
		if !strings.Contains(out, letter) {
			t.Errorf("Gallery missing %s", letter)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(75 * time.Second); got != "1:15" {
		t.Errorf("formatDuration(75s) = %q", got)
	}
	if got := formatDuration(1500 * time.Millisecond); got != "0:02" {
		t.Errorf("formatDuration(1.5s) = %q", got)
	}
}
