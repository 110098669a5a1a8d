package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores        = 100 // Max runs listed
	scoreboardChrome = 6   // Title, borders and help lines around the table
)

// scoreboard lists the runs finished in this session.
type scoreboard struct {
	history *storage.History
	table   table.Model
	width   int
	height  int
}

func newScoreboard(history *storage.History, width, height int) scoreboard {
	s := scoreboard{
		history: history,
		width:   width,
		height:  height,
	}
	s.table = s.createTable()
	return s
}

// createTable creates the table with the current dimensions.
func (s *scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Ended", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(1, s.height-scoreboardChrome)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return t
}

// refresh reloads the rows from the history.
func (s *scoreboard) refresh() {
	var entries []storage.ScoreEntry
	if s.history != nil {
		entries = s.history.TopScores(maxScores)
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Lines),
			formatDuration(e.Duration),
			e.CreatedAt.Format("15:04:05"),
		}
	}
	s.table.SetRows(rows)
	s.table.GotoTop()
}

// resize rebuilds the table for new dimensions.
func (s *scoreboard) resize(width, height int) {
	s.width = width
	s.height = height
	s.table = s.createTable()
	s.refresh()
}

// update passes scrolling keys to the table.
func (s scoreboard) update(msg tea.Msg) (scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

// view renders the scoreboard.
func (s scoreboard) view() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	title := "SESSION SCORES"
	if s.history != nil && s.history.Count() > 0 {
		title = fmt.Sprintf("SESSION SCORES - best %d", s.history.BestScore())
	}

	var content string
	if len(s.table.Rows()) == 0 {
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render("No finished runs yet.")
	} else {
		content = s.table.View()
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render(title), s.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boxStyle.Render(content), s.width))
	return b.String()
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// centerText centers every line of a block within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
