package tetris

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants for the terminal view.
const (
	hudHeight = 2 // Score line and separator
	cellWidth = 2 // Terminal columns per board cell
	panelGap  = 2 // Columns between the well and the preview box
)

// Game adapts an Engine to core.Game: it maps input actions to engine
// commands, derives gravity from the frame clock and draws the well.
type Game struct {
	cfg    config.TetrisConfig
	shapes *ShapeTable
	colors [config.PaletteSize]core.Color

	engine *Engine
	tick   uint64

	framesPerTick int
	gravityTicker int // Frames since the last gravity step

	paused   bool
	played   bool // Start has been called at least once
	tooSmall bool

	// Screen layout
	screenW, screenH int
	well             core.Rect
	preview          core.Rect
}

// NewGame builds the shape table and palette once and returns a game ready
// for Reset. Malformed shapes or palette names fail here.
func NewGame(cfg config.TetrisConfig) (*Game, error) {
	shapes, err := BuildShapeTable(ClassicEncodings)
	if err != nil {
		return nil, err
	}
	colors, err := cfg.Display.Colors()
	if err != nil {
		return nil, fmt.Errorf("tetris: %w", err)
	}

	g := &Game{
		cfg:    cfg,
		shapes: shapes,
		colors: colors,
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset creates a fresh engine seeded from cfg. The engine waits in
// StateOver until the start action arrives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine = NewWithShapes(g.shapes, NewSeededSource(cfg.Seed))
	g.tick = 0
	g.gravityTicker = 0
	g.paused = false
	g.played = false

	timing := g.cfg.Timing
	if cfg.TickRate > 0 {
		timing.FrameRate = cfg.TickRate
	}
	g.framesPerTick = timing.FramesPerTick()

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout for new screen dimensions.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height

	wellW := Cols*cellWidth + 2
	wellH := Rows - g.cfg.Display.HiddenRows + 2
	previewW := BoxSize*cellWidth + 2
	previewH := BoxSize + 2

	requiredW := wellW + panelGap + previewW
	requiredH := hudHeight + wellH
	if width < requiredW || height < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	left := (width - requiredW) / 2
	g.well = core.NewRect(left, hudHeight, wellW, wellH)
	g.preview = core.NewRect(g.well.Right()+panelGap, hudHeight, previewW, previewH)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.engine.Over() {
		if in.Has(core.ActionStart) {
			g.engine.Start()
			g.played = true
			g.paused = false
			g.gravityTicker = 0
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Order {
		g.apply(a)
	}

	// A command above may have ended the game
	if !g.engine.Over() {
		g.gravityTicker++
		if g.gravityTicker >= g.framesPerTick {
			g.gravityTicker = 0
			g.engine.Tick()
		}
	}

	return core.StepResult{State: g.State()}
}

// apply runs the engine command bound to a single action.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.engine.Move(-1)
	case core.ActionRight:
		g.engine.Move(1)
	case core.ActionRotate:
		g.engine.Rotate()
	case core.ActionDrop:
		g.engine.HardDrop()
	case core.ActionAdvance:
		g.engine.Tick()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Lines:    g.engine.Lines(),
		GameOver: g.engine.Over(),
		Paused:   g.paused,
	}
}

// Snapshot returns the engine state.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		wellW := Cols*cellWidth + 2
		needW := wellW + panelGap + BoxSize*cellWidth + 2
		needH := hudHeight + Rows - g.cfg.Display.HiddenRows + 2
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Window too small")
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	snap := g.engine.Snapshot()
	g.renderWell(dst, snap)
	g.renderPreview(dst, snap)

	switch {
	case snap.Over() && g.played:
		g.renderOverlay(dst, g.well, "GAME OVER", "PRESS SPACE TO PLAY")
	case snap.Over():
		g.renderOverlay(dst, g.well, "TETRIS", "PRESS SPACE TO PLAY")
	case g.paused:
		g.renderOverlay(dst, g.well, "PAUSED", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris | Score: %d  Lines: %d", g.engine.Score(), g.engine.Lines())
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderWell draws the bordered board without the hidden spawn rows.
func (g *Game) renderWell(dst *core.Screen, snap Snapshot) {
	dst.DrawBox(g.well)

	hidden := g.cfg.Display.HiddenRows
	for row := hidden; row < Rows; row++ {
		y := g.well.Y + 1 + row - hidden
		for col := range Cols {
			g.drawCell(dst, g.well.X+1+col*cellWidth, y, snap.Grid[row][col])
		}
	}
}

// renderPreview draws the NEXT box.
func (g *Game) renderPreview(dst *core.Screen, snap Snapshot) {
	dst.DrawBox(g.preview)
	dst.DrawText(g.preview.X+1, g.preview.Y, "NEXT")

	for row := range BoxSize {
		for col := range BoxSize {
			g.drawCell(dst, g.preview.X+1+col*cellWidth, g.preview.Y+1+row, snap.Preview[row][col])
		}
	}
}

// drawCell writes one board cell as cellWidth characters.
func (g *Game) drawCell(dst *core.Screen, x, y int, c Cell) {
	if c == Empty {
		dst.DrawTextColored(x, y, g.cfg.Display.Empty, core.ColorGray)
		return
	}
	dst.DrawTextColored(x, y, g.cfg.Display.Block, g.colors[int(c)-1])
}

// renderOverlay draws a two-line message box centered in area.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	textW := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	box := area.Centered(textW+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	g.drawCenteredIn(dst, box, box.Y+1, line1)
	g.drawCenteredIn(dst, box, box.Y+3, line2)
}

// drawCenteredIn draws text horizontally centered within box on row y.
func (g *Game) drawCenteredIn(dst *core.Screen, box core.Rect, y int, text string) {
	x := box.X + (box.W-utf8.RuneCountInString(text))/2
	dst.DrawText(x, y, text)
}

// DebugState returns a text dump of the engine state.
func (g *Game) DebugState() string {
	snap := g.engine.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, State: %s, Score: %d, Lines: %d\n", g.tick, snap.State, snap.Score, snap.Lines)
	fmt.Fprintf(&b, "Piece: %s rot %d at (%d, %d), Next: %s\n",
		snap.Piece.Kind, snap.Piece.Rotation, snap.Piece.Col, snap.Piece.Row, snap.Next)
	for row := range Rows {
		for col := range Cols {
			if c := snap.Grid[row][col]; c != Empty {
				b.WriteString(Kind(c - 1).String())
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
