// Package tetris implements the classic falling-block rule set: shape table,
// collision, movement, gravity, line clearing and scoring.
//
// Engine is a synchronous state machine with no internal locking. Hosts that
// issue commands from several goroutines wrap it in a Locked.
package tetris

import (
	"fmt"
	"time"
)

// Spawn position of every new piece and the loss threshold.
const (
	SpawnCol = 3
	SpawnRow = 0

	// LossRow is the anchor row a blocked piece must have reached to lock.
	// A piece that cannot fall while still above it ends the game.
	LossRow = 4
)

// scoreTable maps lines cleared in one tick to points.
var scoreTable = [...]int{0, 10, 30, 50, 100}

// State is the engine lifecycle state.
type State int

const (
	// StateOver covers both "never started" and "game over".
	StateOver State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateOver:
		return "over"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Piece is the falling piece: its kind, rotation and anchor on the board.
type Piece struct {
	Kind     Kind
	Rotation int
	Col, Row int
}

// TickResult describes what a single gravity step did.
type TickResult struct {
	Cleared int  // Lines removed at the start of the tick
	Fell    bool // The piece moved down one row
	Locked  bool // The piece was solidified and the next one spawned
	Over    bool // The engine is over after this tick
}

// Engine holds the complete state of one game.
type Engine struct {
	shapes *ShapeTable
	src    Source

	board Board
	piece Piece
	next  Kind
	score int
	lines int
	state State
}

// New builds the classic shape table and returns an engine in StateOver with
// the first two pieces already drawn from src. A nil src uses a time-seeded
// source.
func New(src Source) (*Engine, error) {
	shapes, err := BuildShapeTable(ClassicEncodings)
	if err != nil {
		return nil, err
	}
	return NewWithShapes(shapes, src), nil
}

// NewWithShapes returns an engine using an already built shape table.
func NewWithShapes(shapes *ShapeTable, src Source) *Engine {
	if src == nil {
		src = NewSeededSource(time.Now().UnixNano())
	}
	e := &Engine{
		shapes: shapes,
		src:    src,
		state:  StateOver,
	}
	e.piece = Piece{Kind: e.draw(), Col: SpawnCol, Row: SpawnRow}
	e.next = e.draw()
	return e
}

// draw picks the next kind uniformly.
func (e *Engine) draw() Kind {
	return Kind(e.src.Intn(PieceKinds))
}

// Start clears the board and score and puts the engine into StateRunning.
// The queued current and next kinds, and the current rotation, carry over.
func (e *Engine) Start() {
	e.board = Board{}
	e.piece.Col = SpawnCol
	e.piece.Row = SpawnRow
	e.score = 0
	e.lines = 0
	e.state = StateRunning
}

// Collides reports whether the current piece, shifted by (dCol, dRow) and
// turned to rotation, would leave the board or overlap a settled block.
func (e *Engine) Collides(dCol, dRow, rotation int) bool {
	for _, o := range e.shapes.Shape(e.piece.Kind, rotation) {
		col := e.piece.Col + o.Col + dCol
		row := e.piece.Row + o.Row + dRow
		if !InBounds(col, row) || e.board[row][col] != Empty {
			return true
		}
	}
	return false
}

// Move shifts the piece one column left (-1) or right (+1).
// Blocked moves and any other dir are ignored. Returns whether it moved.
func (e *Engine) Move(dir int) bool {
	if e.state != StateRunning || (dir != -1 && dir != 1) {
		return false
	}
	if e.Collides(dir, 0, e.piece.Rotation) {
		return false
	}
	e.piece.Col += dir
	return true
}

// Rotate advances the piece to its next rotation when it fits in place.
// There is no wall kick. Returns whether it rotated.
func (e *Engine) Rotate() bool {
	if e.state != StateRunning {
		return false
	}
	next := (e.piece.Rotation + 1) % Rotations
	if e.Collides(0, 0, next) {
		return false
	}
	e.piece.Rotation = next
	return true
}

// HardDrop moves the piece straight down until it rests on the floor or the
// stack. Locking is left to the next Tick. Returns the rows travelled.
func (e *Engine) HardDrop() int {
	if e.state != StateRunning {
		return 0
	}
	rows := 0
	for !e.Collides(0, 1, e.piece.Rotation) {
		e.piece.Row++
		rows++
	}
	return rows
}

// Tick runs one gravity step: clear full rows, score them, then either drop
// the piece by one row or lock it and spawn the next one. A piece that is
// blocked above LossRow ends the game instead of locking.
func (e *Engine) Tick() TickResult {
	if e.state != StateRunning {
		return TickResult{Over: true}
	}

	var res TickResult
	res.Cleared = e.board.clearFullRows()
	e.score += points(res.Cleared)
	e.lines += res.Cleared

	if !e.Collides(0, 1, e.piece.Rotation) {
		e.piece.Row++
		res.Fell = true
		return res
	}

	if e.piece.Row < LossRow {
		e.state = StateOver
		res.Over = true
		return res
	}

	e.solidify()
	e.spawn()
	res.Locked = true
	return res
}

// points looks up the score for lines cleared in one tick.
func points(cleared int) int {
	if cleared < 0 || cleared >= len(scoreTable) {
		panic(fmt.Sprintf("tetris: %d lines cleared in one tick", cleared))
	}
	return scoreTable[cleared]
}

// solidify writes the current piece into the board.
func (e *Engine) solidify() {
	for _, o := range e.shapes.Shape(e.piece.Kind, e.piece.Rotation) {
		e.board[e.piece.Row+o.Row][e.piece.Col+o.Col] = e.piece.Kind.Cell()
	}
}

// spawn promotes the next piece and draws a new one.
func (e *Engine) spawn() {
	e.piece = Piece{Kind: e.next, Col: SpawnCol, Row: SpawnRow}
	e.next = e.draw()
}

// CellAt returns the board content at (col, row) with the falling piece drawn
// on top. Outside the board it returns Empty.
func (e *Engine) CellAt(col, row int) Cell {
	if !InBounds(col, row) {
		return Empty
	}
	shape := e.shapes.Shape(e.piece.Kind, e.piece.Rotation)
	if shape.Contains(col-e.piece.Col, row-e.piece.Row) {
		return e.piece.Kind.Cell()
	}
	return e.board[row][col]
}

// NextCellAt returns the preview cell at (col, row) of the BoxSize box,
// using the next kind in rotation 0.
func (e *Engine) NextCellAt(col, row int) Cell {
	if e.shapes.Shape(e.next, 0).Contains(col, row) {
		return e.next.Cell()
	}
	return Empty
}

// Board returns a copy of the settled blocks.
func (e *Engine) Board() Board {
	return e.board
}

// Piece returns the falling piece.
func (e *Engine) Piece() Piece {
	return e.piece
}

// Next returns the kind that spawns after the current piece locks.
func (e *Engine) Next() Kind {
	return e.next
}

// Score returns the points earned since Start.
func (e *Engine) Score() int {
	return e.score
}

// Lines returns the rows cleared since Start.
func (e *Engine) Lines() int {
	return e.lines
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Over reports whether the engine is not running.
func (e *Engine) Over() bool {
	return e.state != StateRunning
}
