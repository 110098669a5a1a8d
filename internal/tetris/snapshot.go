package tetris

// Snapshot captures everything a renderer or a determinism test needs,
// taken in one consistent read.
type Snapshot struct {
	State   State
	Score   int
	Lines   int
	Piece   Piece
	Next    Kind
	Grid    Board                  // Settled blocks with the falling piece drawn on top
	Preview [BoxSize][BoxSize]Cell // Next kind in rotation 0, indexed [row][col]
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		State: e.state,
		Score: e.score,
		Lines: e.lines,
		Piece: e.piece,
		Next:  e.next,
		Grid:  e.board,
	}

	for _, o := range e.shapes.Shape(e.piece.Kind, e.piece.Rotation) {
		col, row := e.piece.Col+o.Col, e.piece.Row+o.Row
		if InBounds(col, row) {
			snap.Grid[row][col] = e.piece.Kind.Cell()
		}
	}
	for _, o := range e.shapes.Shape(e.next, 0) {
		snap.Preview[o.Row][o.Col] = e.next.Cell()
	}

	return snap
}

// Over reports whether the snapshot was taken while not running.
func (s Snapshot) Over() bool {
	return s.State != StateRunning
}
