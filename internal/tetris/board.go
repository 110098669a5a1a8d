package tetris

// Board dimensions of the classic well.
const (
	Cols = 10
	Rows = 24
)

// Cell is the content of one board square: Empty or a kind colour 1..7.
type Cell uint8

// Empty marks an unoccupied square.
const Empty Cell = 0

// Board is the grid of settled blocks, indexed [row][col] with row 0 at the top.
type Board [Rows][Cols]Cell

// InBounds reports whether (col, row) lies inside the board.
func InBounds(col, row int) bool {
	return col >= 0 && col < Cols && row >= 0 && row < Rows
}

// At returns the cell at (col, row), or Empty outside the board.
func (b Board) At(col, row int) Cell {
	if !InBounds(col, row) {
		return Empty
	}
	return b[row][col]
}

// Filled counts the non-empty cells.
func (b Board) Filled() int {
	n := 0
	for row := range b {
		for _, c := range b[row] {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// rowFull reports whether every column of the row is occupied.
func (b *Board) rowFull(row int) bool {
	for _, c := range b[row] {
		if c == Empty {
			return false
		}
	}
	return true
}

// clearFullRows removes every full row in a single top-to-bottom pass.
// Rows above a removed row move down by one and row 0 becomes empty.
// Returns the number of rows removed.
func (b *Board) clearFullRows() int {
	cleared := 0
	for row := range Rows {
		if !b.rowFull(row) {
			continue
		}
		for r := row; r > 0; r-- {
			b[r] = b[r-1]
		}
		b[0] = [Cols]Cell{}
		cleared++
	}
	return cleared
}
