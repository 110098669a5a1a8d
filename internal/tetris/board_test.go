package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fillRow occupies every column of row except the listed gaps.
func fillRow(b *Board, row int, c Cell, gaps ...int) {
	for col := range Cols {
		b[row][col] = c
	}
	for _, col := range gaps {
		b[row][col] = Empty
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		col, row int
		want     bool
	}{
		{0, 0, true},
		{Cols - 1, Rows - 1, true},
		{-1, 0, false},
		{0, -1, false},
		{Cols, 0, false},
		{0, Rows, false},
	}

	for _, tc := range tests {
		if got := InBounds(tc.col, tc.row); got != tc.want {
			t.Errorf("InBounds(%d, %d) = %v, expected %v", tc.col, tc.row, got, tc.want)
		}
	}
}

func TestBoardAt(t *testing.T) {
	var b Board
	b[3][4] = KindJ.Cell()

	assert.Equal(t, KindJ.Cell(), b.At(4, 3))
	assert.Equal(t, Empty, b.At(-1, 3))
	assert.Equal(t, Empty, b.At(4, Rows))
}

func TestClearFullRowsNoneFull(t *testing.T) {
	var b Board
	fillRow(&b, Rows-1, 1, 9)
	before := b

	assert.Equal(t, 0, b.clearFullRows())
	assert.Equal(t, before, b)
}

func TestClearFullRowsSingle(t *testing.T) {
	var b Board
	fillRow(&b, 23, 2)
	b[22][0] = 5
	b[22][7] = 6
	b[0][4] = 3
	filled := b.Filled()
	above := b[22]

	assert.Equal(t, 1, b.clearFullRows())
	assert.Equal(t, above, b[23])
	assert.Equal(t, filled-Cols, b.Filled())
	// Row 0 moved down and the new top row is empty
	assert.Equal(t, Cell(3), b[1][4])
	assert.Equal(t, [Cols]Cell{}, b[0])
}

func TestClearFullRowsSeparated(t *testing.T) {
	var b Board
	fillRow(&b, 10, 1)
	fillRow(&b, 20, 1)
	b[9][2] = 4  // above both cleared rows: moves down two
	b[15][5] = 7 // between them: moves down one
	b[23][0] = 2 // below both: stays

	assert.Equal(t, 2, b.clearFullRows())
	assert.Equal(t, Cell(4), b[11][2])
	assert.Equal(t, Cell(7), b[16][5])
	assert.Equal(t, Cell(2), b[23][0])
	assert.Equal(t, 3, b.Filled())
}

func TestClearFullRowsFourStacked(t *testing.T) {
	var b Board
	for row := 20; row < Rows; row++ {
		fillRow(&b, row, 1)
	}
	b[19][9] = 5

	assert.Equal(t, 4, b.clearFullRows())
	assert.Equal(t, Cell(5), b[23][9])
	assert.Equal(t, 1, b.Filled())
}

func TestBoardReadsOnEngineCopy(t *testing.T) {
	e := newTestEngine(t, KindO, KindT, KindS)
	e.Start()
	e.HardDrop()
	e.Tick()

	assert.Equal(t, 4, e.Board().Filled())
	assert.Equal(t, KindO.Cell(), e.Board().At(SpawnCol+1, Rows-1))
	assert.Equal(t, Empty, e.Board().At(-1, Rows-1))
}
