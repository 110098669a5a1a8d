package tetris

import (
	"errors"
	"fmt"
	"math/bits"
)

// Piece geometry constants.
const (
	PieceKinds    = 7
	Rotations     = 4
	CellsPerPiece = 4
	BoxSize       = 4 // Side of the bounding box every shape fits in
)

// ErrMalformedShape is returned when an encoding does not describe
// exactly CellsPerPiece cells for some rotation.
var ErrMalformedShape = errors.New("tetris: malformed shape encoding")

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindZ
	KindS
	KindJ
	KindL
	KindT
)

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindZ:
		return "Z"
	case KindS:
		return "S"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindT:
		return "T"
	default:
		return "?"
	}
}

// Cell returns the board value a solidified block of this kind leaves behind.
func (k Kind) Cell() Cell {
	return Cell(k + 1)
}

// ClassicEncodings packs the four rotations of every kind into one value.
// Rotation r lives in bits [16r, 16r+16); bit k of a segment marks the cell
// at column k%4, row k/4.
var ClassicEncodings = [PieceKinds]uint64{
	0x0F00444400F02222, // I
	0x0660066006600660, // O
	0x0C6004C800C60264, // Z
	0x06C008C4006C0462, // S
	0x08E0044C00E20644, // J
	0x00E8044602E00C44, // L
	0x046404E004C400E4, // T
}

// Offset is a cell position relative to a piece anchor.
type Offset struct {
	Col, Row int
}

// Shape lists the occupied cells of one kind in one rotation, in ascending
// bit order.
type Shape [CellsPerPiece]Offset

// Contains reports whether the shape occupies the given offset.
func (s Shape) Contains(col, row int) bool {
	for _, o := range s {
		if o.Col == col && o.Row == row {
			return true
		}
	}
	return false
}

// ShapeTable holds the decoded shapes for every kind and rotation.
// It is immutable once built.
type ShapeTable struct {
	shapes [PieceKinds][Rotations]Shape
}

// BuildShapeTable decodes the packed encodings into a ShapeTable.
func BuildShapeTable(encodings [PieceKinds]uint64) (*ShapeTable, error) {
	var t ShapeTable
	for kind, enc := range encodings {
		for rot := range Rotations {
			segment := uint16(enc >> (16 * rot))
			shape, err := decodeSegment(segment)
			if err != nil {
				return nil, fmt.Errorf("%w: kind %s rotation %d: %v", ErrMalformedShape, Kind(kind), rot, err)
			}
			t.shapes[kind][rot] = shape
		}
	}
	return &t, nil
}

// decodeSegment turns one 16-bit rotation segment into its cell offsets.
func decodeSegment(segment uint16) (Shape, error) {
	var shape Shape
	if n := bits.OnesCount16(segment); n != CellsPerPiece {
		return shape, fmt.Errorf("%d cells set, want %d", n, CellsPerPiece)
	}

	i := 0
	for k := range BoxSize * BoxSize {
		if segment&(1<<k) == 0 {
			continue
		}
		shape[i] = Offset{Col: k % BoxSize, Row: k / BoxSize}
		i++
	}
	return shape, nil
}

// Shape returns the cells of kind at the given rotation.
// The rotation is taken modulo Rotations.
func (t *ShapeTable) Shape(kind Kind, rotation int) Shape {
	return t.shapes[kind][rotation&(Rotations-1)]
}
