// Package tetris implements the falling-block game engine: the board, the
// piece catalog, the bag randomizer with its lookahead queue and hold slot,
// collision, locking, line clearing and the progression state machine.
//
// The engine never reads a clock or a keyboard. Hosts feed it abstract
// commands through Game.Submit and elapsed time through Game.Advance, and
// render the Snapshot both calls return.
package tetris

// Shape identifies one of the seven tetromino types.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of distinct tetromino types.
const ShapeCount = 7

// Matrix is a 4x4 occupancy grid, indexed [row][column].
type Matrix [4][4]bool

var canonical = [ShapeCount]Matrix{
	ShapeI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	ShapeO: {
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	ShapeT: {
		{false, false, false, false},
		{false, true, true, true},
		{false, false, true, false},
		{false, false, false, false},
	},
	ShapeS: {
		{false, false, false, false},
		{false, false, true, true},
		{false, true, true, false},
		{false, false, false, false},
	},
	ShapeZ: {
		{false, false, false, false},
		{false, true, true, false},
		{false, false, true, true},
		{false, false, false, false},
	},
	ShapeJ: {
		{false, false, false, false},
		{false, true, true, true},
		{false, false, false, true},
		{false, false, false, false},
	},
	ShapeL: {
		{false, false, false, false},
		{false, true, true, true},
		{false, true, false, false},
		{false, false, false, false},
	},
}

// rotations caches every shape in all four orientations. Built once, never written.
var rotations = func() (table [ShapeCount][4]Matrix) {
	for s := range ShapeCount {
		m := canonical[s]
		for r := range 4 {
			table[s][r] = m
			m = Rotate(m)
		}
	}
	return table
}()

// Rotate returns m turned 90 degrees clockwise.
func Rotate(m Matrix) Matrix {
	var rotated Matrix
	for i := range 4 {
		for j := range 4 {
			rotated[i][j] = m[3-j][i]
		}
	}
	return rotated
}

// Matrix returns the occupancy grid of s after rotation clockwise quarter
// turns. Negative and oversized rotation counts are reduced modulo 4.
func (s Shape) Matrix(rotation int) Matrix {
	return rotations[s][normalizeRotation(rotation)]
}

// Valid reports whether s names one of the seven shapes.
func (s Shape) Valid() bool {
	return s < ShapeCount
}

func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// AllShapes returns the seven shapes in catalog order.
func AllShapes() []Shape {
	return []Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}
}

func normalizeRotation(rotation int) int {
	r := rotation % 4
	if r < 0 {
		r += 4
	}
	return r
}
