package tetris

// Point is an absolute board coordinate. Y grows downward and may be
// negative while a piece is still entering from above the board.
type Point struct {
	X, Y int
}

// Piece is a placement of a shape: its 4x4 anchor (top-left corner of the
// matrix) and the number of clockwise quarter turns applied.
type Piece struct {
	Shape    Shape
	X, Y     int
	Rotation int
}

// SpawnPiece places shape at the spawn anchor with no rotation.
func SpawnPiece(shape Shape) Piece {
	return Piece{
		Shape:    shape,
		X:        SpawnX,
		Y:        SpawnY,
		Rotation: 0,
	}
}

// Moved returns a copy of p translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of p turned by turns clockwise quarter turns.
// The stored rotation is kept in [0, 4).
func (p Piece) Rotated(turns int) Piece {
	p.Rotation = normalizeRotation(p.Rotation + turns)
	return p
}

// Matrix returns the rotated occupancy grid of the piece.
func (p Piece) Matrix() Matrix {
	return p.Shape.Matrix(p.Rotation)
}

// Cells returns the absolute coordinates of the occupied cells, row-major.
func (p Piece) Cells() []Point {
	m := p.Matrix()
	cells := make([]Point, 0, 4)
	for i := range 4 {
		for j := range 4 {
			if m[i][j] {
				cells = append(cells, Point{X: p.X + j, Y: p.Y + i})
			}
		}
	}
	return cells
}
