package tetris

const (
	Width  = 10
	Height = 20

	// SpawnX and SpawnY anchor every freshly spawned piece. The canonical
	// shapes keep row 0 empty, so a spawned piece starts on the top row.
	SpawnX = Width/2 - 2
	SpawnY = -1
)

// Cell is the content of one board square: Empty, or the shape that locked
// there offset by one.
type Cell uint8

const Empty Cell = 0

// CellOf returns the cell value written when shape locks.
func CellOf(shape Shape) Cell {
	return Cell(shape) + 1
}

// Shape returns the shape that occupies c, if any.
func (c Cell) Shape() (Shape, bool) {
	if c == Empty {
		return 0, false
	}
	return Shape(c - 1), true
}

func (c Cell) Occupied() bool {
	return c != Empty
}

// Board is the Height x Width well, indexed [row][column] with row 0 on top.
type Board [Height][Width]Cell

// Fits reports whether p is a legal placement on b. Cells above the board
// (y < 0) are only checked against the side walls so that pieces can spawn
// partially hidden.
func (b *Board) Fits(p Piece) bool {
	m := p.Matrix()
	for i := range 4 {
		for j := range 4 {
			if !m[i][j] {
				continue
			}

			x := p.X + j
			y := p.Y + i

			if x < 0 || x >= Width || y >= Height {
				return false
			}

			if y >= 0 && b[y][x].Occupied() {
				return false
			}
		}
	}
	return true
}

// Merge writes p into the board. Cells outside the board are skipped.
func (b *Board) Merge(p Piece) {
	cell := CellOf(p.Shape)
	for _, pt := range p.Cells() {
		if b.inBounds(pt) {
			b[pt.Y][pt.X] = cell
		}
	}
}

// ClearFullRows removes every full row, dropping the rows above it, and
// returns how many rows were removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := Height - 1; y >= 0; {
		if !b.RowFull(y) {
			y--
			continue
		}

		cleared++
		for k := y; k > 0; k-- {
			b[k] = b[k-1]
		}
		b[0] = [Width]Cell{}
		// re-examine y, a new row has moved into it
	}
	return cleared
}

// RowFull reports whether every cell in row y is occupied.
func (b *Board) RowFull(y int) bool {
	for x := range Width {
		if !b[y][x].Occupied() {
			return false
		}
	}
	return true
}

// Drop returns p moved down as far as it legally goes. The result equals p
// when p cannot move; a piece that does not fit is returned unchanged.
func (b *Board) Drop(p Piece) Piece {
	if !b.Fits(p) {
		return p
	}
	for {
		next := p.Moved(0, 1)
		if !b.Fits(next) {
			return p
		}
		p = next
	}
}

// Occupied counts the filled cells on the board.
func (b *Board) Occupied() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if b[y][x].Occupied() {
				n++
			}
		}
	}
	return n
}

func (b *Board) inBounds(pt Point) bool {
	return pt.X >= 0 && pt.X < Width && pt.Y >= 0 && pt.Y < Height
}
