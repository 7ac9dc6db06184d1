package tetris

import "time"

// ActiveView describes the falling piece as a renderer sees it.
type ActiveView struct {
	Piece Piece
	// Cells are the absolute coordinates of the piece, including any that
	// are still above the board.
	Cells []Point
	// Ghost are the cells the piece would occupy after a hard drop.
	Ghost []Point
}

// Snapshot is a read-only copy of the game state. Mutating it has no effect
// on the Game it came from.
type Snapshot struct {
	Board  Board
	Active ActiveView
	// Hold is meaningful only when HasHold is true.
	Hold    Shape
	HasHold bool
	CanHold bool
	Next    [PreviewSize]Shape

	Score        int
	Level        int
	Lines        int
	FallInterval time.Duration

	State    State
	GameOver bool
}

// Cell returns the board content at (x, y) with the active piece drawn on
// top, and whether that square belongs to the active piece.
func (s *Snapshot) Cell(x, y int) (Cell, bool) {
	if !s.GameOver {
		for _, pt := range s.Active.Cells {
			if pt.X == x && pt.Y == y {
				return CellOf(s.Active.Piece.Shape), true
			}
		}
	}
	return s.Board[y][x], false
}

// IsGhost reports whether (x, y) is part of the landing preview.
func (s *Snapshot) IsGhost(x, y int) bool {
	if s.GameOver {
		return false
	}
	for _, pt := range s.Active.Ghost {
		if pt.X == x && pt.Y == y {
			return true
		}
	}
	return false
}
