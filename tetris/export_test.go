package tetris

// SetActive replaces the falling piece without any legality check.
func (g *Game) SetActive(p Piece) {
	g.active = p
}

// SetCell writes one board cell directly.
func (g *Game) SetCell(x, y int, c Cell) {
	g.board[y][x] = c
}
