package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

const (
	boardLeft = 2
	boardTop  = 3
	// every board cell is two terminal columns wide
	cellWidth = 2
	panelLeft = boardLeft + tetris.Width*cellWidth + 5
)

var shapeColors = [tetris.ShapeCount]tcell.Color{
	tetris.ShapeI: tcell.ColorAqua,
	tetris.ShapeO: tcell.ColorYellow,
	tetris.ShapeT: tcell.ColorFuchsia,
	tetris.ShapeS: tcell.ColorLime,
	tetris.ShapeZ: tcell.ColorRed,
	tetris.ShapeJ: tcell.ColorBlue,
	tetris.ShapeL: tcell.ColorOrange,
}

var (
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	ghostStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// View draws snapshots onto a tcell screen.
type View struct {
	Screen tcell.Screen
}

func (v *View) Draw(snap *tetris.Snapshot, paused bool) {
	s := v.Screen
	s.Clear()

	v.text(boardLeft, 0, textStyle, "TETRIS")
	v.text(boardLeft, 1, textStyle, fmt.Sprintf("Score: %d    Level: %d    Lines: %d", snap.Score, snap.Level, snap.Lines))

	v.frame(boardLeft-1, boardTop-1, tetris.Width*cellWidth, tetris.Height)

	for y := range tetris.Height {
		for x := range tetris.Width {
			col := boardLeft + x*cellWidth
			row := boardTop + y

			cell, _ := snap.Cell(x, y)
			if shape, ok := cell.Shape(); ok {
				v.block(col, row, shapeColors[shape])
				continue
			}

			switch {
			case snap.IsGhost(x, y):
				v.text(col, row, ghostStyle, "░░")
			case (x+y)%2 == 0:
				v.text(col, row, emptyStyle, " ·")
			}
		}
	}

	v.panel(snap)

	switch {
	case snap.GameOver:
		v.text(boardLeft+2, boardTop+tetris.Height/2, alertStyle, "GAME OVER")
		v.text(boardLeft+2, boardTop+tetris.Height/2+1, textStyle, "r: again  q: exit")
	case paused:
		v.text(boardLeft+5, boardTop+tetris.Height/2, alertStyle, "PAUSED")
	}

	v.text(boardLeft, boardTop+tetris.Height+2, textStyle, "←→ move  ↓ soft  ↑/x rotate  z ccw  space drop  e hold  p pause  q quit")

	s.Show()
}

func (v *View) panel(snap *tetris.Snapshot) {
	v.text(panelLeft, boardTop, textStyle, "HOLD")
	if snap.HasHold {
		c := shapeColors[snap.Hold]
		if !snap.CanHold {
			c = tcell.ColorGray
		}
		v.preview(panelLeft, boardTop+1, snap.Hold, c)
	}

	v.text(panelLeft, boardTop+6, textStyle, "NEXT")
	for i, shape := range snap.Next {
		v.preview(panelLeft, boardTop+7+i*4, shape, shapeColors[shape])
	}
}

// preview draws the occupied rows of a shape; every canonical shape fits in
// matrix rows 1 and 2.
func (v *View) preview(col, row int, shape tetris.Shape, c tcell.Color) {
	m := shape.Matrix(0)
	for i := 1; i <= 2; i++ {
		for j := range 4 {
			if m[i][j] {
				v.block(col+j*cellWidth, row+i-1, c)
			}
		}
	}
}

func (v *View) block(col, row int, c tcell.Color) {
	style := tcell.StyleDefault.Background(c).Foreground(c)
	v.Screen.SetContent(col, row, ' ', nil, style)
	v.Screen.SetContent(col+1, row, ' ', nil, style)
}

func (v *View) frame(left, top, width, height int) {
	right := left + width + 1
	bottom := top + height + 1

	for x := left + 1; x < right; x++ {
		v.Screen.SetContent(x, top, '═', nil, frameStyle)
		v.Screen.SetContent(x, bottom, '═', nil, frameStyle)
	}
	for y := top + 1; y < bottom; y++ {
		v.Screen.SetContent(left, y, '║', nil, frameStyle)
		v.Screen.SetContent(right, y, '║', nil, frameStyle)
	}
	v.Screen.SetContent(left, top, '╔', nil, frameStyle)
	v.Screen.SetContent(right, top, '╗', nil, frameStyle)
	v.Screen.SetContent(left, bottom, '╚', nil, frameStyle)
	v.Screen.SetContent(right, bottom, '╝', nil, frameStyle)
}

func (v *View) text(col, row int, style tcell.Style, s string) {
	for _, r := range s {
		v.Screen.SetContent(col, row, r, nil, style)
		col++
	}
}
