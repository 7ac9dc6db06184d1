package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

const (
	boardX = 40
	boardY = 60
	panelX = boardX + tetris.Width*CellSize + 30
)

var shapeColors = [tetris.ShapeCount]color.RGBA{
	tetris.ShapeI: {102, 191, 255, 255},
	tetris.ShapeO: {255, 203, 0, 255},
	tetris.ShapeT: {135, 60, 190, 255},
	tetris.ShapeS: {0, 228, 48, 255},
	tetris.ShapeZ: {230, 41, 55, 255},
	tetris.ShapeJ: {0, 121, 241, 255},
	tetris.ShapeL: {255, 161, 0, 255},
}

var (
	backgroundColor = color.RGBA{16, 16, 24, 255}
	wellColor       = color.RGBA{28, 28, 40, 255}
	gridColor       = color.RGBA{40, 40, 56, 255}
	ghostColor      = color.RGBA{255, 255, 255, 60}
	frameColor      = color.RGBA{128, 128, 128, 255}
)

func drawGame(screen *ebiten.Image, snap *tetris.Snapshot, paused bool) {
	screen.Fill(backgroundColor)

	vector.DrawFilledRect(screen, boardX, boardY, tetris.Width*CellSize, tetris.Height*CellSize, wellColor, false)
	vector.StrokeRect(screen, boardX-2, boardY-2, tetris.Width*CellSize+4, tetris.Height*CellSize+4, 2, frameColor, false)

	for y := range tetris.Height {
		for x := range tetris.Width {
			px := float32(boardX + x*CellSize)
			py := float32(boardY + y*CellSize)

			cell, _ := snap.Cell(x, y)
			if shape, ok := cell.Shape(); ok {
				drawBlock(screen, px, py, CellSize, shapeColors[shape])
				continue
			}

			if snap.IsGhost(x, y) {
				vector.DrawFilledRect(screen, px, py, CellSize, CellSize, ghostColor, false)
			}
			vector.StrokeRect(screen, px, py, CellSize, CellSize, 1, gridColor, false)
		}
	}

	drawPanel(screen, snap)

	switch {
	case snap.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R to restart", boardX+20, boardY+tetris.Height*CellSize/2)
	case paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P to resume", boardX+40, boardY+tetris.Height*CellSize/2)
	}

	ebitenutil.DebugPrintAt(screen, "Arrows/WASD move  Up/X rotate  Z ccw  Space drop  C hold  P pause  Esc exit", 10, ScreenHeight-20)
}

func drawPanel(screen *ebiten.Image, snap *tetris.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), panelX, boardY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d", snap.Level), panelX, boardY+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", snap.Lines), panelX, boardY+40)

	ebitenutil.DebugPrintAt(screen, "HOLD", panelX, boardY+80)
	if snap.HasHold {
		c := shapeColors[snap.Hold]
		if !snap.CanHold {
			c.A = 110
		}
		drawPreview(screen, snap.Hold, panelX, boardY+100, c)
	}

	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, boardY+200)
	for i, shape := range snap.Next {
		drawPreview(screen, shape, panelX, boardY+220+i*90, shapeColors[shape])
	}
}

func drawPreview(screen *ebiten.Image, shape tetris.Shape, x, y int, c color.RGBA) {
	const size = CellSize * 2 / 3
	m := shape.Matrix(0)
	for i := range 4 {
		for j := range 4 {
			if m[i][j] {
				drawBlock(screen, float32(x+j*size), float32(y+i*size), size, c)
			}
		}
	}
}

func drawBlock(screen *ebiten.Image, x, y, size float32, c color.RGBA) {
	vector.DrawFilledRect(screen, x, y, size, size, c, false)
	vector.StrokeRect(screen, x, y, size, size, 1, color.Black, false)
}
