package main

import (
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimulationView(t *testing.T) (*View, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return &View{Screen: screen}, screen
}

func TestViewDrawsLockedCells(t *testing.T) {
	view, screen := newSimulationView(t)

	var board tetris.Board
	board[tetris.Height-1][0] = tetris.CellOf(tetris.ShapeZ)
	g, err := tetris.NewGame(tetris.ClassicConfig(), tetris.WithBoard(board), tetris.WithRand(rand.New(rand.NewPCG(1, 1))))
	require.NoError(t, err)

	snap := g.Snapshot()
	view.Draw(&snap, false)

	_, _, style, _ := screen.GetContent(boardLeft, boardTop+tetris.Height-1)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.ColorRed, bg)

	mainc, _, _, _ := screen.GetContent(boardLeft-1, boardTop-1)
	assert.Equal(t, '╔', mainc)
}

func TestViewShowsGameOver(t *testing.T) {
	view, screen := newSimulationView(t)

	g, err := tetris.NewGame(tetris.ClassicConfig())
	require.NoError(t, err)
	snap := g.Submit(tetris.Quit)

	view.Draw(&snap, false)

	text := ""
	for i := range len("GAME OVER") {
		mainc, _, _, _ := screen.GetContent(boardLeft+2+i, boardTop+tetris.Height/2)
		text += string(mainc)
	}
	assert.Equal(t, "GAME OVER", text)
}
