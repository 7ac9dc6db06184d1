package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

// Game implements ebiten.Game on top of a session.
type Game struct {
	Session *session.Session
	Input   *Input

	// debug overlay, nil unless -debug
	Imgui   *debugui_ebiten.ImguiBackend
	Overlay *debugui.Overlay
	Timer   *debugui.FrameTimer

	snapshot tetris.Snapshot
}

func (g *Game) Update() error {
	if g.Imgui != nil {
		g.Imgui.BeginFrame()
		defer g.Imgui.EndFrame()
	}

	action := g.Input.Poll(g.Imgui != nil && debugui.WantsKeyboard())
	switch action.Kind {
	case ActionExit:
		return ebiten.Termination
	case ActionPause:
		g.Session.TogglePause()
	case ActionRestart:
		if err := g.Session.Restart(); err != nil {
			return err
		}
	case ActionCommand:
		g.Session.Push(action.Command)
	}

	g.snapshot = g.Session.Once(time.Second / TPS)

	if g.Overlay != nil {
		g.Overlay.Render(float32(g.Timer.Tick().Seconds()))
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawGame(screen, &g.snapshot, g.Session.Paused())

	if g.Imgui != nil {
		g.Imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Imgui != nil {
		g.Imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}
