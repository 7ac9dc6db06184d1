package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

type GameStateWindow struct{}

func (w *GameStateWindow) Render(snap *tetris.Snapshot) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 260), imgui.CondOnce)

	if !imgui.BeginV("Game State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Level: %d", snap.Level))
	imgui.Text(fmt.Sprintf("Lines: %d", snap.Lines))
	imgui.Text(fmt.Sprintf("Fall Interval: %s", snap.FallInterval))
	imgui.Separator()

	p := snap.Active.Piece
	imgui.Text(fmt.Sprintf("Active: %s at (%d, %d) rot %d", p.Shape, p.X, p.Y, p.Rotation))

	hold := "-"
	if snap.HasHold {
		hold = snap.Hold.String()
	}
	imgui.Text(fmt.Sprintf("Hold: %s (can hold: %t)", hold, snap.CanHold))

	next := make([]string, 0, len(snap.Next))
	for _, shape := range snap.Next {
		next = append(next, shape.String())
	}
	imgui.Text(fmt.Sprintf("Next: %s", strings.Join(next, " ")))
	imgui.Text(fmt.Sprintf("Filled Cells: %d", snap.Board.Occupied()))

	if snap.GameOver {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	}

	imgui.End()
}
