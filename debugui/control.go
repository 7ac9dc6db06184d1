package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

// ControlWindow pauses, restarts and injects commands into a session.
type ControlWindow struct {
	lastErr error
}

var injectable = []tetris.Command{
	tetris.MoveLeft,
	tetris.MoveRight,
	tetris.SoftDrop,
	tetris.RotateCW,
	tetris.RotateCCW,
	tetris.HardDrop,
	tetris.Hold,
}

func (w *ControlWindow) Render(s *session.Session) {
	imgui.SetNextWindowPosV(imgui.NewVec2(300, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 200), imgui.CondOnce)

	if !imgui.BeginV("Session Control", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Game #%d  Pending: %d", s.Games(), s.Pending()))

	if s.Paused() {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
		if imgui.Button("Resume") {
			s.TogglePause()
		}
		imgui.PopStyleColor()
		imgui.SameLine()
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	} else if imgui.Button("Pause") {
		s.TogglePause()
	}

	imgui.SameLine()
	if imgui.Button("Restart") {
		w.lastErr = s.Restart()
	}

	imgui.Separator()
	imgui.Text("Inject:")
	for i, cmd := range injectable {
		if i%3 != 0 {
			imgui.SameLine()
		}
		if imgui.Button(cmd.String()) {
			s.Push(cmd)
		}
	}

	if w.lastErr != nil {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), w.lastErr.Error())
	}

	imgui.End()
}
