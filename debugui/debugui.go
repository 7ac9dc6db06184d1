// Package debugui renders Dear ImGui windows that inspect a running
// session: the game state, piece statistics and frame timing.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/session"
)

// Overlay groups the debug windows. Call Render once per frame between the
// backend's BeginFrame and EndFrame.
type Overlay struct {
	Session *session.Session

	state       GameStateWindow
	pieces      PieceStatsWindow
	performance PerformanceStatsWindow
	control     ControlWindow
}

// NewOverlay returns an overlay for s keeping historyFrames of frame times.
func NewOverlay(s *session.Session, historyFrames int) *Overlay {
	return &Overlay{
		Session:     s,
		performance: NewPerformanceStatsWindow(historyFrames),
	}
}

// Render draws every window. deltaTime is the frame time in seconds.
func (o *Overlay) Render(deltaTime float32) {
	snap := o.Session.Snapshot()

	o.state.Render(&snap)
	o.pieces.Render(o.Session.Game().Stats())
	o.performance.Render(o.Session.Stats(), deltaTime)
	o.control.Render(o.Session)
}

// WantsKeyboard reports whether ImGui is consuming keyboard input, in which
// case the host should not decode game commands this frame.
func WantsKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
