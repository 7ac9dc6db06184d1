package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

var clearNames = [tetris.MaxClear + 1]string{"", "Single", "Double", "Triple", "Tetris"}

type PieceStatsWindow struct{}

func (w *PieceStatsWindow) Render(stats *tetris.Stats) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 330), imgui.CondOnce)

	if !imgui.BeginV("Piece Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	total := stats.TotalSpawned()
	imgui.Text(fmt.Sprintf("Spawned: %d  Locked: %d", total, stats.Locked()))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SpawnTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Shape")
		imgui.TableSetupColumn("Count")
		imgui.TableSetupColumn("Share")
		imgui.TableHeadersRow()

		for _, shape := range tetris.AllShapes() {
			n := stats.Spawned(shape)
			share := 0.0
			if total > 0 {
				share = float64(n) / float64(total) * 100
			}

			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(shape.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", n))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f%%", share))
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Line Clears") {
		for rows := 1; rows <= tetris.MaxClear; rows++ {
			imgui.BulletText(fmt.Sprintf("%s: %d", clearNames[rows], stats.Clears(rows)))
		}
		imgui.TreePop()
	}

	imgui.End()
}
