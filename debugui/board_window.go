package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/loop"
)

// BoardWindow shows the score, the running totals, the active piece and a per-row view
// of the settled cells. Its buttons pause and restart the session.
type BoardWindow struct{}

type rowInfo struct {
	Index    int
	Occupied int
	Pattern  string
}

// occupiedRows lists the rows holding at least one settled cell, top to bottom.
func occupiedRows(g board.Grid) []rowInfo {
	var rows []rowInfo
	for y := 0; y < g.Rows(); y++ {
		if !g.RowOccupied(y) {
			continue
		}

		var sb strings.Builder
		count := 0
		for _, cell := range g.Row(y) {
			color, ok := cell.Color()
			if !ok {
				sb.WriteByte('.')
				continue
			}
			count++
			sb.WriteByte(color.String()[0])
		}
		rows = append(rows, rowInfo{Index: y, Occupied: count, Pattern: sb.String()})
	}
	return rows
}

func status(session *loop.Session) (string, imgui.Vec4) {
	switch {
	case session.Engine().Ended():
		return "GAME OVER", imgui.NewVec4(1.0, 0.3, 0.3, 1.0)
	case session.Paused():
		return "PAUSED", imgui.NewVec4(1.0, 0.8, 0.0, 1.0)
	}
	return "RUNNING", imgui.NewVec4(0.0, 1.0, 0.0, 1.0)
}

func (BoardWindow) Render(frame *loop.Frame) {
	session := frame.Session
	engine := session.Engine()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 460), imgui.CondOnce)

	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	text, color := status(session)
	imgui.TextColored(color, text)
	// Windows render after the command buffer is applied, so the buttons act on the
	// session directly.
	imgui.SameLine()
	if imgui.Button("Pause") {
		session.TogglePause()
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		if err := session.Restart(); err != nil {
			imgui.TextColored(imgui.NewVec4(1, 0.3, 0.3, 1), err.Error())
		}
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Score: %d", engine.Score()))
	imgui.Text(fmt.Sprintf("Board: %dx%d, fail row %d", engine.Columns(), engine.Rows(), engine.FailRow()))
	imgui.Text(fmt.Sprintf("Clearing: %s", engine.Clearing().Name()))
	imgui.Text(fmt.Sprintf("Restarts: %d", session.Restarts()))

	stats := engine.Stats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Spawned: %d  Placed: %d", stats.Spawned, stats.Placed))
	imgui.Text(fmt.Sprintf("Rows: %d  Cells: %d  Clears: %d", stats.Rows, stats.Cells, stats.Clears))

	piece := engine.Piece()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Piece: %s %s", piece.Kind(), piece.Color()))
	imgui.Text(fmt.Sprintf("Cells: %v", piece.Cells()))

	if imgui.TreeNodeStr("Rows") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("RowsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Row")
			imgui.TableSetupColumn("Cells")
			imgui.TableSetupColumn("Pattern")
			imgui.TableHeadersRow()

			for _, row := range occupiedRows(engine.Grid()) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.Index))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.Occupied))
				imgui.TableNextColumn()
				imgui.Text(row.Pattern)
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
