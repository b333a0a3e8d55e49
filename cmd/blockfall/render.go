package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/loop"
)

const (
	margin     = 40
	panelWidth = 180
)

var palette = map[board.Color]color.RGBA{
	board.Red:     {220, 60, 60, 255},
	board.Green:   {80, 200, 90, 255},
	board.Blue:    {70, 110, 230, 255},
	board.Purple:  {150, 80, 200, 255},
	board.Cyan:    {80, 210, 220, 255},
	board.White:   {235, 235, 235, 255},
	board.Yellow:  {240, 210, 60, 255},
	board.Magenta: {230, 80, 190, 255},
	board.Orange:  {245, 150, 50, 255},
}

var (
	background = color.RGBA{16, 16, 24, 255}
	gridLine   = color.RGBA{40, 40, 52, 255}
	border     = color.RGBA{128, 128, 128, 255}
	failColor  = color.RGBA{255, 80, 80, 200}
)

type layout struct {
	columns, rows int
	cell          float32
	width, height int
}

func newLayout(columns, rows, cellSize int) layout {
	return layout{
		columns: columns,
		rows:    rows,
		cell:    float32(cellSize),
		width:   margin*2 + columns*cellSize + panelWidth,
		height:  margin*2 + rows*cellSize,
	}
}

func (l layout) origin(x, y int) (float32, float32) {
	return margin + float32(x)*l.cell, margin + float32(y)*l.cell
}

func (l layout) fillCell(screen *ebiten.Image, x, y int, clr color.Color) {
	sx, sy := l.origin(x, y)
	vector.DrawFilledRect(screen, sx+1, sy+1, l.cell-2, l.cell-2, clr, false)
}

func (l layout) draw(screen *ebiten.Image, session *loop.Session) {
	engine := session.Engine()
	screen.Fill(background)

	w, h := float32(l.columns)*l.cell, float32(l.rows)*l.cell
	for y := 0; y < l.rows; y++ {
		for x := 0; x < l.columns; x++ {
			sx, sy := l.origin(x, y)
			vector.StrokeRect(screen, sx, sy, l.cell, l.cell, 1, gridLine, false)
		}
	}
	vector.StrokeRect(screen, margin-2, margin-2, w+4, h+4, 2, border, false)

	for y := 0; y < l.rows; y++ {
		for x := 0; x < l.columns; x++ {
			if c, ok := engine.At(x, y).Color(); ok {
				l.fillCell(screen, x, y, palette[c])
			}
		}
	}

	if row := engine.FailRow(); row > 0 {
		_, sy := l.origin(0, row)
		vector.DrawFilledRect(screen, margin, sy, w, 2, failColor, false)
	}

	if !engine.Ended() {
		piece := engine.Piece()
		for _, c := range piece.Cells() {
			if c.Y >= 0 {
				l.fillCell(screen, c.X, c.Y, palette[piece.Color()])
			}
		}
	}

	textX := margin*2 + l.columns*int(l.cell)
	stats := engine.Stats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", engine.Score()), textX, margin)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PLACED\n%d", stats.Placed), textX, margin+40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("CLEARED\n%d cells", stats.Cells), textX, margin+80)
	ebitenutil.DebugPrintAt(screen, "P pause  R restart\nF1 inspector", textX, margin+140)

	switch {
	case engine.Ended():
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nPress R to restart", margin+10, margin+int(h)/2)
	case session.Paused():
		ebitenutil.DebugPrintAt(screen, "PAUSED", margin+10, margin+int(h)/2)
	}
}
