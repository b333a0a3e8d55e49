package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/loop"
)

var colors = map[board.Color]tcell.Color{
	board.Red:     tcell.ColorRed,
	board.Green:   tcell.ColorGreen,
	board.Blue:    tcell.ColorBlue,
	board.Purple:  tcell.ColorPurple,
	board.Cyan:    tcell.ColorAqua,
	board.White:   tcell.ColorWhite,
	board.Yellow:  tcell.ColorYellow,
	board.Magenta: tcell.ColorFuchsia,
	board.Orange:  tcell.ColorOrange,
}

const (
	boardLeft = 2
	boardTop  = 1
	block     = '█'
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	failStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// renderSystem redraws the terminal once the frame's inputs have been applied.
type renderSystem struct {
	screen tcell.Screen
}

func (s *renderSystem) Execute(frame *loop.Frame) {
	frame.Commands.Defer(func() {
		draw(s.screen, frame.Session)
		s.screen.Show()
	})
}

// Every board cell is two terminal columns wide.
func setCell(screen tcell.Screen, x, y int, style tcell.Style) {
	sx := boardLeft + 1 + x*2
	sy := boardTop + 1 + y
	screen.SetContent(sx, sy, block, nil, style)
	screen.SetContent(sx+1, sy, block, nil, style)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func draw(screen tcell.Screen, session *loop.Session) {
	engine := session.Engine()
	screen.Clear()

	width := engine.Columns()*2 + 2
	height := engine.Rows() + 2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || x == width-1 || y == 0 || y == height-1 {
				screen.SetContent(boardLeft+x, boardTop+y, '#', nil, frameStyle)
			}
		}
	}

	if row := engine.FailRow(); row > 0 {
		screen.SetContent(boardLeft-1, boardTop+1+row, '>', nil, failStyle)
		screen.SetContent(boardLeft+width, boardTop+1+row, '<', nil, failStyle)
	}

	for y := 0; y < engine.Rows(); y++ {
		for x := 0; x < engine.Columns(); x++ {
			if c, ok := engine.At(x, y).Color(); ok {
				setCell(screen, x, y, tcell.StyleDefault.Foreground(colors[c]))
			}
		}
	}

	if !engine.Ended() {
		piece := engine.Piece()
		style := tcell.StyleDefault.Foreground(colors[piece.Color()])
		for _, c := range piece.Cells() {
			if c.Y >= 0 {
				setCell(screen, c.X, c.Y, style)
			}
		}
	}

	panel := boardLeft + width + 3
	stats := engine.Stats()
	drawText(screen, panel, boardTop+1, textStyle, fmt.Sprintf("Score   %d", engine.Score()))
	drawText(screen, panel, boardTop+2, textStyle, fmt.Sprintf("Placed  %d", stats.Placed))
	drawText(screen, panel, boardTop+3, textStyle, fmt.Sprintf("Cleared %d", stats.Cells))
	drawText(screen, panel, boardTop+5, textStyle, "←→ move  ↑↓ rotate")
	drawText(screen, panel, boardTop+6, textStyle, "space drop  p pause")
	drawText(screen, panel, boardTop+7, textStyle, "r restart  q quit")

	switch {
	case engine.Ended():
		drawText(screen, panel, boardTop+9, failStyle, "GAME OVER")
	case session.Paused():
		drawText(screen, panel, boardTop+9, textStyle, "PAUSED")
	}
}
