package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
)

// Game implements ebiten.Game around a loop scheduler and the ImGui overlay.
type Game struct {
	session   *loop.Session
	scheduler *loop.Scheduler
	imgui     *debugui_ebiten.ImguiBackend
	timer     *loop.FrameTimer
	layout    layout
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.imgui.BeginFrame()
	err := g.scheduler.Once(g.timer.DeltaTime())
	g.imgui.EndFrame()
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.layout.draw(screen, g.session)
	g.imgui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

var keymap = map[board.Input]ebiten.Key{
	board.MoveLeft:  ebiten.KeyArrowLeft,
	board.MoveRight: ebiten.KeyArrowRight,
	board.RotateCCW: ebiten.KeyArrowUp,
	board.RotateCW:  ebiten.KeyArrowDown,
	board.SoftDrop:  ebiten.KeySpace,
}

// keyboard reads held keys unless the inspector has keyboard focus.
type keyboard struct {
	overlay *debugui.Overlay
}

func (k *keyboard) Pressed(in board.Input) bool {
	if k.overlay.Capture().WantCaptureKeyboard {
		return false
	}
	return ebiten.IsKeyPressed(keymap[in])
}

// hotkeySystem handles the keys that act on the session rather than the piece.
type hotkeySystem struct {
	overlay *debugui.Overlay
}

func (s *hotkeySystem) Execute(frame *loop.Frame) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.overlay.Toggle()
	}
	if s.overlay.Capture().WantCaptureKeyboard {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		frame.Commands.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		frame.Commands.Restart()
	}
}
