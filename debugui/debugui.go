// Package debugui provides Dear ImGui inspector windows for a running game.
// Windows are rendered from deferred frame commands, so they always show the state the
// frame ended with.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/loop"
)

// Window is one inspector panel.
type Window interface {
	Render(frame *loop.Frame)
}

// InputCapture tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputCapture struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is a loop system that queues every window's render function and records the
// input capture state. Hidden overlays render nothing but still track capture.
type Overlay struct {
	Windows []Window
	Visible bool

	capture InputCapture
}

// Execute updates the capture state and defers the window renders to the end of the frame.
func (o *Overlay) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	o.capture = InputCapture{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}

	if !o.Visible {
		return
	}
	for _, w := range o.Windows {
		frame.Commands.Defer(func() {
			w.Render(frame)
		})
	}
}

// Capture returns the state recorded by the last Execute.
func (o *Overlay) Capture() InputCapture {
	return o.capture
}

// Toggle shows or hides the windows and returns the new visibility.
func (o *Overlay) Toggle() bool {
	o.Visible = !o.Visible
	return o.Visible
}
