package loop

import (
	"sync"
	"time"

	"github.com/plus3/blockfall/board"
)

// KeySource reports whether the key bound to an input is currently held down.
type KeySource interface {
	Pressed(in board.Input) bool
}

// Delays is the auto-repeat interval for each held input.
type Delays map[board.Input]time.Duration

// DefaultDelays repeats moves every 100ms, rotations every 150ms and soft drops every 50ms.
func DefaultDelays() Delays {
	return Delays{
		board.MoveLeft:  100 * time.Millisecond,
		board.MoveRight: 100 * time.Millisecond,
		board.RotateCW:  150 * time.Millisecond,
		board.RotateCCW: 150 * time.Millisecond,
		board.SoftDrop:  50 * time.Millisecond,
	}
}

// InputSystem turns held keys into queued inputs. A key fires on the frame it goes
// down and again every time its delay elapses while it stays down. An input without a
// delay fires once per press.
type InputSystem struct {
	Keys   KeySource
	Delays Delays

	held map[board.Input]float64
}

func (s *InputSystem) Execute(frame *Frame) {
	if s.held == nil {
		s.held = make(map[board.Input]float64)
	}

	for _, in := range board.Inputs() {
		if !s.Keys.Pressed(in) {
			delete(s.held, in)
			continue
		}

		elapsed, down := s.held[in]
		if !down {
			s.held[in] = 0
			frame.Commands.Input(in)
			continue
		}

		delay := s.Delays[in].Seconds()
		if delay <= 0 {
			continue
		}
		elapsed += frame.DeltaTime
		if elapsed >= delay {
			elapsed = 0
			frame.Commands.Input(in)
		}
		s.held[in] = elapsed
	}
}

// InputQueue collects discrete key presses from another goroutine, such as a terminal
// event reader, and hands them to the scheduler as a system.
type InputQueue struct {
	mu      sync.Mutex
	pending []board.Input
	restart bool
	pause   bool
}

// Push queues an input for the next frame.
func (q *InputQueue) Push(in board.Input) {
	q.mu.Lock()
	q.pending = append(q.pending, in)
	q.mu.Unlock()
}

// Restart queues a restart for the next frame.
func (q *InputQueue) Restart() {
	q.mu.Lock()
	q.restart = true
	q.mu.Unlock()
}

// TogglePause queues a pause toggle for the next frame.
func (q *InputQueue) TogglePause() {
	q.mu.Lock()
	q.pause = !q.pause
	q.mu.Unlock()
}

func (q *InputQueue) Execute(frame *Frame) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.restart {
		frame.Commands.Restart()
		q.restart = false
	}
	if q.pause {
		frame.Commands.TogglePause()
		q.pause = false
	}
	for _, in := range q.pending {
		frame.Commands.Input(in)
	}
	q.pending = q.pending[:0]
}
