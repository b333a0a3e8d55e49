package loop

import "github.com/plus3/blockfall/board"

// Commands buffers changes to the session so systems never mutate the engine mid-frame.
type Commands struct {
	restart bool
	pause   bool
	inputs  []board.Input
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Input queues a player action.
func (c *Commands) Input(in board.Input) {
	c.inputs = append(c.inputs, in)
}

// Restart queues a fresh game. Inputs queued in the same frame apply to the new game.
func (c *Commands) Restart() {
	c.restart = true
}

// TogglePause queues a flip of the session's pause flag.
func (c *Commands) TogglePause() {
	c.pause = !c.pause
}

// Defer queues a function to run after the inputs are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies the restart, then the pause toggle, then the inputs in queue order,
// then the deferred functions, and resets the buffer. Inputs are dropped while the
// session is paused.
func (c *Commands) Flush(session *Session) error {
	var err error
	if c.restart {
		err = session.Restart()
	}
	if c.pause {
		session.TogglePause()
	}

	if !session.Paused() {
		for _, in := range c.inputs {
			session.apply(in)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.restart = false
	c.pause = false
	c.inputs = c.inputs[:0]
	c.defers = c.defers[:0]
	return err
}
