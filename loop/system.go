// Package loop drives a board.Engine from a frame clock. Systems run once per frame in
// registration order; inputs and restarts they queue are applied when the frame ends.
package loop

// System is one stage of a frame. Systems keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}
