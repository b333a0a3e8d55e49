package loop

// Frame is handed to every system during one scheduler pass.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Session   *Session
}

func newFrame(dt float64, session *Session) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Session:   session,
	}
}
