package loop

import "time"

// DefaultGravity is the fall interval used by the front-ends.
const DefaultGravity = 500 * time.Millisecond

// GravitySystem steps the engine once every Interval of accumulated frame time.
// Nothing accumulates while the session is paused or the game is over.
type GravitySystem struct {
	Interval time.Duration

	elapsed float64
}

func (g *GravitySystem) Execute(frame *Frame) {
	session := frame.Session
	if session.Paused() || session.Engine().Ended() || g.Interval <= 0 {
		g.elapsed = 0
		return
	}

	interval := g.Interval.Seconds()
	g.elapsed += frame.DeltaTime
	for g.elapsed >= interval {
		g.elapsed -= interval
		session.step()
		if session.Engine().Ended() {
			g.elapsed = 0
			return
		}
	}
}
