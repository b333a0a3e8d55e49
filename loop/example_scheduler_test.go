package loop_test

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/loop"
)

type scoreReporter struct{}

func (scoreReporter) Execute(frame *loop.Frame) {
	frame.Commands.Defer(func() {
		engine := frame.Session.Engine()
		if engine.Stats().Placed > 0 {
			fmt.Println("placed", engine.Stats().Placed, "score", engine.Score())
		}
	})
}

// ExampleScheduler builds a headless game loop. Gravity steps the engine every 100ms of
// frame time, and a reporting system prints once the opening piece has landed.
func ExampleScheduler() {
	cfg := board.Classic()
	cfg.Rand = rand.New(rand.NewPCG(5, 6))

	session, err := loop.NewSession(cfg)
	if err != nil {
		panic(err)
	}

	scheduler := loop.NewScheduler(session)
	scheduler.Register(&loop.GravitySystem{Interval: 100 * time.Millisecond})
	scheduler.Register(scoreReporter{})

	for session.Engine().Stats().Placed == 0 {
		scheduler.Once(0.1)
	}

	// Output:
	// placed 1 score 0
}
