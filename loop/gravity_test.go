package loop_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/loop"
)

func TestGravitySystem(t *testing.T) {
	t.Run("accumulates frame time", func(t *testing.T) {
		session := newSession(t, board.Classic())
		scheduler := loop.NewScheduler(session)
		scheduler.Register(&loop.GravitySystem{Interval: 100 * time.Millisecond})

		scheduler.Once(0.06)
		assert.Equal(t, 0, session.Engine().Piece().Top())

		scheduler.Once(0.06)
		assert.Equal(t, 1, session.Engine().Piece().Top())

		scheduler.Once(0.25)
		assert.Equal(t, 3, session.Engine().Piece().Top())
	})

	t.Run("paused", func(t *testing.T) {
		session := newSession(t, board.Classic())
		session.SetPaused(true)
		scheduler := loop.NewScheduler(session)
		scheduler.Register(&loop.GravitySystem{Interval: 100 * time.Millisecond})

		scheduler.Once(1)
		assert.Equal(t, 0, session.Engine().Piece().Top())

		session.SetPaused(false)
		scheduler.Once(0.05)
		assert.Equal(t, 0, session.Engine().Piece().Top())
	})

	t.Run("stops at the end of the game", func(t *testing.T) {
		session := newSession(t, board.Classic().Resize(4, 4))
		scheduler := loop.NewScheduler(session)
		scheduler.Register(&loop.GravitySystem{Interval: time.Millisecond})

		assert.NotPanics(t, func() {
			scheduler.Once(60)
		})
		assert.True(t, session.Engine().Ended())
	})
}

func TestFrameTimer(t *testing.T) {
	timer := loop.NewFrameTimer()
	time.Sleep(5 * time.Millisecond)

	first := timer.DeltaTime()
	assert.GreaterOrEqual(t, first, 0.005)

	second := timer.DeltaTime()
	assert.Less(t, second, first)
}
