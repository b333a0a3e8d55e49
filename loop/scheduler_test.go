package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/loop"
)

type countingSystem struct {
	ExecuteCount int
	LastDelta    float64
}

func (s *countingSystem) Execute(frame *loop.Frame) {
	s.ExecuteCount++
	s.LastDelta = frame.DeltaTime
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		scheduler := loop.NewScheduler(newSession(t, board.Classic()))

		var order []string
		scheduler.Register(&recordSystem{name: "first", log: &order})
		scheduler.Register(&recordSystem{name: "second", log: &order})

		if err := scheduler.Once(0.1); err != nil {
			t.Fatalf("Once: %v", err)
		}
		if err := scheduler.Once(0.1); err != nil {
			t.Fatalf("Once: %v", err)
		}

		want := []string{"first", "second", "first", "second"}
		if len(order) != len(want) {
			t.Fatalf("expected %v, got %v", want, order)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Errorf("expected %v, got %v", want, order)
				break
			}
		}
	})

	t.Run("delta time reaches systems", func(t *testing.T) {
		scheduler := loop.NewScheduler(newSession(t, board.Classic()))
		counting := &countingSystem{}
		scheduler.Register(counting)

		scheduler.Once(0.25)

		if counting.LastDelta != 0.25 {
			t.Errorf("expected delta 0.25, got %f", counting.LastDelta)
		}
	})

	t.Run("stats", func(t *testing.T) {
		scheduler := loop.NewScheduler(newSession(t, board.Classic()))
		counting := &countingSystem{}
		scheduler.Register(counting)
		scheduler.Register(&loop.GravitySystem{Interval: time.Second})

		stats := scheduler.GetStats()
		if stats.Systems[0].MinDuration != 0 {
			t.Errorf("expected zero min duration before any frame, got %s", stats.Systems[0].MinDuration)
		}

		for range 3 {
			scheduler.Once(0.01)
		}

		stats = scheduler.GetStats()
		if stats.SystemCount != 2 {
			t.Errorf("expected 2 systems, got %d", stats.SystemCount)
		}
		if stats.Frames != 3 {
			t.Errorf("expected 3 frames, got %d", stats.Frames)
		}
		if stats.TotalExecutions != 6 {
			t.Errorf("expected 6 executions, got %d", stats.TotalExecutions)
		}
		if stats.Systems[0].Name != "countingSystem" {
			t.Errorf("expected countingSystem, got %q", stats.Systems[0].Name)
		}
		if stats.Systems[1].Name != "GravitySystem" {
			t.Errorf("expected GravitySystem, got %q", stats.Systems[1].Name)
		}
		if stats.Systems[0].MaxDuration < stats.Systems[0].MinDuration {
			t.Error("expected max duration to be at least min duration")
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler(newSession(t, board.Classic()))
		counting := &countingSystem{}
		scheduler.Register(counting)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error)
		go func() {
			done <- scheduler.Run(ctx, 1*time.Millisecond)
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			if err != nil {
				t.Errorf("expected nil error on cancellation, got %v", err)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if counting.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})
}
