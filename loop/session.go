package loop

import (
	"fmt"

	"github.com/plus3/blockfall/board"
)

// Session owns the running game and everything needed to start the next one.
type Session struct {
	cfg       board.Config
	engine    *board.Engine
	paused    bool
	restarts  int
	onOutcome func(board.Outcome)
}

// NewSession starts a game from cfg.
func NewSession(cfg board.Config) (*Session, error) {
	engine, err := board.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Session{cfg: cfg, engine: engine}, nil
}

// Engine returns the current game. The pointer changes on every restart.
func (s *Session) Engine() *board.Engine {
	return s.engine
}

// Config returns the configuration games are started from.
func (s *Session) Config() board.Config {
	return s.cfg
}

// Restart throws the current game away and starts a new one. A restart also unpauses.
func (s *Session) Restart() error {
	engine, err := board.New(s.cfg)
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	s.engine = engine
	s.paused = false
	s.restarts++
	return nil
}

// Restarts returns how many times the session has been restarted.
func (s *Session) Restarts() int {
	return s.restarts
}

// Paused reports whether gravity and input are suspended.
func (s *Session) Paused() bool {
	return s.paused
}

// SetPaused suspends or resumes the game.
func (s *Session) SetPaused(paused bool) {
	s.paused = paused
}

// TogglePause flips the pause flag and returns the new value.
func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// OnOutcome registers fn to receive the result of every engine call that changed
// something. Only one hook is kept.
func (s *Session) OnOutcome(fn func(board.Outcome)) {
	s.onOutcome = fn
}

func (s *Session) step() board.Outcome {
	return s.notify(s.engine.Step())
}

func (s *Session) apply(in board.Input) board.Outcome {
	return s.notify(s.engine.Apply(in))
}

func (s *Session) notify(out board.Outcome) board.Outcome {
	if s.onOutcome != nil && (out.Moved || out.Frozen) {
		s.onOutcome(out)
	}
	return out
}
