package loop_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/loop"
)

func newSession(t *testing.T, cfg board.Config) *loop.Session {
	t.Helper()
	cfg.Rand = rand.New(rand.NewPCG(11, 12))
	session, err := loop.NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return session
}

type heldKeys map[board.Input]bool

func (k heldKeys) Pressed(in board.Input) bool {
	return k[in]
}

type recordSystem struct {
	name string
	log  *[]string
}

func (s *recordSystem) Execute(frame *loop.Frame) {
	*s.log = append(*s.log, s.name)
}
