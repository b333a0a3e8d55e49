// Package board implements a falling-block puzzle engine: a grid, a falling tetromino,
// movement and rotation without wall kicks, freezing on landing, and a choice of
// clearing rules. The engine performs no I/O and keeps no clock; a presentation layer
// calls Step on its own schedule and Apply for player input.
package board

import (
	"math/rand/v2"
	"slices"
)

// Outcome reports what a Step, Apply or Spawn call changed.
type Outcome struct {
	Moved   bool    // the active piece changed position or orientation
	Frozen  bool    // the active piece was written into the grid
	Cleared Cleared // result of the clearing pass after a freeze
	Points  int     // score added by this call
	Ended   bool    // the call moved the game into its terminal state
}

// Stats are running totals for one game.
type Stats struct {
	Spawned int // pieces spawned, the opening piece included
	Placed  int // pieces frozen into the grid
	Rows    int // rows removed by RowClear
	Cells   int // cells removed by any rule
	Clears  int // freezes whose clearing pass removed something
}

// Engine owns the grid, the active piece and the score of a single game.
// It is not safe for concurrent use.
type Engine struct {
	cfg     Config
	palette []Color
	rng     *rand.Rand

	grid     Grid
	piece    Piece
	score    int
	terminal bool
	stats    Stats
}

// New validates cfg and starts a game with an empty grid. The opening piece is an I
// centred on the top row when the board is wide enough, otherwise a regular spawn.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	e := &Engine{
		cfg:     cfg,
		palette: slices.Clone(cfg.Palette),
		rng:     rng,
		grid:    newGrid(cfg.Columns, cfg.Rows),
	}
	e.cfg.Palette = e.palette
	e.piece = e.opening()
	e.terminal = !e.fits(e.piece)
	return e, nil
}

func (e *Engine) opening() Piece {
	left := e.grid.columns/2 - 2
	if left < 0 || left+3 >= e.grid.columns {
		return e.next()
	}
	e.stats.Spawned++
	return Piece{kind: I, color: e.randomColor(), cells: catalog[I].Place(left, 0)}
}

func (e *Engine) randomColor() Color {
	return e.palette[e.rng.IntN(len(e.palette))]
}

// next draws a random shape, a random column offset that keeps it on the board and a
// random palette colour. A shape wider than the board gets the smallest offset.
func (e *Engine) next() Piece {
	kind := randomKind(e.rng)
	shape := catalog[kind]

	lo, hi := shape.placementRange(e.grid.columns)
	offset := lo
	if hi >= lo {
		offset = lo + e.rng.IntN(hi-lo+1)
	}

	e.stats.Spawned++
	return Piece{kind: kind, color: e.randomColor(), cells: shape.Place(offset, 0)}
}

// fits reports whether every block is within the columns, above the floor, and on an
// empty cell. Blocks above row 0 are allowed.
func (e *Engine) fits(p Piece) bool {
	for _, c := range p.cells {
		if c.X < 0 || c.X >= e.grid.columns || c.Y >= e.grid.rows {
			return false
		}
		if c.Y >= 0 && !e.grid.At(c.X, c.Y).IsEmpty() {
			return false
		}
	}
	return true
}

// Spawn replaces the active piece with a freshly drawn one and returns it.
// A spawned piece that lands on occupied cells ends the game.
func (e *Engine) Spawn() Piece {
	if e.terminal {
		return e.piece
	}
	e.piece = e.next()
	e.terminal = !e.fits(e.piece)
	return e.piece
}

// Step is the gravity tick: the piece moves down one row, or freezes if it cannot.
func (e *Engine) Step() Outcome {
	if e.terminal {
		return Outcome{}
	}
	if down := e.piece.Shifted(0, 1); e.fits(down) {
		e.piece = down
		return Outcome{Moved: true}
	}
	return e.freeze()
}

// Apply performs a player action. Illegal moves and rotations leave the game untouched.
func (e *Engine) Apply(in Input) Outcome {
	if e.terminal {
		return Outcome{}
	}

	switch in {
	case MoveLeft:
		return e.commit(e.piece.Shifted(-1, 0))
	case MoveRight:
		return e.commit(e.piece.Shifted(1, 0))
	case RotateCW:
		return e.rotate(e.piece.RotatedCW())
	case RotateCCW:
		return e.rotate(e.piece.RotatedCCW())
	case SoftDrop:
		return e.drop()
	}
	return Outcome{}
}

func (e *Engine) commit(p Piece) Outcome {
	if !e.fits(p) {
		return Outcome{}
	}
	e.piece = p
	return Outcome{Moved: true}
}

func (e *Engine) rotate(p Piece) Outcome {
	if p.Top() < 0 {
		return Outcome{}
	}
	return e.commit(p)
}

func (e *Engine) drop() Outcome {
	moved := false
	for i := 0; e.cfg.DropSteps == HardDrop || i < e.cfg.DropSteps; i++ {
		down := e.piece.Shifted(0, 1)
		if !e.fits(down) {
			out := e.freeze()
			out.Moved = moved
			return out
		}
		e.piece = down
		moved = true
	}
	return Outcome{Moved: moved}
}

// freeze writes the active piece into the grid, clears, scores, spawns the next piece
// and re-evaluates the end of the game.
func (e *Engine) freeze() Outcome {
	frozen := e.piece
	for _, c := range frozen.cells {
		if e.grid.Contains(c) {
			e.grid.set(c.X, c.Y, Occupied(frozen.color))
		}
	}

	cleared := e.cfg.Clearing.clear(&e.grid, e.palette)
	points := e.cfg.PlacementBonus + cleared.Points
	e.score += points

	e.stats.Placed++
	e.stats.Rows += cleared.Rows
	e.stats.Cells += cleared.Cells
	if cleared.Any() {
		e.stats.Clears++
	}

	e.piece = e.next()
	e.terminal = e.grid.RowOccupied(e.cfg.FailRow) || !e.fits(e.piece)

	return Outcome{
		Frozen:  true,
		Cleared: cleared,
		Points:  points,
		Ended:   e.terminal,
	}
}

// Ended reports whether the game is over.
func (e *Engine) Ended() bool {
	return e.terminal
}

// Grid returns a copy of the settled cells. The active piece is not part of it.
func (e *Engine) Grid() Grid {
	return e.grid.Clone()
}

// At reads one settled cell without copying the grid.
func (e *Engine) At(x, y int) Cell {
	return e.grid.At(x, y)
}

// Piece returns the active piece.
func (e *Engine) Piece() Piece {
	return e.piece
}

// Score returns the points collected so far.
func (e *Engine) Score() int {
	return e.score
}

// Stats returns the running totals.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Clearing returns the rule chosen at construction.
func (e *Engine) Clearing() Clearer {
	return e.cfg.Clearing
}

// Config returns the configuration the engine was built from.
func (e *Engine) Config() Config {
	cfg := e.cfg
	cfg.Palette = slices.Clone(e.palette)
	return cfg
}

// Columns returns the board width.
func (e *Engine) Columns() int { return e.grid.columns }

// Rows returns the board height.
func (e *Engine) Rows() int { return e.grid.rows }

// FailRow returns the row whose occupation ends the game.
func (e *Engine) FailRow() int { return e.cfg.FailRow }
