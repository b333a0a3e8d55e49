package debugui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/board"
)

func TestOccupiedRows(t *testing.T) {
	cfg := board.Classic().Resize(5, 6)
	engine, err := board.New(cfg)
	assert.NoError(t, err)

	assert.Empty(t, occupiedRows(engine.Grid()))

	for !engine.Step().Frozen {
	}

	rows := occupiedRows(engine.Grid())
	if assert.Len(t, rows, 1) {
		assert.Equal(t, 5, rows[0].Index)
		assert.Equal(t, 4, rows[0].Occupied)
		assert.Equal(t, "RRRR.", rows[0].Pattern)
	}
}

func TestFrameHistory(t *testing.T) {
	h := newFrameHistory(3)
	assert.Equal(t, float32(0), h.average())

	h.push(10)
	h.push(20)
	assert.Equal(t, float32(15), h.average())

	h.push(30)
	h.push(60)
	assert.Equal(t, []float32{60, 20, 30}, h.samples)
	assert.InDelta(t, 110.0/3.0, h.average(), 1e-4)
}
