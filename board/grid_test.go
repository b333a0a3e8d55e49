package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var letterColors = map[byte]Color{
	'R': Red,
	'G': Green,
	'B': Blue,
	'P': Purple,
	'C': Cyan,
	'W': White,
	'Y': Yellow,
	'M': Magenta,
	'O': Orange,
}

// parseGrid builds a grid from one string per row: '.' is empty, a colour's first
// letter is an occupied cell.
func parseGrid(t testing.TB, rows ...string) Grid {
	t.Helper()
	if len(rows) == 0 {
		t.Fatal("parseGrid: no rows")
	}

	g := newGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.columns {
			t.Fatalf("parseGrid: row %d has %d cells, want %d", y, len(row), g.columns)
		}
		for x := 0; x < len(row); x++ {
			if row[x] == '.' {
				continue
			}
			color, ok := letterColors[row[x]]
			if !ok {
				t.Fatalf("parseGrid: unknown cell %q at %d,%d", row[x], x, y)
			}
			g.set(x, y, Occupied(color))
		}
	}
	return g
}

func gridString(rows ...string) string {
	s := ""
	for _, r := range rows {
		s += r + "\n"
	}
	return s
}

func TestGridString(t *testing.T) {
	rows := []string{
		"R..G",
		".PC.",
		"WYMO",
	}
	g := parseGrid(t, rows...)

	assert.Equal(t, gridString(rows...), g.String())
	assert.Equal(t, 4, g.Columns())
	assert.Equal(t, 3, g.Rows())
}

func TestGridAccess(t *testing.T) {
	g := parseGrid(t,
		"....",
		"B...",
		"BBBB",
	)

	t.Run("at", func(t *testing.T) {
		assert.Equal(t, Occupied(Blue), g.At(0, 1))
		assert.Equal(t, Empty, g.At(1, 1))
		assert.Equal(t, Empty, g.At(-1, 0))
		assert.Equal(t, Empty, g.At(4, 2))
		assert.Equal(t, Empty, g.At(0, 3))
	})

	t.Run("rows", func(t *testing.T) {
		assert.False(t, g.RowOccupied(0))
		assert.True(t, g.RowOccupied(1))
		assert.False(t, g.RowFull(1))
		assert.True(t, g.RowFull(2))
		assert.False(t, g.RowFull(7))
		assert.Equal(t, []Cell{Occupied(Blue), Empty, Empty, Empty}, g.Row(1))
		assert.Len(t, g.Row(9), 4)
	})

	t.Run("occupied", func(t *testing.T) {
		assert.Equal(t, 5, g.Occupied())
	})

	t.Run("contains", func(t *testing.T) {
		assert.True(t, g.Contains(Point{3, 2}))
		assert.False(t, g.Contains(Point{4, 2}))
		assert.False(t, g.Contains(Point{0, -1}))
	})
}

func TestGridClone(t *testing.T) {
	g := parseGrid(t,
		"R.",
		".R",
	)
	c := g.Clone()
	assert.True(t, g.Equal(c))

	c.set(1, 0, Occupied(Green))
	assert.False(t, g.Equal(c))
	assert.Equal(t, Empty, g.At(1, 0))
}

func TestCell(t *testing.T) {
	assert.True(t, Empty.IsEmpty())
	assert.True(t, Cell{}.IsEmpty())

	c := Occupied(Cyan)
	assert.False(t, c.IsEmpty())
	color, ok := c.Color()
	assert.True(t, ok)
	assert.Equal(t, Cyan, color)
	assert.Equal(t, "Occupied(Cyan)", c.String())
	assert.Equal(t, "Empty", Empty.String())
}

func TestColors(t *testing.T) {
	all := Colors()
	assert.Len(t, all, colorCount)

	seen := map[byte]bool{}
	for _, c := range all {
		assert.True(t, c.Valid())
		first := c.String()[0]
		assert.False(t, seen[first], "initial of %s is not unique", c)
		seen[first] = true
	}

	assert.False(t, Color(0).Valid())
	assert.False(t, Color(200).Valid())
	assert.Equal(t, "Color(?)", Color(200).String())
}
