package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowClear(t *testing.T) {
	t.Run("single full row", func(t *testing.T) {
		g := parseGrid(t,
			"R..",
			".G.",
			"BBB",
			"..R",
		)
		got := RowClear{PointsPerRow: 100}.clear(&g, nil)

		assert.Equal(t, Cleared{Rows: 1, Components: 1, Cells: 3, Points: 100}, got)
		assert.Equal(t, gridString(
			"...",
			"R..",
			".G.",
			"..R",
		), g.String())
	})

	t.Run("several rows keep order", func(t *testing.T) {
		g := parseGrid(t,
			"G..",
			"RRR",
			".B.",
			"PPP",
			"C.C",
		)
		got := RowClear{PointsPerRow: 10}.clear(&g, nil)

		assert.Equal(t, 2, got.Rows)
		assert.Equal(t, 20, got.Points)
		assert.Equal(t, 5, g.Rows())
		assert.Equal(t, gridString(
			"...",
			"...",
			"G..",
			".B.",
			"C.C",
		), g.String())
	})

	t.Run("nothing full", func(t *testing.T) {
		g := parseGrid(t,
			"R.R",
			".R.",
		)
		before := g.Clone()
		got := RowClear{PointsPerRow: 100}.clear(&g, nil)

		assert.False(t, got.Any())
		assert.True(t, before.Equal(g))
	})
}

func TestSpanClear(t *testing.T) {
	t.Run("full row of one colour", func(t *testing.T) {
		g := parseGrid(t,
			"....",
			"....",
			"PPPP",
		)
		got := SpanClear{PointsPerCell: 5}.clear(&g, nil)

		assert.Equal(t, Cleared{Components: 1, Cells: 4, Points: 20}, got)
		assert.Equal(t, 0, g.Occupied())
	})

	t.Run("missing one column", func(t *testing.T) {
		g := parseGrid(t,
			"....",
			"PPP.",
			"CCCP",
		)
		before := g.Clone()
		got := SpanClear{}.clear(&g, nil)

		assert.False(t, got.Any())
		assert.True(t, before.Equal(g))
	})

	t.Run("winding region", func(t *testing.T) {
		g := parseGrid(t,
			"PP..",
			".PPP",
			"RRR.",
		)
		got := SpanClear{}.clear(&g, nil)

		assert.Equal(t, 5, got.Cells)
		assert.Equal(t, gridString(
			"....",
			"....",
			"RRR.",
		), g.String())
	})

	t.Run("mixed colours do not connect", func(t *testing.T) {
		g := parseGrid(t,
			"PPCC",
		)
		got := SpanClear{}.clear(&g, nil)

		assert.False(t, got.Any())
	})

	t.Run("columns settle independently", func(t *testing.T) {
		g := parseGrid(t,
			"C...",
			"W.G.",
			"PPPP",
			".C..",
		)
		got := SpanClear{}.clear(&g, nil)

		assert.Equal(t, 4, got.Cells)
		assert.Equal(t, gridString(
			"....",
			"....",
			"C...",
			"WCG.",
		), g.String())
	})

	t.Run("two regions in one pass", func(t *testing.T) {
		g := parseGrid(t,
			"CCC",
			"WWW",
			"C.C",
		)
		got := SpanClear{PointsPerCell: 1}.clear(&g, nil)

		assert.Equal(t, 2, got.Components)
		assert.Equal(t, 6, got.Cells)
		assert.Equal(t, gridString(
			"...",
			"...",
			"C.C",
		), g.String())
	})
}

func TestBridgeClear(t *testing.T) {
	palette := []Color{Red, Green, Blue}

	t.Run("left to right", func(t *testing.T) {
		g := parseGrid(t,
			"RRRR",
			"GGG.",
			"....",
		)
		got := BridgeClear{PointsPerCell: 50}.clear(&g, palette)

		assert.Equal(t, Cleared{Components: 1, Cells: 4, Points: 200}, got)
		assert.Equal(t, gridString(
			"....",
			"GGG.",
			"....",
		), g.String())
	})

	t.Run("cells above do not fall", func(t *testing.T) {
		g := parseGrid(t,
			".B..",
			"RRRR",
			"..G.",
		)
		BridgeClear{}.clear(&g, palette)

		assert.Equal(t, gridString(
			".B..",
			"....",
			"..G.",
		), g.String())
	})

	t.Run("first match wins", func(t *testing.T) {
		g := parseGrid(t,
			"GGGG",
			"RRRR",
			"BBBB",
		)
		got := BridgeClear{PointsPerCell: 1}.clear(&g, palette)

		assert.Equal(t, 4, got.Cells)
		assert.Equal(t, gridString(
			"GGGG",
			"....",
			"BBBB",
		), g.String())
	})

	t.Run("palette order decides", func(t *testing.T) {
		g := parseGrid(t,
			"GGGG",
			"RRRR",
		)
		BridgeClear{}.clear(&g, []Color{Green, Red})

		assert.Equal(t, gridString(
			"....",
			"RRRR",
		), g.String())
	})

	t.Run("winding bridge takes the whole region", func(t *testing.T) {
		g := parseGrid(t,
			"B.BB",
			"BBB.",
			"B...",
		)
		got := BridgeClear{}.clear(&g, palette)

		assert.Equal(t, 7, got.Cells)
		assert.Equal(t, 0, g.Occupied())
	})

	t.Run("touching only the left edge", func(t *testing.T) {
		g := parseGrid(t,
			"RRR.",
			"R...",
		)
		before := g.Clone()
		got := BridgeClear{}.clear(&g, palette)

		assert.False(t, got.Any())
		assert.True(t, before.Equal(g))
	})

	t.Run("colours outside the palette are ignored", func(t *testing.T) {
		g := parseGrid(t,
			"PPPP",
		)
		got := BridgeClear{}.clear(&g, palette)

		assert.False(t, got.Any())
	})
}

func TestFloodFillLargeRegion(t *testing.T) {
	const size = 300
	g := newGrid(size, size)
	for i := range g.cells {
		g.cells[i] = Occupied(Cyan)
	}

	got := SpanClear{}.clear(&g, nil)

	assert.Equal(t, size*size, got.Cells)
	assert.Equal(t, 1, got.Components)
	assert.Equal(t, 0, g.Occupied())
}

func TestClearerNames(t *testing.T) {
	assert.Equal(t, "rows", RowClear{}.Name())
	assert.Equal(t, "span", SpanClear{}.Name())
	assert.Equal(t, "bridge", BridgeClear{}.Name())
}
