package board

import (
	"github.com/kamstrup/intmap"
	"github.com/zyedidia/generic/mapset"
)

// Cleared summarises what one clearing pass removed from the grid.
type Cleared struct {
	Rows       int // full rows removed (RowClear only)
	Components int // connected regions removed
	Cells      int // cells turned back to Empty
	Points     int // score awarded for the pass
}

// Any reports whether the pass removed anything.
func (c Cleared) Any() bool {
	return c.Cells > 0
}

// Clearer is a clearing rule run once after every freeze. The set of rules is closed:
// RowClear, SpanClear and BridgeClear.
type Clearer interface {
	// Name identifies the rule for display and logging.
	Name() string

	clear(g *Grid, palette []Color) Cleared
	validate() error
}

// RowClear removes every completely occupied row and lets the rows above drop down.
type RowClear struct {
	PointsPerRow int
}

func (RowClear) Name() string { return "rows" }

func (r RowClear) validate() error {
	if r.PointsPerRow < 0 {
		return configError("row points must not be negative, got %d", r.PointsPerRow)
	}
	return nil
}

func (r RowClear) clear(g *Grid, _ []Color) Cleared {
	kept := make([]Cell, 0, len(g.cells))
	full := 0
	for y := 0; y < g.rows; y++ {
		if g.RowFull(y) {
			full++
			continue
		}
		kept = append(kept, g.cells[y*g.columns:(y+1)*g.columns]...)
	}
	if full == 0 {
		return Cleared{}
	}

	blank := full * g.columns
	for i := 0; i < blank; i++ {
		g.cells[i] = Empty
	}
	copy(g.cells[blank:], kept)

	return Cleared{
		Rows:       full,
		Components: full,
		Cells:      blank,
		Points:     full * r.PointsPerRow,
	}
}

// SpanClear removes every same-coloured, 4-connected region that touches all columns,
// then compacts each column downward on its own.
type SpanClear struct {
	PointsPerCell int
}

func (SpanClear) Name() string { return "span" }

func (s SpanClear) validate() error {
	if s.PointsPerCell < 0 {
		return configError("span points must not be negative, got %d", s.PointsPerCell)
	}
	return nil
}

func (s SpanClear) clear(g *Grid, _ []Color) Cleared {
	visited := intmap.New[int, struct{}](len(g.cells))
	removed := mapset.New[int]()
	var out Cleared

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.columns; x++ {
			color, ok := g.At(x, y).Color()
			if !ok {
				continue
			}
			if _, seen := visited.Get(g.index(x, y)); seen {
				continue
			}

			region := floodFill(g, Point{x, y}, color, visited)
			columns := mapset.New[int]()
			for _, p := range region {
				columns.Put(p.X)
			}
			if columns.Size() != g.columns {
				continue
			}

			out.Components++
			for _, p := range region {
				removed.Put(g.index(p.X, p.Y))
			}
		}
	}

	if removed.Size() == 0 {
		return out
	}

	removed.Each(func(i int) {
		g.cells[i] = Empty
	})
	compactColumns(g)

	out.Cells = removed.Size()
	out.Points = out.Cells * s.PointsPerCell
	return out
}

// BridgeClear removes the first same-coloured region found that reaches from the left
// edge to the right edge. Cells above the removed region stay where they are.
type BridgeClear struct {
	PointsPerCell int
}

func (BridgeClear) Name() string { return "bridge" }

func (b BridgeClear) validate() error {
	if b.PointsPerCell < 0 {
		return configError("bridge points must not be negative, got %d", b.PointsPerCell)
	}
	return nil
}

func (b BridgeClear) clear(g *Grid, palette []Color) Cleared {
	right := g.columns - 1

	for _, color := range palette {
		visited := intmap.New[int, struct{}](g.rows * 4)

		for y := 0; y < g.rows; y++ {
			if c, ok := g.At(0, y).Color(); !ok || c != color {
				continue
			}
			if _, seen := visited.Get(g.index(0, y)); seen {
				continue
			}

			region := floodFill(g, Point{0, y}, color, visited)
			if !reaches(region, right) {
				continue
			}

			for _, p := range region {
				g.set(p.X, p.Y, Empty)
			}
			return Cleared{
				Components: 1,
				Cells:      len(region),
				Points:     len(region) * b.PointsPerCell,
			}
		}
	}

	return Cleared{}
}

var neighbours = [4]Point{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// floodFill collects the 4-connected region of the given colour containing start.
// Every cell it reaches is recorded in visited, so a later scan skips the region.
func floodFill(g *Grid, start Point, color Color, visited *intmap.Map[int, struct{}]) []Point {
	visited.Put(g.index(start.X, start.Y), struct{}{})
	stack := []Point{start}
	var region []Point

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, p)

		for _, d := range neighbours {
			n := Point{p.X + d.X, p.Y + d.Y}
			if !g.Contains(n) {
				continue
			}
			if c, ok := g.At(n.X, n.Y).Color(); !ok || c != color {
				continue
			}
			key := g.index(n.X, n.Y)
			if _, seen := visited.Get(key); seen {
				continue
			}
			visited.Put(key, struct{}{})
			stack = append(stack, n)
		}
	}

	return region
}

func reaches(region []Point, column int) bool {
	for _, p := range region {
		if p.X == column {
			return true
		}
	}
	return false
}

// compactColumns lets the occupied cells of each column settle at the bottom,
// keeping their vertical order.
func compactColumns(g *Grid) {
	settled := make([]Cell, 0, g.rows)
	for x := 0; x < g.columns; x++ {
		settled = settled[:0]
		for y := g.rows - 1; y >= 0; y-- {
			if c := g.At(x, y); !c.IsEmpty() {
				settled = append(settled, c)
			}
		}

		y := g.rows - 1
		for _, c := range settled {
			g.set(x, y, c)
			y--
		}
		for ; y >= 0; y-- {
			g.set(x, y, Empty)
		}
	}
}
