package board

import "strings"

// Point is an absolute grid coordinate. X is the column, Y the row with 0 at the top.
type Point struct {
	X, Y int
}

// Grid is a rows x columns matrix of cells stored row-major.
// Only the engine mutates a grid; accessors hand out copies.
type Grid struct {
	columns int
	rows    int
	cells   []Cell
}

func newGrid(columns, rows int) Grid {
	return Grid{
		columns: columns,
		rows:    rows,
		cells:   make([]Cell, columns*rows),
	}
}

// Columns returns the grid width.
func (g Grid) Columns() int { return g.columns }

// Rows returns the grid height.
func (g Grid) Rows() int { return g.rows }

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.columns && p.Y >= 0 && p.Y < g.rows
}

// At returns the cell at column x, row y. Coordinates outside the grid read as Empty.
func (g Grid) At(x, y int) Cell {
	if !g.Contains(Point{x, y}) {
		return Empty
	}
	return g.cells[y*g.columns+x]
}

// Row returns a copy of row y.
func (g Grid) Row(y int) []Cell {
	row := make([]Cell, g.columns)
	if y >= 0 && y < g.rows {
		copy(row, g.cells[y*g.columns:(y+1)*g.columns])
	}
	return row
}

// RowOccupied reports whether any cell of row y is occupied.
func (g Grid) RowOccupied(y int) bool {
	if y < 0 || y >= g.rows {
		return false
	}
	for _, c := range g.cells[y*g.columns : (y+1)*g.columns] {
		if !c.IsEmpty() {
			return true
		}
	}
	return false
}

// RowFull reports whether every cell of row y is occupied.
func (g Grid) RowFull(y int) bool {
	if y < 0 || y >= g.rows {
		return false
	}
	for _, c := range g.cells[y*g.columns : (y+1)*g.columns] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// Occupied returns the number of occupied cells.
func (g Grid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return Grid{columns: g.columns, rows: g.rows, cells: cells}
}

// Equal reports whether two grids have the same size and contents.
func (g Grid) Equal(other Grid) bool {
	if g.columns != other.columns || g.rows != other.rows {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line, '.' for empty cells and the first
// letter of the colour otherwise.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.columns + 1) * g.rows)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.columns; x++ {
			c, ok := g.At(x, y).Color()
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(c.String()[0])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) set(x, y int, c Cell) {
	g.cells[y*g.columns+x] = c
}

func (g Grid) index(x, y int) int {
	return y*g.columns + x
}
