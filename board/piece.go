package board

// Piece is the falling tetromino. It is a value: every committed move produces a new
// Piece and the old one is discarded.
type Piece struct {
	kind  Kind
	color Color
	cells [4]Point
}

// NewPiece places a piece of the given kind and colour at absolute cells.
func NewPiece(kind Kind, color Color, cells [4]Point) Piece {
	return Piece{kind: kind, color: color, cells: cells}
}

// Kind returns the tetromino the piece was spawned from.
func (p Piece) Kind() Kind { return p.kind }

// Color returns the colour the piece freezes with.
func (p Piece) Color() Color { return p.color }

// Cells returns the absolute block positions. The first entry is the pivot.
func (p Piece) Cells() [4]Point { return p.cells }

// Covers reports whether one of the piece's blocks sits on (x, y).
func (p Piece) Covers(x, y int) bool {
	for _, c := range p.cells {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// Top returns the smallest row index among the blocks.
func (p Piece) Top() int {
	top := p.cells[0].Y
	for _, c := range p.cells[1:] {
		top = min(top, c.Y)
	}
	return top
}

// Bottom returns the largest row index among the blocks.
func (p Piece) Bottom() int {
	bottom := p.cells[0].Y
	for _, c := range p.cells[1:] {
		bottom = max(bottom, c.Y)
	}
	return bottom
}

// Shifted returns the piece moved by dx columns and dy rows.
func (p Piece) Shifted(dx, dy int) Piece {
	next := p
	for i, c := range p.cells {
		next.cells[i] = Point{c.X + dx, c.Y + dy}
	}
	return next
}

// RotatedCCW returns the piece turned a quarter counter-clockwise about its first block.
func (p Piece) RotatedCCW() Piece {
	pivot := p.cells[0]
	next := p
	for i, c := range p.cells {
		next.cells[i] = Point{
			X: pivot.X - (c.Y - pivot.Y),
			Y: pivot.Y + (c.X - pivot.X),
		}
	}
	return next
}

// RotatedCW returns the piece turned a quarter clockwise about its first block.
func (p Piece) RotatedCW() Piece {
	pivot := p.cells[0]
	next := p
	for i, c := range p.cells {
		next.cells[i] = Point{
			X: pivot.X + (c.Y - pivot.Y),
			Y: pivot.Y - (c.X - pivot.X),
		}
	}
	return next
}
