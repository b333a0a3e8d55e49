package board

import "math/rand/v2"

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L

	kindCount = 7
)

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	}
	return "Kind(?)"
}

// Shape is the block layout of a tetromino as (column, row) offsets.
// The first offset is the rotation pivot once the shape is placed.
type Shape [4]Point

var catalog = [kindCount]Shape{
	I: {{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	O: {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	T: {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
	S: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	Z: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	J: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	L: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
}

// Kinds returns the catalog order.
func Kinds() []Kind {
	return []Kind{I, O, T, S, Z, J, L}
}

// ShapeOf returns the layout for k. It panics on an unknown kind.
func ShapeOf(k Kind) Shape {
	if int(k) >= kindCount {
		panic("board: unknown tetromino kind")
	}
	return catalog[k]
}

// Span returns the smallest and largest column offset of the shape.
func (s Shape) Span() (minX, maxX int) {
	minX, maxX = s[0].X, s[0].X
	for _, p := range s[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
	}
	return minX, maxX
}

// Place returns the shape translated so that offset (0,0) lands on column dx, row dy.
func (s Shape) Place(dx, dy int) [4]Point {
	var cells [4]Point
	for i, p := range s {
		cells[i] = Point{p.X + dx, p.Y + dy}
	}
	return cells
}

// placementRange returns the inclusive column offsets that keep the shape on a board
// of the given width. hi < lo when the shape is wider than the board.
func (s Shape) placementRange(columns int) (lo, hi int) {
	minX, maxX := s.Span()
	return -minX, columns - 1 - maxX
}

func randomKind(r *rand.Rand) Kind {
	return Kind(r.IntN(kindCount))
}
