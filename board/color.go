package board

// Color is one of the fixed block colours a palette can draw from.
// The zero value is not a colour; it marks an empty cell.
type Color uint8

const (
	Red Color = iota + 1
	Green
	Blue
	Purple
	Cyan
	White
	Yellow
	Magenta
	Orange

	colorCount = int(Orange)
)

var colorNames = [...]string{
	Red:     "Red",
	Green:   "Green",
	Blue:    "Blue",
	Purple:  "Purple",
	Cyan:    "Cyan",
	White:   "White",
	Yellow:  "Yellow",
	Magenta: "Magenta",
	Orange:  "Orange",
}

// Valid reports whether c is one of the declared colours.
func (c Color) Valid() bool {
	return c >= Red && c <= Orange
}

func (c Color) String() string {
	if !c.Valid() {
		return "Color(?)"
	}
	return colorNames[c]
}

// Colors returns every declared colour in declaration order.
func Colors() []Color {
	all := make([]Color, 0, colorCount)
	for c := Red; c <= Orange; c++ {
		all = append(all, c)
	}
	return all
}

// Cell is a single grid square. The zero value is an empty cell.
type Cell struct {
	color Color
}

// Empty is the unoccupied cell.
var Empty = Cell{}

// Occupied returns a cell filled with the given colour.
func Occupied(c Color) Cell {
	return Cell{color: c}
}

// IsEmpty reports whether no block sits in the cell.
func (c Cell) IsEmpty() bool {
	return c.color == 0
}

// Color returns the cell's colour and whether the cell is occupied.
func (c Cell) Color() (Color, bool) {
	return c.color, c.color != 0
}

func (c Cell) String() string {
	if c.IsEmpty() {
		return "Empty"
	}
	return "Occupied(" + c.color.String() + ")"
}
