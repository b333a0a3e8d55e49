package board

// Input is a discrete player action.
type Input uint8

const (
	MoveLeft Input = iota
	MoveRight
	RotateCW
	RotateCCW
	SoftDrop

	inputCount = 5
)

// Inputs returns every input in declaration order.
func Inputs() []Input {
	return []Input{MoveLeft, MoveRight, RotateCW, RotateCCW, SoftDrop}
}

func (in Input) String() string {
	switch in {
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case RotateCW:
		return "RotateCW"
	case RotateCCW:
		return "RotateCCW"
	case SoftDrop:
		return "SoftDrop"
	}
	return "Input(?)"
}
