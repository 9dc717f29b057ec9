package component

// Input stores the directional intent for the active body this tick.
type Input struct {
	Left  bool
	Right bool
	Down  bool
}

// MoveX returns -1, 0 or 1 for the horizontal intent.
func (in Input) MoveX() float64 {
	x := 0.0
	if in.Left {
		x--
	}
	if in.Right {
		x++
	}
	return x
}

var InputComponent = NewComponent[Input]()
