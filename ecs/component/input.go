package component

// Input stores the movement intent written by bound input handlers.
// It is also the binding context those handlers are registered against.
type Input struct {
	MoveX       float64
	LookX       float64
	LookY       float64
	JumpPressed bool
	RelaxHeld   bool
}

// HasIntent reports whether the owner is currently asking to move.
func (i *Input) HasIntent() bool {
	return i != nil && i.MoveX != 0
}

var InputComponent = NewComponent[Input]()
