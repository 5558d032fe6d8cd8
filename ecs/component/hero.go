package component

// Hero holds the movement tuning of a controllable character.
type Hero struct {
	MoveSpeed  float64
	JumpSpeed  float64
	FacingLeft bool
}

var HeroComponent = NewComponent[Hero]()
