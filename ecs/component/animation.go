package component

type AnimationDef struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
}

// Animation is the clip player driven by the hero's derived animation state.
type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
}

var AnimationComponent = NewComponent[Animation]()
