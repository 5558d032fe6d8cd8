package component

type HeroTag struct{}

var HeroTagComponent = NewComponent[HeroTag]()

type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()
