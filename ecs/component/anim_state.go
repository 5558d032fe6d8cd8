package component

import "github.com/milk9111/warrior/anim"

// HeroAnim pairs an entity with its animation state evaluator and the
// snapshot source the evaluator samples from.
type HeroAnim struct {
	Evaluator *anim.HeroEvaluator
	Source    *anim.SnapshotSource
}

var HeroAnimComponent = NewComponent[HeroAnim]()
