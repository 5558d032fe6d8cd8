package system

import (
	"github.com/milk9111/warrior/anim"
	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
)

const (
	ClipIdle  = "idle"
	ClipRelax = "relax"
	ClipWalk  = "walk"
	ClipRun   = "run"
	ClipFall  = "fall"
)

// ClipFor picks the clip the animation graph plays for a derived state.
func ClipFor(st anim.State, relaxHeld bool) string {
	switch st.Locomotion {
	case anim.LocomotionFalling:
		return ClipFall
	case anim.LocomotionRunning:
		return ClipRun
	case anim.LocomotionWalking:
		return ClipWalk
	}
	if st.RelaxEligible || relaxHeld {
		return ClipRelax
	}
	return ClipIdle
}

// AnimationSystem reads each hero's derived animation state, selects a clip
// and advances its frames. It must run after HeroAnimSystem.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent, component.HeroAnimComponent, func(e ecs.Entity, clip *component.Animation, ha *component.HeroAnim) {
		if ha.Evaluator == nil {
			return
		}
		relaxHeld := false
		if in, ok := ecs.Get(w, e, component.InputComponent); ok {
			relaxHeld = in.RelaxHeld
		}

		next := ClipFor(ha.Evaluator.State(), relaxHeld)
		if next != clip.Current {
			if _, ok := clip.Defs[next]; ok {
				w.Events().Push(ecs.Event{Type: ecs.EventClipChanged, Data: ecs.ClipChangedEvent{Entity: e, From: clip.Current, To: next}})
				clip.Current = next
				clip.Frame = 0
				clip.FrameTimer = 0
				clip.Playing = true
			}
		}
		advance(clip)
	})
}

func advance(clip *component.Animation) {
	if !clip.Playing {
		return
	}
	def, ok := clip.Defs[clip.Current]
	if !ok || def.FrameCount <= 0 || def.FPS <= 0 {
		return
	}

	// Advance frame every N ticks based on FPS and TPS
	ticksPerFrame := int(common.TPS / def.FPS)
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}

	clip.FrameTimer++
	if clip.FrameTimer >= ticksPerFrame {
		clip.FrameTimer = 0
		clip.Frame++
		if clip.Frame >= def.FrameCount {
			if def.Loop {
				clip.Frame = 0
			} else {
				clip.Frame = def.FrameCount - 1
				clip.Playing = false
			}
		}
	}
}
