package system

import (
	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/input"
)

// HeroControllerSystem binds each hero's input actions by tag and turns the
// resulting intent into body velocity.
type HeroControllerSystem struct {
	bindings *input.Component
	config   *input.Config
	bound    map[ecs.Entity]*component.Input
}

func NewHeroControllerSystem(bindings *input.Component, config *input.Config) *HeroControllerSystem {
	return &HeroControllerSystem{
		bindings: bindings,
		config:   config,
		bound:    make(map[ecs.Entity]*component.Input),
	}
}

// SetConfig swaps the action table. Every hero is unbound now and rebound
// against the new table on the next Update.
func (h *HeroControllerSystem) SetConfig(config *input.Config) {
	for e, ctx := range h.bound {
		h.bindings.RemoveBindings(ctx)
		*ctx = component.Input{}
		delete(h.bound, e)
	}
	h.config = config
}

func (h *HeroControllerSystem) Update(w *ecs.World) {
	if h == nil || w == nil {
		return
	}

	for e, ctx := range h.bound {
		if !w.IsAlive(e) {
			h.bindings.RemoveBindings(ctx)
			delete(h.bound, e)
		}
	}

	entities := w.Query(
		component.HeroTagComponent.Kind(),
		component.HeroComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		in, ok := ecs.Get(w, e, component.InputComponent)
		if !ok {
			continue
		}
		if prev := h.bound[e]; prev != in {
			if prev != nil {
				h.bindings.RemoveBindings(prev)
			}
			h.bindHero(in)
			h.bound[e] = in
		}

		hero, ok := ecs.Get(w, e, component.HeroComponent)
		if !ok {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || bodyComp.Body == nil {
			in.JumpPressed = false
			continue
		}

		vel := bodyComp.Body.Velocity()
		vel.X = in.MoveX * hero.MoveSpeed
		if in.JumpPressed && bodyComp.Grounded {
			vel.Y = -hero.JumpSpeed
		}
		in.JumpPressed = false

		if in.MoveX > 0 {
			hero.FacingLeft = false
		} else if in.MoveX < 0 {
			hero.FacingLeft = true
		}

		bodyComp.Body.SetVelocityVector(vel)
	}
}

// bindHero registers the hero's handlers with in as the binding context and
// returns how many were bound. Tags missing from the table are skipped.
func (h *HeroControllerSystem) bindHero(in *component.Input) int {
	n := 0
	bind := func(tag input.Tag, trigger input.TriggerEvent, fn func(*component.Input, input.Value)) {
		if input.BindNativeAction(h.bindings, h.config, tag, trigger, in, fn) {
			n++
		}
	}

	bind(common.InputTagMove, input.TriggerTriggered, onMove)
	bind(common.InputTagMove, input.TriggerCompleted, onMoveStopped)
	bind(common.InputTagMove, input.TriggerCanceled, onMoveStopped)
	bind(common.InputTagJump, input.TriggerStarted, onJump)
	bind(common.InputTagLook, input.TriggerTriggered, onLook)
	bind(common.InputTagLook, input.TriggerCompleted, onLook)

	n += input.BindAbilityActions(h.bindings, h.config, in, onAbilityPressed, onAbilityReleased)
	return n
}

func onMove(in *component.Input, v input.Value) {
	in.MoveX = common.Clamp(v.Axis1D(), -1, 1)
}

func onMoveStopped(in *component.Input, _ input.Value) {
	in.MoveX = 0
}

func onJump(in *component.Input, _ input.Value) {
	in.JumpPressed = true
}

func onLook(in *component.Input, v input.Value) {
	in.LookX, in.LookY = v.Axis2D()
}

func onAbilityPressed(in *component.Input, tag input.Tag) {
	if tag.MatchesTagExact(common.InputTagAbilityRelax) {
		in.RelaxHeld = true
	}
}

func onAbilityReleased(in *component.Input, tag input.Tag) {
	if tag.MatchesTagExact(common.InputTagAbilityRelax) {
		in.RelaxHeld = false
	}
}
