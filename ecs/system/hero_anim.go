package system

import (
	"runtime"

	"github.com/milk9111/warrior/anim"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"golang.org/x/sync/errgroup"
)

// HeroAnimSystem is the thread-safe animation update phase. It copies each
// hero's kinematics into its snapshot source on the calling goroutine, then
// evaluates every hero in parallel and waits, so consumers running after it
// see this frame's state.
type HeroAnimSystem struct {
	dt      float64
	limit   int
	sources map[ecs.Entity]*anim.SnapshotSource
}

func NewHeroAnimSystem(dt float64) *HeroAnimSystem {
	return &HeroAnimSystem{
		dt:      dt,
		limit:   runtime.GOMAXPROCS(0),
		sources: make(map[ecs.Entity]*anim.SnapshotSource),
	}
}

func (h *HeroAnimSystem) Update(w *ecs.World) {
	if h == nil || w == nil {
		return
	}

	// owners that went away keep their evaluators, which then hold state
	for e, src := range h.sources {
		if !w.IsAlive(e) {
			src.Invalidate()
			delete(h.sources, e)
		}
	}

	var evaluators []*anim.HeroEvaluator
	for _, e := range w.Query(component.HeroAnimComponent.Kind(), component.HeroComponent.Kind()) {
		ha, ok := ecs.Get(w, e, component.HeroAnimComponent)
		if !ok || ha.Evaluator == nil || ha.Source == nil {
			continue
		}
		snap, ok := sampleHero(w, e)
		if !ok {
			ha.Source.Invalidate()
		} else {
			ha.Source.Set(snap)
		}
		h.sources[e] = ha.Source
		evaluators = append(evaluators, ha.Evaluator)
	}

	var g errgroup.Group
	g.SetLimit(h.limit)
	for _, ev := range evaluators {
		g.Go(func() error {
			ev.Evaluate(h.dt)
			return nil
		})
	}
	_ = g.Wait()
}

// sampleHero reads the hero's body and intent. It fails while the body has
// not been created yet.
func sampleHero(w *ecs.World, e ecs.Entity) (anim.Snapshot, bool) {
	hero, ok := ecs.Get(w, e, component.HeroComponent)
	if !ok {
		return anim.Snapshot{}, false
	}
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok || bodyComp.Body == nil {
		return anim.Snapshot{}, false
	}
	in, _ := ecs.Get(w, e, component.InputComponent)
	vel := bodyComp.Body.Velocity()
	return anim.NewSnapshot(vel.X, vel.Y, bodyComp.Grounded, in.HasIntent(), hero.FacingLeft), true
}
