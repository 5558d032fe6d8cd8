package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/warrior/anim"
	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/input"
)

func newHeroConfig(t *testing.T) *input.Config {
	t.Helper()
	cfg, err := input.NewConfig("test",
		[]input.TaggedAction{
			{Tag: common.InputTagMove, Action: &input.Action{Name: "IA_Move", ValueType: input.ValueAxis1D}},
			{Tag: common.InputTagJump, Action: &input.Action{Name: "IA_Jump", ValueType: input.ValueBool}},
		},
		[]input.TaggedAction{
			{Tag: common.InputTagAbilityRelax, Action: &input.Action{Name: "IA_Relax", ValueType: input.ValueBool}},
		},
	)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	return cfg
}

// spawnHero adds a hero whose body lives outside any space, so tests control
// its velocity directly.
func spawnHero(t *testing.T, w *ecs.World, cfg anim.Config) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	body := cp.NewBody(1, cp.INFINITY)

	src := anim.NewSnapshotSource()
	ev := anim.NewHeroEvaluator(cfg, nil)
	ev.Initialize(src)

	mustAdd(t, ecs.Add(w, e, component.HeroTagComponent, component.HeroTag{}))
	mustAdd(t, ecs.Add(w, e, component.HeroComponent, component.Hero{MoveSpeed: 100, JumpSpeed: 300}))
	mustAdd(t, ecs.Add(w, e, component.TransformComponent, component.Transform{}))
	mustAdd(t, ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{Body: body, Width: 10, Height: 20, Grounded: true}))
	mustAdd(t, ecs.Add(w, e, component.InputComponent, component.Input{}))
	mustAdd(t, ecs.Add(w, e, component.HeroAnimComponent, component.HeroAnim{Evaluator: ev, Source: src}))
	return e
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func bodyOf(t *testing.T, w *ecs.World, e ecs.Entity) *cp.Body {
	t.Helper()
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok || pb.Body == nil {
		t.Fatalf("entity %s has no body", e)
	}
	return pb.Body
}
