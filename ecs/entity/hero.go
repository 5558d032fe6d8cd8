package entity

import (
	"fmt"

	"github.com/milk9111/warrior/anim"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/prefabs"
)

// NewHeroAnim builds an evaluator already initialized against a fresh
// snapshot source.
func NewHeroAnim(cfg anim.Config, classifier anim.Classifier) component.HeroAnim {
	src := anim.NewSnapshotSource()
	ev := anim.NewHeroEvaluator(cfg, classifier)
	ev.Initialize(src)
	return component.HeroAnim{Evaluator: ev, Source: src}
}

// NewHero spawns a controllable hero from its spec.
func NewHero(w *ecs.World, spec prefabs.HeroSpec) (ecs.Entity, error) {
	animCfg, err := prefabs.BuildAnimConfig(spec.AnimData)
	if err != nil {
		return 0, fmt.Errorf("hero: %w", err)
	}
	classifier, err := prefabs.BuildClassifier(animCfg)
	if err != nil {
		return 0, fmt.Errorf("hero: %w", err)
	}

	hero := w.CreateEntity()
	add := func(name string, err error) error {
		if err != nil {
			w.DestroyEntity(hero)
			return fmt.Errorf("hero: add %s: %w", name, err)
		}
		return nil
	}

	if err := add("hero tag", ecs.Add(w, hero, component.HeroTagComponent, component.HeroTag{})); err != nil {
		return 0, err
	}
	if err := add("hero", ecs.Add(w, hero, component.HeroComponent, component.Hero{
		MoveSpeed: spec.MoveSpeed,
		JumpSpeed: spec.JumpSpeed,
	})); err != nil {
		return 0, err
	}
	if err := add("transform", ecs.Add(w, hero, component.TransformComponent, component.Transform{
		X: spec.Transform.X,
		Y: spec.Transform.Y,
	})); err != nil {
		return 0, err
	}
	if err := add("physics body", ecs.Add(w, hero, component.PhysicsBodyComponent, component.PhysicsBody{
		Width:    spec.Collider.Width,
		Height:   spec.Collider.Height,
		Mass:     spec.Collider.Mass,
		Friction: spec.Collider.Friction,
	})); err != nil {
		return 0, err
	}
	if err := add("input", ecs.Add(w, hero, component.InputComponent, component.Input{})); err != nil {
		return 0, err
	}
	if err := add("animation", ecs.Add(w, hero, component.AnimationComponent, prefabs.BuildAnimation(spec.Animation))); err != nil {
		return 0, err
	}
	if err := add("hero anim", ecs.Add(w, hero, component.HeroAnimComponent, NewHeroAnim(animCfg, classifier))); err != nil {
		return 0, err
	}

	return hero, nil
}
