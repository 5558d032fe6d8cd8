package entity

import (
	"fmt"

	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/prefabs"
)

// NewLevel spawns the static ground pieces of a level.
func NewLevel(w *ecs.World, spec prefabs.LevelSpec) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, len(spec.Ground))
	for i, g := range spec.Ground {
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.GroundTagComponent, component.GroundTag{}); err != nil {
			return out, fmt.Errorf("level %s: ground %d: add tag: %w", spec.Name, i, err)
		}
		if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: g.Transform.X, Y: g.Transform.Y}); err != nil {
			return out, fmt.Errorf("level %s: ground %d: add transform: %w", spec.Name, i, err)
		}
		if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
			Width:    g.Collider.Width,
			Height:   g.Collider.Height,
			Friction: g.Collider.Friction,
			Static:   true,
		}); err != nil {
			return out, fmt.Errorf("level %s: ground %d: add physics body: %w", spec.Name, i, err)
		}
		out = append(out, e)
	}
	return out, nil
}
