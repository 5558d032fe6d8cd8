package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
)

type PhysicsSystem struct {
	space  *cp.Space
	dt     float64
	bodies map[ecs.Entity]*component.PhysicsBody
}

func NewPhysicsSystem(gravity, dt float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &PhysicsSystem{
		space:  space,
		dt:     dt,
		bodies: make(map[ecs.Entity]*component.PhysicsBody),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.syncEntities(w)
	ps.space.Step(ps.dt)
	ps.syncTransforms(w)
}

// syncEntities creates bodies for new entities and drops those of entities
// that no longer exist.
func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	for e, pb := range ps.bodies {
		if w.IsAlive(e) {
			continue
		}
		if pb.Shape != nil {
			ps.space.RemoveShape(pb.Shape)
		}
		if pb.Body != nil && !pb.Static {
			ps.space.RemoveBody(pb.Body)
		}
		pb.Body, pb.Shape = nil, nil
		delete(ps.bodies, e)
	}

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || pb.Body != nil {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		var body *cp.Body
		if pb.Static {
			body = ps.space.StaticBody
		} else {
			mass := pb.Mass
			if mass <= 0 {
				mass = 1
			}
			// infinite moment keeps characters upright
			body = ps.space.AddBody(cp.NewBody(mass, cp.INFINITY))
			body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
		}

		var shape *cp.Shape
		if pb.Static {
			hw, hh := pb.Width/2, pb.Height/2
			shape = cp.NewBox2(body, cp.BB{L: t.X - hw, B: t.Y - hh, R: t.X + hw, T: t.Y + hh}, 0)
		} else {
			shape = cp.NewBox(body, pb.Width, pb.Height, 0)
		}
		shape.SetFriction(pb.Friction)
		shape.SetElasticity(pb.Elasticity)
		ps.space.AddShape(shape)

		pb.Body = body
		pb.Shape = shape
		ps.bodies[e] = pb
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, pb := range ps.bodies {
		if pb.Static || pb.Body == nil {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		pos := pb.Body.Position()
		t.X, t.Y = pos.X, pos.Y

		grounded := isGrounded(pb.Body, pb.Height)
		if grounded != pb.Grounded {
			w.Events().Push(ecs.Event{Type: ecs.EventGrounded, Data: ecs.GroundedEvent{Entity: e, Grounded: grounded}})
		}
		pb.Grounded = grounded
	}
}

// isGrounded reports whether any contact sits in the lower quarter of the body.
func isGrounded(body *cp.Body, height float64) bool {
	feet := body.Position().Y + height/4
	grounded := false
	body.EachArbiter(func(arb *cp.Arbiter) {
		set := arb.ContactPointSet()
		for i := 0; i < set.Count; i++ {
			if set.Points[i].PointA.Y >= feet || set.Points[i].PointB.Y >= feet {
				grounded = true
			}
		}
	})
	return grounded
}
