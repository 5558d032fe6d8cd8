package ecs

import "github.com/milk9111/warrior/ecs/component"

// Add stores a copy of value on e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	kind := handle.Kind()
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	v := value
	w.store(kind.ID(), true).Set(int(e.id()), &v)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	s := w.store(handle.Kind().ID(), false)
	if !s.Has(int(e.id())) {
		return false
	}
	s.Remove(int(e.id()))
	return true
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(handle.Kind().ID(), false).Has(int(e.id()))
}

// Get returns a pointer to the stored component so systems can mutate it in place.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	value := w.store(handle.Kind().ID(), false).Get(int(e.id()))
	cast, ok := value.(*T)
	if !ok || cast == nil {
		return nil, false
	}
	return cast, true
}

// ForEach calls fn for every entity holding the component.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	for _, e := range w.Query(handle.Kind()) {
		if v, ok := Get(w, e, handle); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every entity holding both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ha.Kind(), hb.Kind()) {
		a, ok := Get(w, e, ha)
		if !ok {
			continue
		}
		b, ok := Get(w, e, hb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}
