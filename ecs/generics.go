package ecs

import (
	"fmt"

	"github.com/milk9111/ballgame/ecs/component"
)

// Add stores value as e's component of the given kind, replacing any
// previous value. Components are held by pointer so systems mutate them in
// place.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("add %s to %v: %w", kind.Name(), e, component.ErrNilComponent)
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("add %s to %v: %w", kind.Name(), e, component.ErrEntityNotAlive)
	}
	w.store(kind.ID(), true).Set(int(e.id()), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(int(e.id()))
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(int(e.id()))
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	value, ok := w.store(kind.ID(), false).Get(int(e.id())).(*T)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// ForEach calls fn for every live entity holding kind. fn may add, remove or
// destroy entities; entities destroyed earlier in the same pass are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	set := w.store(kind.ID(), false)
	for _, id := range set.Entities() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		value, ok := set.Get(id).(*T)
		if !ok || value == nil {
			continue
		}
		fn(e, value)
	}
}

// ForEach2 calls fn for every live entity holding both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	setA := w.store(ka.ID(), false)
	setB := w.store(kb.ID(), false)
	for _, id := range IntersectEntities(setA, setB) {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		a, okA := setA.Get(id).(*A)
		b, okB := setB.Get(id).(*B)
		if !okA || !okB || a == nil || b == nil {
			continue
		}
		fn(e, a, b)
	}
}

// FirstComponent returns the kind's value on the lowest-slot entity holding
// it. It is the lookup used for world-wide singletons such as the score.
func FirstComponent[T any](w *World, kind component.ComponentKind[T]) (*T, bool) {
	e, ok := First(w, kind)
	if !ok {
		return nil, false
	}
	return Get(w, e, kind)
}
