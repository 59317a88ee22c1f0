package ecs

import (
	"sort"

	"github.com/milk9111/ballgame/ecs/component"
)

// IntersectEntities returns slot ids present in both sets.
func IntersectEntities(a, b *SparseSet) []int {
	if a == nil || b == nil {
		return nil
	}
	// iterate smaller set
	if a.Len() > b.Len() {
		a, b = b, a
	}
	out := make([]int, 0, a.Len())
	for _, id := range a.Entities() {
		if b.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// Query returns every live entity holding all kinds, ordered by slot id.
func Query(w *World, kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, kind := range kinds {
		if kind == nil || !kind.Valid() {
			return nil
		}
		set := w.store(kind.ID(), false)
		if set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Len() < sets[j].Len() })

	ids := sets[0].Entities()
	sort.Ints(ids)
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		match := true
		for _, set := range sets[1:] {
			if !set.Has(id) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-slot live entity holding all kinds.
func First(w *World, kinds ...component.Kind) (Entity, bool) {
	ents := Query(w, kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Single returns the entity holding all kinds when exactly one exists.
func Single(w *World, kinds ...component.Kind) (Entity, bool) {
	ents := Query(w, kinds...)
	if len(ents) != 1 {
		return 0, false
	}
	return ents[0], true
}
