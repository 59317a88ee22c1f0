package ecs

import "github.com/milk9111/ballgame/ecs/component"

// World owns entities, component storage, the per-frame event queue and
// system order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	startup Scheduler
	update  Scheduler
	started bool

	renderers []RenderSystem

	delta float64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It reports
// false when e was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	id := int(e.id())
	for _, set := range w.stores {
		set.Remove(id)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities lists every live entity in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.list()
}

// AddStartupSystem registers a system that runs once, before the first
// regular update.
func (w *World) AddStartupSystem(s System) {
	if w == nil {
		return
	}
	w.startup.Add(s)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System, conds ...Condition) {
	if w == nil {
		return
	}
	w.update.Add(s, conds...)
}

// Systems returns the update systems in order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.update.Systems()
}

// Update runs all systems once and then clears the frame's events.
func (w *World) Update() {
	if w == nil {
		return
	}
	if !w.started {
		w.started = true
		w.startup.Update(w)
	}
	w.update.Update(w)
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetDelta sets the duration of the current frame in seconds.
func (w *World) SetDelta(seconds float64) {
	if w == nil || seconds < 0 {
		return
	}
	w.delta = seconds
}

// Delta returns the duration of the current frame in seconds.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	set, ok := w.stores[id]
	if !ok && create {
		set = &SparseSet{}
		w.stores[id] = set
	}
	return set
}

// First returns the first entity holding every given kind.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	return First(w, kinds...)
}

// Query returns every entity holding all given kinds.
func (w *World) Query(kinds ...component.Kind) []Entity {
	return Query(w, kinds...)
}

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func Entities(w *World) []Entity {
	return w.Entities()
}
