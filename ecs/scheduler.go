package ecs

type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) {
	if f != nil {
		f(w)
	}
}

// Condition gates a scheduled system. All conditions must hold for the
// system to run on a given frame.
type Condition func(w *World) bool

type scheduled struct {
	system System
	conds  []Condition
}

type Scheduler struct {
	entries []scheduled
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System, conds ...Condition) {
	if system == nil {
		return
	}
	s.entries = append(s.entries, scheduled{system: system, conds: append([]Condition(nil), conds...)})
}

func (s *Scheduler) Update(w *World) {
	for _, entry := range s.entries {
		if !allow(w, entry.conds) {
			continue
		}
		entry.system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.entries))
	for _, entry := range s.entries {
		systems = append(systems, entry.system)
	}
	return systems
}

func allow(w *World, conds []Condition) bool {
	for _, cond := range conds {
		if cond != nil && !cond(w) {
			return false
		}
	}
	return true
}
