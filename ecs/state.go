package ecs

// State is a finite state value with deferred transitions. Set only records
// the next value; the transition happens when the state is updated as a
// system (normally last in the frame), running the OnExit hooks of the old
// value and then the OnEnter hooks of the new one.
type State[S comparable] struct {
	current S
	next    S
	pending bool
	entered bool

	onEnter map[S][]func(*World)
	onExit  map[S][]func(*World)
}

func NewState[S comparable](initial S) *State[S] {
	return &State[S]{
		current: initial,
		onEnter: make(map[S][]func(*World)),
		onExit:  make(map[S][]func(*World)),
	}
}

func (s *State[S]) Get() S {
	return s.current
}

func (s *State[S]) Is(v S) bool {
	return s.current == v
}

// Set queues a transition to next. A later Set in the same frame wins.
func (s *State[S]) Set(next S) {
	s.next = next
	s.pending = true
}

// Pending returns the queued transition target, if any.
func (s *State[S]) Pending() (S, bool) {
	return s.next, s.pending
}

func (s *State[S]) OnEnter(v S, fn func(*World)) {
	if fn == nil {
		return
	}
	s.onEnter[v] = append(s.onEnter[v], fn)
}

func (s *State[S]) OnExit(v S, fn func(*World)) {
	if fn == nil {
		return
	}
	s.onExit[v] = append(s.onExit[v], fn)
}

// Init runs the OnEnter hooks of the initial value once.
func (s *State[S]) Init(w *World) {
	if s.entered {
		return
	}
	s.entered = true
	for _, fn := range s.onEnter[s.current] {
		fn(w)
	}
}

// Apply performs the queued transition and reports whether the value
// changed. Setting the current value again is a no-op.
func (s *State[S]) Apply(w *World) bool {
	s.Init(w)
	if !s.pending {
		return false
	}
	s.pending = false
	if s.next == s.current {
		return false
	}
	prev := s.current
	for _, fn := range s.onExit[prev] {
		fn(w)
	}
	s.current = s.next
	for _, fn := range s.onEnter[s.current] {
		fn(w)
	}
	return true
}

// Update lets a State be scheduled as a system.
func (s *State[S]) Update(w *World) {
	s.Apply(w)
}

// InState is a run condition holding while st equals v.
func InState[S comparable](st *State[S], v S) Condition {
	return func(*World) bool {
		return st != nil && st.current == v
	}
}
