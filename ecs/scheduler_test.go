package ecs

import "testing"

func TestSchedulerConditions(t *testing.T) {
	cases := []struct {
		name  string
		conds []Condition
		want  int
	}{
		{"no_conditions", nil, 1},
		{"all_true", []Condition{func(*World) bool { return true }, func(*World) bool { return true }}, 1},
		{"one_false", []Condition{func(*World) bool { return true }, func(*World) bool { return false }}, 0},
		{"nil_condition_ignored", []Condition{nil}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			runs := 0
			s := NewScheduler()
			s.Add(SystemFunc(func(*World) { runs++ }), c.conds...)
			s.Update(NewWorld())
			if runs != c.want {
				t.Fatalf("expected %d runs, got %d", c.want, runs)
			}
		})
	}
}

func TestStartupRunsOnce(t *testing.T) {
	w := NewWorld()
	startups, updates := 0, 0
	w.AddStartupSystem(SystemFunc(func(*World) { startups++ }))
	w.AddSystem(SystemFunc(func(*World) { updates++ }))

	for i := 0; i < 3; i++ {
		w.Update()
	}
	if startups != 1 || updates != 3 {
		t.Fatalf("expected 1 startup and 3 updates, got %d and %d", startups, updates)
	}
}

type phase int

const (
	phaseMenu phase = iota
	phasePlay
	phaseOver
)

func TestStateTransitions(t *testing.T) {
	w := NewWorld()
	st := NewState(phaseMenu)

	var log []string
	st.OnEnter(phaseMenu, func(*World) { log = append(log, "enter menu") })
	st.OnExit(phaseMenu, func(*World) { log = append(log, "exit menu") })
	st.OnEnter(phasePlay, func(*World) { log = append(log, "enter play") })
	st.OnExit(phasePlay, func(*World) { log = append(log, "exit play") })

	st.Init(w)
	st.Set(phasePlay)
	if !st.Is(phaseMenu) {
		t.Fatalf("Set must defer the transition")
	}
	if !st.Apply(w) || !st.Is(phasePlay) {
		t.Fatalf("expected transition to play")
	}

	st.Set(phasePlay)
	if st.Apply(w) {
		t.Fatalf("setting the current value must not transition")
	}

	st.Set(phaseOver)
	st.Set(phaseMenu)
	st.Apply(w)
	if !st.Is(phaseMenu) {
		t.Fatalf("last Set in a frame should win, got %v", st.Get())
	}

	want := []string{"enter menu", "exit menu", "enter play", "exit play", "enter menu"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
}

func TestInStateGatesSystems(t *testing.T) {
	w := NewWorld()
	st := NewState(phaseMenu)
	runs := 0
	w.AddSystem(SystemFunc(func(*World) { runs++ }), InState(st, phasePlay))
	w.AddSystem(st)

	w.Update()
	st.Set(phasePlay)
	w.Update() // transition applied at the end of this frame
	w.Update()
	if runs != 1 {
		t.Fatalf("expected exactly one gated run, got %d", runs)
	}
}
