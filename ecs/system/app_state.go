package system

import (
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"go.uber.org/zap"
)

type (
	AppStateMachine        = ecs.State[component.AppState]
	SimulationStateMachine = ecs.State[component.SimulationState]
)

// ExitSystem records an Esc press; the game loop turns it into
// ebiten.Termination.
type ExitSystem struct {
	log       *zap.Logger
	requested bool
}

func NewExitSystem(log *zap.Logger) *ExitSystem {
	return &ExitSystem{log: log}
}

func (s *ExitSystem) Update(w *ecs.World) {
	input, ok := ecs.FirstComponent(w, component.InputComponent.Kind())
	if !ok || !input.ExitPressed || s.requested {
		return
	}
	s.requested = true
	s.log.Info("exit requested")
	w.Events().Push(ecs.Event{Type: ecs.EventAppExit})
}

func (s *ExitSystem) Requested() bool {
	return s.requested
}

// AppStateKeysSystem moves between the main menu, a run and the game over
// screen on G and M.
type AppStateKeysSystem struct {
	app *AppStateMachine
	log *zap.Logger
}

func NewAppStateKeysSystem(app *AppStateMachine, log *zap.Logger) *AppStateKeysSystem {
	return &AppStateKeysSystem{app: app, log: log}
}

func (s *AppStateKeysSystem) Update(w *ecs.World) {
	input, ok := ecs.FirstComponent(w, component.InputComponent.Kind())
	if !ok {
		return
	}

	current := s.app.Get()
	next := current
	switch {
	case input.TogglePressed && current == component.AppStateMainMenu:
		next = component.AppStateGame
	case input.TogglePressed && current == component.AppStateGame:
		next = component.AppStateMainMenu
	case input.TogglePressed && current == component.AppStateGameOver:
		next = component.AppStateGame
	case input.MenuPressed && current == component.AppStateGameOver:
		next = component.AppStateMainMenu
	}
	if next == current {
		return
	}
	s.app.Set(next)
	s.log.Info("app state change requested", zap.Stringer("from", current), zap.Stringer("to", next))
}

// SimulationToggleSystem pauses and resumes a run on Space.
type SimulationToggleSystem struct {
	sim *SimulationStateMachine
	log *zap.Logger
}

func NewSimulationToggleSystem(sim *SimulationStateMachine, log *zap.Logger) *SimulationToggleSystem {
	return &SimulationToggleSystem{sim: sim, log: log}
}

func (s *SimulationToggleSystem) Update(w *ecs.World) {
	input, ok := ecs.FirstComponent(w, component.InputComponent.Kind())
	if !ok || !input.PausePressed {
		return
	}
	if s.sim.Is(component.SimulationRunning) {
		s.sim.Set(component.SimulationPaused)
		s.log.Info("Simulation paused")
		return
	}
	s.sim.Set(component.SimulationRunning)
	s.log.Info("Simulation continued")
}

// Playing holds while a run is active and not paused.
func Playing(app *AppStateMachine, sim *SimulationStateMachine) ecs.Condition {
	inGame := ecs.InState(app, component.AppStateGame)
	running := ecs.InState(sim, component.SimulationRunning)
	return func(w *ecs.World) bool {
		return inGame(w) && running(w)
	}
}
