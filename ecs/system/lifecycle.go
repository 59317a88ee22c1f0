package system

import (
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"github.com/milk9111/ballgame/ecs/entity"
	"go.uber.org/zap"
)

// RunLifecycle starts and tears down runs when the app enters and leaves
// the game state.
type RunLifecycle struct {
	sim     *SimulationStateMachine
	spawner *entity.Spawner
	log     *zap.Logger
}

func NewRunLifecycle(sim *SimulationStateMachine, spawner *entity.Spawner, log *zap.Logger) *RunLifecycle {
	return &RunLifecycle{sim: sim, spawner: spawner, log: log}
}

// Register hooks the lifecycle into the app state machine and logs every
// transition.
func (l *RunLifecycle) Register(app *AppStateMachine) {
	app.OnEnter(component.AppStateGame, l.EnterGame)
	app.OnExit(component.AppStateGame, l.ExitGame)
	for _, st := range []component.AppState{component.AppStateMainMenu, component.AppStateGame, component.AppStateGameOver} {
		app.OnEnter(st, func(*ecs.World) {
			l.log.Info("entered app state", zap.Stringer("state", st))
		})
	}
}

// EnterGame resets the score and both wave timers, resumes the simulation
// and spawns the player, the starting stars and the starting enemies.
func (l *RunLifecycle) EnterGame(w *ecs.World) {
	if score, ok := ecs.FirstComponent(w, component.ScoreComponent.Kind()); ok {
		score.Value = 0
		score.LastLogged = -1
	}
	ecs.ForEach(w, component.SpawnTimerComponent.Kind(), func(_ ecs.Entity, st *component.SpawnTimer) {
		st.Timer.Reset()
		st.Wave = 0
	})
	if !l.sim.Is(component.SimulationRunning) {
		l.sim.Set(component.SimulationRunning)
	}

	settings := l.spawner.Settings()
	if _, err := l.spawner.SpawnPlayer(w); err != nil {
		l.log.Error("spawn player failed", zap.Error(err))
	}
	if _, err := l.spawner.SpawnStars(w, settings.Star.AtStartup, false); err != nil {
		l.log.Error("spawn stars failed", zap.Error(err))
	}
	if _, err := l.spawner.SpawnEnemies(w, settings.Enemy.AtStartup, false); err != nil {
		l.log.Error("spawn enemies failed", zap.Error(err))
	}
}

// ExitGame despawns everything the run created.
func (l *RunLifecycle) ExitGame(w *ecs.World) {
	removed := 0
	for _, e := range w.Query(component.GameplayTagComponent.Kind()) {
		if w.DestroyEntity(e) {
			removed++
		}
	}
	l.log.Debug("run cleaned up", zap.Int("entities", removed))
}
