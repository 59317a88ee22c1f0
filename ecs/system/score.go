package system

import (
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"go.uber.org/zap"
)

type ScoreLogSystem struct {
	log *zap.Logger
}

func NewScoreLogSystem(log *zap.Logger) *ScoreLogSystem {
	return &ScoreLogSystem{log: log}
}

func (s *ScoreLogSystem) Update(w *ecs.World) {
	score, ok := ecs.FirstComponent(w, component.ScoreComponent.Kind())
	if !ok || score.Value == score.LastLogged {
		return
	}
	score.LastLogged = score.Value
	s.log.Sugar().Infof("Score: %d", score.Value)
}

// GameOverSystem reacts to the game over event: it reports the final
// score, records it as a high score and shows the game over screen.
type GameOverSystem struct {
	app *AppStateMachine
	log *zap.Logger
}

func NewGameOverSystem(app *AppStateMachine, log *zap.Logger) *GameOverSystem {
	return &GameOverSystem{app: app, log: log}
}

func (s *GameOverSystem) Update(w *ecs.World) {
	events := w.Events().Read(ecs.EventGameOver)
	if len(events) == 0 {
		return
	}
	over, ok := events[0].Data.(ecs.GameOver)
	if !ok {
		return
	}

	s.log.Sugar().Infof("Your final score is %d", over.Score)
	if hs, ok := ecs.FirstComponent(w, component.HighScoresComponent.Kind()); ok {
		hs.Entries = append(hs.Entries, component.HighScoreEntry{Name: "Player", Score: over.Score})
		hs.Dirty = true
	}
	s.app.Set(component.AppStateGameOver)
}

// HighScoreSaver persists the high score list.
type HighScoreSaver interface {
	Save(entries []component.HighScoreEntry) error
}

// HighScoreSystem logs and persists the high score list whenever it
// changes.
type HighScoreSystem struct {
	store HighScoreSaver
	log   *zap.Logger
}

func NewHighScoreSystem(store HighScoreSaver, log *zap.Logger) *HighScoreSystem {
	return &HighScoreSystem{store: store, log: log}
}

func (s *HighScoreSystem) Update(w *ecs.World) {
	hs, ok := ecs.FirstComponent(w, component.HighScoresComponent.Kind())
	if !ok || !hs.Dirty {
		return
	}
	hs.Dirty = false

	for _, entry := range hs.Entries {
		s.log.Info("high score", zap.String("name", entry.Name), zap.Int("score", entry.Score))
	}
	if s.store == nil {
		return
	}
	if err := s.store.Save(hs.Entries); err != nil {
		s.log.Error("save high scores failed", zap.Error(err))
	}
}
