package entity

import (
	"fmt"

	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"github.com/milk9111/ballgame/prefabs"
)

// NewGameState creates the long-lived singletons: keyboard input, score,
// high scores, the playfield and one spawn timer per wave kind. None of
// them carry GameplayTag, so they survive state changes.
func NewGameState(w *ecs.World, settings *prefabs.Settings, highScores []component.HighScoreEntry) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("game state: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.ScoreComponent.Kind(), &component.Score{LastLogged: 0}); err != nil {
		return 0, fmt.Errorf("game state: add score: %w", err)
	}
	if err := ecs.Add(w, e, component.HighScoresComponent.Kind(), &component.HighScores{Entries: highScores}); err != nil {
		return 0, fmt.Errorf("game state: add high scores: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayfieldComponent.Kind(), &component.Playfield{
		Width:  float64(settings.Window.Width),
		Height: float64(settings.Window.Height),
	}); err != nil {
		return 0, fmt.Errorf("game state: add playfield: %w", err)
	}

	if _, err := NewSpawnTimer(w, component.SpawnStar, settings.Star.SpawnSeconds); err != nil {
		return 0, fmt.Errorf("game state: %w", err)
	}
	if _, err := NewSpawnTimer(w, component.SpawnEnemy, settings.Enemy.SpawnSeconds); err != nil {
		return 0, fmt.Errorf("game state: %w", err)
	}
	return e, nil
}

// ApplySettings pushes reloaded settings into the game state singletons:
// the playfield follows the window size and each spawn timer takes the new
// period of its kind.
func ApplySettings(w *ecs.World, settings *prefabs.Settings) {
	if field, ok := ecs.FirstComponent(w, component.PlayfieldComponent.Kind()); ok {
		field.Width = float64(settings.Window.Width)
		field.Height = float64(settings.Window.Height)
	}
	ecs.ForEach(w, component.SpawnTimerComponent.Kind(), func(_ ecs.Entity, st *component.SpawnTimer) {
		switch st.Kind {
		case component.SpawnStar:
			st.Timer.SetDuration(settings.Star.SpawnSeconds)
		case component.SpawnEnemy:
			st.Timer.SetDuration(settings.Enemy.SpawnSeconds)
		}
	})
}

func NewSpawnTimer(w *ecs.World, kind component.SpawnKind, seconds float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SpawnTimerComponent.Kind(), &component.SpawnTimer{
		Kind:  kind,
		Timer: component.NewRepeatingTimer(seconds),
	}); err != nil {
		return 0, fmt.Errorf("add %s spawn timer: %w", kind, err)
	}
	return e, nil
}

// RequestSound queues a one-shot sound for the audio system.
func RequestSound(w *ecs.World, name string) {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.SoundRequestComponent.Kind(), &component.SoundRequest{Name: name})
}
