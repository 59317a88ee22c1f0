package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ballgame/assets"
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"github.com/milk9111/ballgame/ecs/entity"
	"github.com/milk9111/ballgame/prefabs"
	"go.uber.org/zap"
)

type PlayerMovementSystem struct {
	settings *prefabs.Settings
	log      *zap.Logger
}

func NewPlayerMovementSystem(settings *prefabs.Settings, log *zap.Logger) *PlayerMovementSystem {
	return &PlayerMovementSystem{settings: settings, log: log}
}

func (s *PlayerMovementSystem) Update(w *ecs.World) {
	input, ok := ecs.FirstComponent(w, component.InputComponent.Kind())
	if !ok {
		return
	}

	var dir cp.Vector
	var held []string
	if input.Up {
		dir.Y -= 1
		held = append(held, "up")
	}
	if input.Down {
		dir.Y += 1
		held = append(held, "down")
	}
	if input.Left {
		dir.X -= 1
		held = append(held, "left")
	}
	if input.Right {
		dir.X += 1
		held = append(held, "right")
	}
	if dir.Length() > 0 {
		dir = dir.Normalize()
	}
	if input.Boost {
		held = append(held, "boost")
	}
	if s.settings.Player.LogMovement && len(held) > 0 {
		s.log.Info("player movement", zap.Strings("keys", held))
	}

	dt := w.Delta()
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Player, t *component.Transform) {
		d := dir
		if input.Boost {
			d = d.Mult(p.BoostFactor)
		}
		t.SetPosition(t.Position().Add(d.Mult(p.Speed * dt)))
	})
}

type PlayerConfineSystem struct{}

func NewPlayerConfineSystem() *PlayerConfineSystem {
	return &PlayerConfineSystem{}
}

func (s *PlayerConfineSystem) Update(w *ecs.World) {
	field, ok := playfield(w)
	if !ok {
		return
	}
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Player, t *component.Transform) {
		t.SetPosition(confine(t.Position(), halfExtent(w, e), field))
	})
}

// PlayerStarSystem collects every star the player touches.
type PlayerStarSystem struct {
	settings *prefabs.Settings
	log      *zap.Logger
}

func NewPlayerStarSystem(settings *prefabs.Settings, log *zap.Logger) *PlayerStarSystem {
	return &PlayerStarSystem{settings: settings, log: log}
}

func (s *PlayerStarSystem) Update(w *ecs.World) {
	player, ok := w.First(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind())
	if !ok {
		return
	}
	pt, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	score, ok := ecs.FirstComponent(w, component.ScoreComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.StarTagComponent.Kind(), component.TransformComponent.Kind(), func(star ecs.Entity, _ *component.StarTag, st *component.Transform) {
		if !touching(w, player, pt, star, st) {
			return
		}
		score.Value++
		entity.RequestSound(w, assets.SoundLaser)
		w.DestroyEntity(star)
		if s.settings.Player.LogCollectingStars {
			s.log.Info("player hit star", zap.Int("score", score.Value))
		}
	})
}
