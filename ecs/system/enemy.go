package system

import (
	"github.com/milk9111/ballgame/assets"
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"github.com/milk9111/ballgame/ecs/entity"
	"github.com/milk9111/ballgame/prefabs"
	"go.uber.org/zap"
)

type EnemyMovementSystem struct{}

func NewEnemyMovementSystem() *EnemyMovementSystem {
	return &EnemyMovementSystem{}
}

func (s *EnemyMovementSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, enemy *component.Enemy, t *component.Transform) {
		t.SetPosition(t.Position().Add(enemy.Direction.Mult(enemy.Speed * dt)))
	})
}

type EnemyConfineSystem struct{}

func NewEnemyConfineSystem() *EnemyConfineSystem {
	return &EnemyConfineSystem{}
}

func (s *EnemyConfineSystem) Update(w *ecs.World) {
	field, ok := playfield(w)
	if !ok {
		return
	}
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Enemy, t *component.Transform) {
		t.SetPosition(confine(t.Position(), halfExtent(w, e), field))
	})
}

// EnemyBounceSystem reverses the direction axis of every enemy resting on
// a playfield edge. It runs after confinement, so touching counts.
type EnemyBounceSystem struct {
	settings *prefabs.Settings
}

func NewEnemyBounceSystem(settings *prefabs.Settings) *EnemyBounceSystem {
	return &EnemyBounceSystem{settings: settings}
}

func (s *EnemyBounceSystem) Update(w *ecs.World) {
	field, ok := playfield(w)
	if !ok {
		return
	}
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform) {
		r := halfExtent(w, e)
		flipped := false
		if t.X <= r || t.X >= field.Width-r {
			enemy.Direction.X = -enemy.Direction.X
			flipped = true
		}
		if t.Y <= r || t.Y >= field.Height-r {
			enemy.Direction.Y = -enemy.Direction.Y
			flipped = true
		}
		if flipped && s.settings.Enemy.PlayBounceSound {
			entity.RequestSound(w, assets.SoundPluck)
		}
	})
}

// EnemyHitPlayerSystem ends the run on the first enemy that touches the
// player.
type EnemyHitPlayerSystem struct {
	log *zap.Logger
}

func NewEnemyHitPlayerSystem(log *zap.Logger) *EnemyHitPlayerSystem {
	return &EnemyHitPlayerSystem{log: log}
}

func (s *EnemyHitPlayerSystem) Update(w *ecs.World) {
	player, ok := w.First(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind())
	if !ok {
		return
	}
	pt, _ := ecs.Get(w, player, component.TransformComponent.Kind())

	for _, enemy := range w.Query(component.EnemyComponent.Kind(), component.TransformComponent.Kind()) {
		et, _ := ecs.Get(w, enemy, component.TransformComponent.Kind())
		if !touching(w, player, pt, enemy, et) {
			continue
		}

		score := 0
		if sc, ok := ecs.FirstComponent(w, component.ScoreComponent.Kind()); ok {
			score = sc.Value
		}
		entity.RequestSound(w, assets.SoundExplosion)
		w.DestroyEntity(player)
		w.Events().Push(ecs.Event{Type: ecs.EventGameOver, Data: ecs.GameOver{Score: score}})
		s.log.Info("enemy hit player", zap.Int("score", score))
		return
	}
}
