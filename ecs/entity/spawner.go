package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"github.com/milk9111/ballgame/prefabs"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"out_quad":    ease.OutQuad,
	"out_cubic":   ease.OutCubic,
	"out_back":    ease.OutBack,
	"out_bounce":  ease.OutBounce,
	"out_elastic": ease.OutElastic,
}

// Easing looks up a named easing function, defaulting to ease.OutBack.
func Easing(name string) ease.TweenFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return ease.OutBack
}

// Spawner builds the gameplay entities from their prefabs at random
// positions on the playfield.
type Spawner struct {
	rng      *rand.Rand
	settings *prefabs.Settings
}

func NewSpawner(settings *prefabs.Settings, rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Spawner{rng: rng, settings: settings}
}

func (s *Spawner) SetSettings(settings *prefabs.Settings) {
	if settings != nil {
		s.settings = settings
	}
}

func (s *Spawner) Settings() *prefabs.Settings {
	return s.settings
}

// SpawnPlayer places the player at the center of the playfield.
func (s *Spawner) SpawnPlayer(w *ecs.World) (ecs.Entity, error) {
	field := s.playfield(w)
	e, err := BuildEntity(w, s.settings.Player.Prefab)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := SetEntityTransform(w, e, field.Width/2, field.Height/2); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return e, nil
}

// SpawnStars creates n stars. With pop set they grow in from zero scale.
func (s *Spawner) SpawnStars(w *ecs.World, n int, pop bool) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, n)
	for i := 0; i < n; i++ {
		e, err := s.spawnAtRandom(w, s.settings.Star.Prefab)
		if err != nil {
			return out, fmt.Errorf("star: %w", err)
		}
		if pop {
			s.addPop(w, e)
		}
		out = append(out, e)
	}
	return out, nil
}

// SpawnEnemies creates n enemies heading in a random up-right direction at
// a random speed from the configured range.
func (s *Spawner) SpawnEnemies(w *ecs.World, n int, pop bool) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, n)
	for i := 0; i < n; i++ {
		e, err := s.spawnAtRandom(w, s.settings.Enemy.Prefab)
		if err != nil {
			return out, fmt.Errorf("enemy: %w", err)
		}
		enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
		if !ok {
			ecs.DestroyEntity(w, e)
			return out, fmt.Errorf("enemy: prefab %q has no enemy component", s.settings.Enemy.Prefab)
		}
		enemy.Direction = RandomDirection(s.rng)
		if enemy.Speed <= 0 {
			enemy.Speed = s.randomSpeed()
		}
		if pop {
			s.addPop(w, e)
		}
		out = append(out, e)
	}
	return out, nil
}

// RandomDirection normalizes a vector with components in [0,1). Y is
// negated so the heading points up the screen, and a zero roll falls back
// to +X.
func RandomDirection(rng *rand.Rand) cp.Vector {
	v := cp.Vector{X: rng.Float64(), Y: -rng.Float64()}
	if v.Length() == 0 {
		return cp.Vector{X: 1, Y: 0}
	}
	return v.Normalize()
}

func (s *Spawner) randomSpeed() float64 {
	r := s.settings.Enemy.Speed
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + s.rng.Float64()*(r.Max-r.Min)
}

func (s *Spawner) spawnAtRandom(w *ecs.World, prefab string) (ecs.Entity, error) {
	field := s.playfield(w)
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	x := s.rng.Float64() * field.Width
	y := s.rng.Float64() * field.Height
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("override transform: %w", err)
	}
	return e, nil
}

func (s *Spawner) addPop(w *ecs.World, e ecs.Entity) {
	pop := s.settings.SpawnPop
	if pop.Seconds <= 0 {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	t.ScaleX, t.ScaleY = 0, 0
	_ = ecs.Add(w, e, component.ScaleTweenComponent.Kind(), &component.ScaleTween{
		Tween: gween.New(0, 1, float32(pop.Seconds), Easing(pop.Ease)),
	})
}

func (s *Spawner) playfield(w *ecs.World) component.Playfield {
	if field, ok := ecs.FirstComponent(w, component.PlayfieldComponent.Kind()); ok {
		return *field
	}
	return component.Playfield{
		Width:  float64(s.settings.Window.Width),
		Height: float64(s.settings.Window.Height),
	}
}
