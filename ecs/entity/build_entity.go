package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"github.com/milk9111/ballgame/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"star_tag":     addStarTag,
	"gameplay_tag": addGameplayTag,
	"player":       addPlayer,
	"enemy":        addEnemy,
	"transform":    addTransform,
	"sprite":       addSprite,
	"render_layer": addRenderLayer,
	"collider":     addCollider,
}

// collider must come after sprite so a zero radius can fall back to the
// sprite size.
var componentBuildOrder = []string{
	"player_tag",
	"star_tag",
	"gameplay_tag",
	"player",
	"enemy",
	"transform",
	"sprite",
	"render_layer",
	"collider",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %v", prefabPath, names)
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addStarTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.StarTagComponent.Kind(), &component.StarTag{})
}

func addGameplayTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.GameplayTagComponent.Kind(), &component.GameplayTag{})
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if spec.BoostFactor <= 0 {
		spec.BoostFactor = 1
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Speed:       spec.Speed,
		BoostFactor: spec.BoostFactor,
	})
}

// addEnemy leaves Direction zero and Speed as written; the spawner rolls
// both when the prefab does not pin a speed.
func addEnemy(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EnemyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode enemy spec: %w", err)
	}
	return ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{Speed: spec.Speed})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Image == "" {
		return fmt.Errorf("sprite image is required")
	}
	if spec.Size <= 0 {
		return fmt.Errorf("sprite size must be positive, got %v", spec.Size)
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Key:    spec.Image,
		Width:  spec.Size,
		Height: spec.Size,
	})
}

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RenderLayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render_layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

func addCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ColliderComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	radius := spec.Radius
	if radius <= 0 {
		sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok {
			return fmt.Errorf("collider without radius requires a sprite")
		}
		radius = sprite.Width / 2
	}
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Radius: radius})
}
