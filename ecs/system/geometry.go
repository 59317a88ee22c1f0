package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
)

// halfExtent is the distance from an entity's center to its sprite edge.
func halfExtent(w *ecs.World, e ecs.Entity) float64 {
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		return sprite.Width / 2
	}
	if col, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		return col.Radius
	}
	return 0
}

// confine clamps a center so a sprite of half extent r stays inside the
// playfield.
func confine(pos cp.Vector, r float64, field component.Playfield) cp.Vector {
	return cp.Vector{
		X: cp.Clamp(pos.X, r, field.Width-r),
		Y: cp.Clamp(pos.Y, r, field.Height-r),
	}
}

func colliderRadius(w *ecs.World, e ecs.Entity) float64 {
	if col, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		return col.Radius
	}
	return halfExtent(w, e)
}

// touching reports whether two circular colliders overlap.
func touching(w *ecs.World, a ecs.Entity, ta *component.Transform, b ecs.Entity, tb *component.Transform) bool {
	return ta.Position().Distance(tb.Position()) < colliderRadius(w, a)+colliderRadius(w, b)
}

func playfield(w *ecs.World) (component.Playfield, bool) {
	field, ok := ecs.FirstComponent(w, component.PlayfieldComponent.Kind())
	if !ok {
		return component.Playfield{}, false
	}
	return *field, true
}
