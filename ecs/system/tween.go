package system

import (
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
)

// TweenSystem advances spawn pop-in tweens and writes the value into the
// transform scale. Finished tweens are removed.
type TweenSystem struct{}

func NewTweenSystem() *TweenSystem {
	return &TweenSystem{}
}

func (s *TweenSystem) Update(w *ecs.World) {
	dt := float32(w.Delta())
	ecs.ForEach2(w, component.ScaleTweenComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tw *component.ScaleTween, t *component.Transform) {
		if tw.Tween == nil {
			ecs.Remove(w, e, component.ScaleTweenComponent.Kind())
			return
		}
		value, finished := tw.Tween.Update(dt)
		t.ScaleX = float64(value)
		t.ScaleY = float64(value)
		if finished {
			t.ScaleX, t.ScaleY = 1, 1
			ecs.Remove(w, e, component.ScaleTweenComponent.Kind())
		}
	})
}
