package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ballgame/assets"
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"go.uber.org/zap"
)

type RenderSystem struct {
	log    *zap.Logger
	failed map[string]bool
}

func NewRenderSystem(log *zap.Logger) *RenderSystem {
	return &RenderSystem{log: log, failed: make(map[string]bool)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil {
		return
	}

	for _, e := range drawOrder(w) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if sprite.Hidden || t.ScaleX == 0 || t.ScaleY == 0 {
			continue
		}

		size := int(sprite.Width + 0.5)
		img, err := assets.Sprite(sprite.Key, size)
		if err != nil {
			if !r.failed[sprite.Key] {
				r.failed[sprite.Key] = true
				r.log.Error("sprite unavailable", zap.String("sprite", sprite.Key), zap.Error(err))
			}
			continue
		}

		bounds := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
		op.GeoM.Scale(
			t.ScaleX*sprite.Width/float64(bounds.Dx()),
			t.ScaleY*sprite.Height/float64(bounds.Dy()),
		)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
}

// drawOrder sorts drawable entities by render layer, then by entity id.
func drawOrder(w *ecs.World) []ecs.Entity {
	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	layerOf := func(e ecs.Entity) int {
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return layer.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(entities[i]), layerOf(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
	return entities
}
