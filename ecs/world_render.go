package ecs

import "github.com/hajimehoshi/ebiten/v2"

// RenderSystem draws ECS entities each frame.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// AddRenderSystem appends a system to the draw order.
func (w *World) AddRenderSystem(rs RenderSystem) {
	if w == nil || rs == nil {
		return
	}
	w.renderers = append(w.renderers, rs)
}

// Draw calls all render systems in registration order.
func (w *World) Draw(screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, rs := range w.renderers {
		rs.Draw(w, screen)
	}
}
