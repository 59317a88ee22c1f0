package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const hudScale = 2

// HUDSystem draws the running score and a paused banner over a run.
type HUDSystem struct {
	app  *AppStateMachine
	sim  *SimulationStateMachine
	face text.Face
}

func NewHUDSystem(app *AppStateMachine, sim *SimulationStateMachine) *HUDSystem {
	return &HUDSystem{app: app, sim: sim, face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if !h.app.Is(component.AppStateGame) {
		return
	}
	score, ok := ecs.FirstComponent(w, component.ScoreComponent.Kind())
	if !ok {
		return
	}

	h.drawText(screen, fmt.Sprintf("Score: %d", score.Value), 16, 12)

	if h.sim.Is(component.SimulationPaused) {
		const banner = "PAUSED"
		tw, th := text.Measure(banner, h.face, 0)
		bounds := screen.Bounds()
		x := (float64(bounds.Dx()) - tw*hudScale) / 2
		y := (float64(bounds.Dy()) - th*hudScale) / 2
		h.drawText(screen, banner, x, y)
	}
}

func (h *HUDSystem) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, s, h.face, op)
}
