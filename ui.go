package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	hoverColor  = color.NRGBA{R: 0x4a, G: 0x4a, B: 0x5a, A: 255}
	textColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// overlays holds one ebitenui screen per menu-like state. Only the screen
// matching the current state is updated and drawn.
type overlays struct {
	menu  *ebitenui.UI
	pause *ebitenui.UI
	over  *ebitenui.UI

	best  *widget.Text
	final *widget.Text
}

func newOverlays(g *Game) *overlays {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	o := &overlays{}
	b := &uiBuilder{face: &face, width: g.settings.Window.Width / 3, height: g.settings.Window.Height / 3}

	o.best = b.text("")
	o.menu = b.screen(
		b.text("BALLGAME"),
		o.best,
		b.button("Start (G)", func() { g.pipeline.App.Set(component.AppStateGame) }),
		b.button("Quit (Esc)", func() { g.quit = true }),
	)

	o.pause = b.screen(
		b.text("Paused"),
		b.button("Resume (Space)", func() { g.pipeline.Sim.Set(component.SimulationRunning) }),
		b.button("Main menu (G)", func() { g.pipeline.App.Set(component.AppStateMainMenu) }),
	)

	o.final = b.text("")
	o.over = b.screen(
		b.text("Game Over"),
		o.final,
		b.button("Play again (G)", func() { g.pipeline.App.Set(component.AppStateGame) }),
		b.button("Main menu (M)", func() { g.pipeline.App.Set(component.AppStateMainMenu) }),
		b.button("Copy score (C)", func() {
			if err := g.clip.WriteText(fmt.Sprint(g.finalScore())); err != nil {
				g.log.Warn("copy score failed", zap.Error(err))
			}
		}),
	)
	return o
}

func (o *overlays) active(g *Game) *ebitenui.UI {
	switch g.pipeline.App.Get() {
	case component.AppStateMainMenu:
		return o.menu
	case component.AppStateGameOver:
		return o.over
	case component.AppStateGame:
		if g.pipeline.Sim.Is(component.SimulationPaused) {
			return o.pause
		}
	}
	return nil
}

func (o *overlays) Update(g *Game) {
	o.final.Label = fmt.Sprintf("Your final score is %d", g.finalScore())
	o.best.Label = "No high score yet"
	if hs, ok := ecs.FirstComponent(g.world, component.HighScoresComponent.Kind()); ok {
		if best, ok := hs.Best(); ok {
			o.best.Label = fmt.Sprintf("Best: %s %d", best.Name, best.Score)
		}
	}

	if ui := o.active(g); ui != nil {
		ui.Update()
	}
}

func (o *overlays) Draw(g *Game, screen *ebiten.Image) {
	if ui := o.active(g); ui != nil {
		ui.Draw(screen)
	}
}

type uiBuilder struct {
	face          *ebtext.Face
	width, height int
}

func (b *uiBuilder) text(label string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, b.face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (b *uiBuilder) button(label string, onClick func()) *widget.Button {
	idle := imageui.NewNineSliceColor(buttonColor)
	hover := imageui.NewNineSliceColor(hoverColor)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Hover: hover, Pressed: idle}),
		widget.ButtonOpts.Text(label, b.face, &widget.ButtonTextColor{Idle: textColor}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 28),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true}),
		),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
	)
}

// screen centers a vertical panel holding children.
func (b *uiBuilder) screen(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(b.width, b.height),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	for _, c := range children {
		panel.AddChild(c)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
