package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ballgame/assets"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const viewSize = 512

// previewGame cycles through the generated sprites with the spawn pop-in
// and plays a synthesized sound on Space.
type previewGame struct {
	sprites []string
	size    int
	current int

	pop   *gween.Tween
	scale float64

	sounds *assets.SoundBank
	sound  int
}

func newPreview(size int, sounds *assets.SoundBank) *previewGame {
	g := &previewGame{
		sprites: []string{assets.BallBlue, assets.BallRed, assets.Star},
		size:    size,
		sounds:  sounds,
	}
	g.restartPop()
	return g
}

func (g *previewGame) restartPop() {
	g.pop = gween.New(0, 1, 0.4, ease.OutBack)
	g.scale = 0
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.current = (g.current + 1) % len(g.sprites)
		g.restartPop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.current = (g.current + len(g.sprites) - 1) % len(g.sprites)
		g.restartPop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		names := assets.SoundNames()
		if err := g.sounds.Play(names[g.sound%len(names)]); err != nil {
			log.Printf("play: %v", err)
		}
		g.sound++
	}
	if g.pop != nil {
		v, done := g.pop.Update(float32(1.0 / float64(ebiten.TPS())))
		g.scale = float64(v)
		if done {
			g.pop = nil
			g.scale = 1
		}
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	img, err := assets.Sprite(g.sprites[g.current], g.size)
	if err != nil {
		return
	}
	half := float64(g.size) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate(viewSize/2, viewSize/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	size := flag.Int("size", 128, "sprite size in pixels")
	mute := flag.Bool("mute", false, "skip audio")
	flag.Parse()

	var sounds *assets.SoundBank
	if !*mute {
		bank, err := assets.NewSoundBank(0.5)
		if err != nil {
			log.Printf("audio disabled: %v", err)
		}
		sounds = bank
	}

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("Sprite Preview")
	if err := ebiten.RunGame(newPreview(*size, sounds)); err != nil {
		log.Fatal(err)
	}
}
