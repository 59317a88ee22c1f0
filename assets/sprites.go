package assets

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	BallBlue = "ball_blue_large"
	BallRed  = "ball_red_large"
	Star     = "star"
)

var (
	ballBlueColor = color.RGBA{R: 0x3a, G: 0x7b, B: 0xe0, A: 0xff}
	ballRedColor  = color.RGBA{R: 0xd8, G: 0x3a, B: 0x3a, A: 0xff}
	starColor     = color.RGBA{R: 0xf5, G: 0xc8, B: 0x2a, A: 0xff}
	highlight     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50}
)

type spriteKey struct {
	name string
	size int
}

var (
	spriteMu    sync.Mutex
	spriteCache = map[spriteKey]*ebiten.Image{}
	whitePixel  *ebiten.Image
)

// Sprite returns the generated image for name at the given pixel size.
// Images are built on first use and cached.
func Sprite(name string, size int) (*ebiten.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("assets: sprite %q: invalid size %d", name, size)
	}
	spriteMu.Lock()
	defer spriteMu.Unlock()

	key := spriteKey{name: name, size: size}
	if img, ok := spriteCache[key]; ok {
		return img, nil
	}

	img := ebiten.NewImage(size, size)
	switch name {
	case BallBlue:
		drawBall(img, size, ballBlueColor)
	case BallRed:
		drawBall(img, size, ballRedColor)
	case Star:
		drawStar(img, size, starColor)
	default:
		img.Deallocate()
		return nil, fmt.Errorf("assets: unknown sprite %q", name)
	}
	spriteCache[key] = img
	return img, nil
}

func drawBall(img *ebiten.Image, size int, c color.Color) {
	r := float32(size) / 2
	vector.DrawFilledCircle(img, r, r, r, c, true)
	vector.DrawFilledCircle(img, r*0.7, r*0.7, r*0.35, highlight, true)
}

func drawStar(img *ebiten.Image, size int, c color.RGBA) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}

	var path vector.Path
	for i, p := range StarPoints(float64(size)/2, float64(size)/2, float64(size)/2, float64(size)/5) {
		if i == 0 {
			path.MoveTo(float32(p[0]), float32(p[1]))
			continue
		}
		path.LineTo(float32(p[0]), float32(p[1]))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = float32(c.A) / 0xff
	}
	img.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// StarPoints returns the ten outline vertices of a five-pointed star with
// its first tip pointing up.
func StarPoints(cx, cy, outer, inner float64) [][2]float64 {
	pts := make([][2]float64, 0, 10)
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		pts = append(pts, [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)})
	}
	return pts
}
