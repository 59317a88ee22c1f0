package component

// Sprite names a generated asset and the size it is drawn at. The image
// itself is resolved by the render system so headless worlds never touch
// the GPU.
type Sprite struct {
	Key    string
	Width  float64
	Height float64
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
