package component

// Playfield is the window-sized arena every moving entity is confined to.
type Playfield struct {
	Width  float64
	Height float64
}

var PlayfieldComponent = NewComponent[Playfield]()
