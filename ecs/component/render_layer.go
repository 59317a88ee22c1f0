package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

const (
	LayerStar   = 10
	LayerEnemy  = 20
	LayerPlayer = 30
)

var RenderLayerComponent = NewComponent[RenderLayer]()
