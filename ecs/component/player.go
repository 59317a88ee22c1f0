package component

type Player struct {
	// Speed in pixels per second.
	Speed float64
	// BoostFactor multiplies the direction while the boost key is held.
	BoostFactor float64
}

var PlayerComponent = NewComponent[Player]()
