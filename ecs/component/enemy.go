package component

import "github.com/jakecoffman/cp"

type Enemy struct {
	// Direction is a unit vector; bouncing negates one axis at a time.
	Direction cp.Vector
	// Speed in pixels per second.
	Speed float64
}

var EnemyComponent = NewComponent[Enemy]()
