package component

// Collider is a circle centered on the entity's transform. Two colliders
// touch when their centers are closer than the sum of their radii.
type Collider struct {
	Radius float64
}

var ColliderComponent = NewComponent[Collider]()
