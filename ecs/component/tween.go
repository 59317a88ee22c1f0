package component

import "github.com/tanema/gween"

// ScaleTween animates Transform.ScaleX/ScaleY together and is removed once
// finished.
type ScaleTween struct {
	Tween *gween.Tween
}

var ScaleTweenComponent = NewComponent[ScaleTween]()
