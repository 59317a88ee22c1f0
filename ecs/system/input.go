package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
)

// KeySource reports keyboard state.
type KeySource interface {
	IsPressed(key ebiten.Key) bool
	IsJustPressed(key ebiten.Key) bool
}

// EbitenKeys reads the live keyboard.
type EbitenKeys struct{}

func (EbitenKeys) IsPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenKeys) IsJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

type InputSystem struct {
	keys KeySource
}

func NewInputSystem(keys KeySource) *InputSystem {
	if keys == nil {
		keys = EbitenKeys{}
	}
	return &InputSystem{keys: keys}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if i.keys.IsPressed(k) {
				return true
			}
		}
		return false
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Up = held(ebiten.KeyW, ebiten.KeyArrowUp)
		input.Down = held(ebiten.KeyS, ebiten.KeyArrowDown)
		input.Left = held(ebiten.KeyA, ebiten.KeyArrowLeft)
		input.Right = held(ebiten.KeyD, ebiten.KeyArrowRight)
		input.Boost = held(ebiten.KeyShiftLeft)

		input.PausePressed = i.keys.IsJustPressed(ebiten.KeySpace)
		input.TogglePressed = i.keys.IsJustPressed(ebiten.KeyG)
		input.MenuPressed = i.keys.IsJustPressed(ebiten.KeyM)
		input.ExitPressed = i.keys.IsJustPressed(ebiten.KeyEscape)
		input.CopyPressed = i.keys.IsJustPressed(ebiten.KeyC)
	})
}
