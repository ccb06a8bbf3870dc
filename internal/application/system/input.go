package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the current input state.
// It implements entity.InputDevice.
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool

	// Edges, true only on the frame the button went down
	LeftPressed  bool
	RightPressed bool
	UpPressed    bool
	DownPressed  bool
	FirePressed  bool
}

// NextInput returns cur with its edges derived from the previous frame
func NextInput(prev, cur InputState) InputState {
	cur.LeftPressed = cur.Left && !prev.Left
	cur.RightPressed = cur.Right && !prev.Right
	cur.UpPressed = cur.Up && !prev.Up
	cur.DownPressed = cur.Down && !prev.Down
	cur.FirePressed = cur.Fire && !prev.Fire
	return cur
}

func (i InputState) HorizontalDirection() float64 {
	return axis(i.Left, i.Right)
}

func (i InputState) VerticalDirection() float64 {
	return axis(i.Down, i.Up)
}

func (i InputState) IsUpButtonOnce() bool    { return i.UpPressed }
func (i InputState) IsDownButtonOnce() bool  { return i.DownPressed }
func (i InputState) IsLeftButtonOnce() bool  { return i.LeftPressed }
func (i InputState) IsRightButtonOnce() bool { return i.RightPressed }
func (i InputState) IsFireButton() bool      { return i.Fire }
func (i InputState) IsFireButtonOnce() bool  { return i.FirePressed }

func axis(negative, positive bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	}
	return 0
}

// InputSystem samples the keyboard.
// Arrows or WASD move, Ctrl or Space fires.
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:         anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:        anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:           anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:         anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Fire:         anyPressed(ebiten.KeyControlLeft, ebiten.KeyControlRight, ebiten.KeySpace),
		LeftPressed:  anyJustPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		RightPressed: anyJustPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		UpPressed:    anyJustPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		DownPressed:  anyJustPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		FirePressed:  anyJustPressed(ebiten.KeyControlLeft, ebiten.KeyControlRight, ebiten.KeySpace),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
