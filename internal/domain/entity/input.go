package entity

// InputDevice is the control surface the locomotion states read.
// Directions are in [-1, 1]; vertical is positive upward.
// "Once" queries are true only on the frame the button went down.
type InputDevice interface {
	HorizontalDirection() float64
	VerticalDirection() float64
	IsUpButtonOnce() bool
	IsDownButtonOnce() bool
	IsLeftButtonOnce() bool
	IsRightButtonOnce() bool
	IsFireButton() bool
	IsFireButtonOnce() bool
}

// NoInput is the device of entities nobody controls
type NoInput struct{}

func (NoInput) HorizontalDirection() float64 { return 0 }
func (NoInput) VerticalDirection() float64   { return 0 }
func (NoInput) IsUpButtonOnce() bool         { return false }
func (NoInput) IsDownButtonOnce() bool       { return false }
func (NoInput) IsLeftButtonOnce() bool       { return false }
func (NoInput) IsRightButtonOnce() bool      { return false }
func (NoInput) IsFireButton() bool           { return false }
func (NoInput) IsFireButtonOnce() bool       { return false }
