package entity

// Body accumulates gravity into a downward vertical speed.
// Speeds are in pixels per frame at extrp == 1.
type Body struct {
	gravity    float64
	gravityMax float64
	vertical   float64
}

// NewBody creates a body with the given acceleration and terminal speed
func NewBody(gravity, gravityMax float64) *Body {
	return &Body{gravity: gravity, gravityMax: gravityMax}
}

// Update accumulates one frame of gravity
func (b *Body) Update(extrp float64) {
	b.vertical -= b.gravity * extrp
	if b.vertical < -b.gravityMax {
		b.vertical = -b.gravityMax
	}
}

// ResetGravity cancels the accumulated fall speed
func (b *Body) ResetGravity() {
	b.vertical = 0
}

// Vertical returns the accumulated vertical speed (negative when falling)
func (b *Body) Vertical() float64 {
	return b.vertical
}

// Transform holds the entity origin (bottom center) for this frame and the
// previous one
type Transform struct {
	X, Y       float64
	OldX, OldY float64
}

// Snapshot stores the current position as the previous frame's
func (t *Transform) Snapshot() {
	t.OldX = t.X
	t.OldY = t.Y
}

// Move translates the current position
func (t *Transform) Move(dx, dy float64) {
	t.X += dx
	t.Y += dy
}

// Teleport places the entity without leaving a trail between frames
func (t *Transform) Teleport(x, y float64) {
	t.X, t.Y = x, y
	t.OldX, t.OldY = x, y
}

// Mirror is the horizontal orientation of an entity
type Mirror int

const (
	// MirrorNone faces right
	MirrorNone Mirror = iota
	// MirrorHorizontal faces left
	MirrorHorizontal
)

// String returns the string representation of the mirror
func (m Mirror) String() string {
	if m == MirrorHorizontal {
		return "horizontal"
	}
	return "none"
}

// Sign returns 1 when facing right and -1 when facing left
func (m Mirror) Sign() float64 {
	if m == MirrorHorizontal {
		return -1
	}
	return 1
}
