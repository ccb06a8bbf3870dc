package entity

import "math"

// Force is a two-component direction converging toward a destination.
//
// Each Update moves the direction toward the destination by velocity*extrp
// per component, then clamps it to the direction maximum when one is set.
// The previous frame's direction is kept for IsDecreasingHorizontal.
type Force struct {
	h, v         float64
	oldH, oldV   float64
	destH, destV float64
	velocity     float64

	maxH, maxV float64
	bounded    bool
}

// NewForce creates a zero force with the given convergence velocity
func NewForce(velocity float64) *Force {
	return &Force{velocity: velocity}
}

// SetDestination sets the direction the force converges to
func (f *Force) SetDestination(h, v float64) {
	f.destH = h
	f.destV = v
}

// SetVelocity sets the convergence rate per frame
func (f *Force) SetVelocity(velocity float64) {
	f.velocity = velocity
}

// SetDirection sets the current direction immediately
func (f *Force) SetDirection(h, v float64) {
	f.h = h
	f.v = v
	f.clamp()
}

// Zero sets the current direction to none
func (f *Force) Zero() {
	f.SetDirection(0, 0)
}

// SetDirectionMaximum bounds the magnitude of each component
func (f *Force) SetDirectionMaximum(h, v float64) {
	f.maxH = math.Abs(h)
	f.maxV = math.Abs(v)
	f.bounded = true
	f.clamp()
}

// ClearDirectionMaximum removes the bound
func (f *Force) ClearDirectionMaximum() {
	f.bounded = false
}

// Update converges the direction toward the destination
func (f *Force) Update(extrp float64) {
	f.oldH, f.oldV = f.h, f.v
	step := f.velocity * extrp
	f.h = approach(f.h, f.destH, step)
	f.v = approach(f.v, f.destV, step)
	f.clamp()
}

// DirectionHorizontal returns the current horizontal direction
func (f *Force) DirectionHorizontal() float64 { return f.h }

// DirectionVertical returns the current vertical direction
func (f *Force) DirectionVertical() float64 { return f.v }

// DestinationHorizontal returns the horizontal destination
func (f *Force) DestinationHorizontal() float64 { return f.destH }

// DestinationVertical returns the vertical destination
func (f *Force) DestinationVertical() float64 { return f.destV }

// Velocity returns the convergence rate
func (f *Force) Velocity() float64 { return f.velocity }

// DirectionMaximum returns the bound and whether one is set
func (f *Force) DirectionMaximum() (h, v float64, ok bool) {
	return f.maxH, f.maxV, f.bounded
}

// IsDecreasingHorizontal reports whether the horizontal magnitude shrank
// during the last Update
func (f *Force) IsDecreasingHorizontal() bool {
	return math.Abs(f.h) < math.Abs(f.oldH)
}

// Reset zeroes direction, destination and bound
func (f *Force) Reset() {
	*f = Force{velocity: f.velocity}
}

func (f *Force) clamp() {
	if !f.bounded {
		return
	}
	f.h = math.Max(-f.maxH, math.Min(f.h, f.maxH))
	f.v = math.Max(-f.maxV, math.Min(f.v, f.maxV))
}

func approach(current, target, step float64) float64 {
	if current < target {
		return math.Min(current+step, target)
	}
	if current > target {
		return math.Max(current-step, target)
	}
	return current
}
