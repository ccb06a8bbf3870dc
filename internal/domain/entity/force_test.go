package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForce_Converges(t *testing.T) {
	f := NewForce(0.5)
	f.SetDestination(1, -1)

	f.Update(1)
	assert.Equal(t, 0.5, f.DirectionHorizontal())
	assert.Equal(t, -0.5, f.DirectionVertical())

	f.Update(1)
	f.Update(1)
	assert.Equal(t, 1.0, f.DirectionHorizontal(), "never overshoots")
	assert.Equal(t, -1.0, f.DirectionVertical())
}

func TestForce_Extrapolation(t *testing.T) {
	f := NewForce(0.25)
	f.SetDestination(2, 0)
	f.Update(2)
	assert.Equal(t, 0.5, f.DirectionHorizontal())
}

func TestForce_DirectionMaximum(t *testing.T) {
	f := NewForce(1)
	f.SetDirection(5, -5)
	f.SetDirectionMaximum(-2, 3)

	assert.Equal(t, 2.0, f.DirectionHorizontal())
	assert.Equal(t, -3.0, f.DirectionVertical())

	h, v, ok := f.DirectionMaximum()
	assert.True(t, ok)
	assert.Equal(t, 2.0, h)
	assert.Equal(t, 3.0, v)

	f.SetDestination(10, 0)
	f.Update(1)
	assert.Equal(t, 2.0, f.DirectionHorizontal())

	f.ClearDirectionMaximum()
	f.Update(1)
	assert.Equal(t, 3.0, f.DirectionHorizontal())
}

func TestForce_IsDecreasingHorizontal(t *testing.T) {
	f := NewForce(0.5)
	f.SetDirection(-2, 0)

	f.Update(1)
	assert.True(t, f.IsDecreasingHorizontal())

	f.SetDestination(-4, 0)
	f.Update(1)
	assert.False(t, f.IsDecreasingHorizontal())
}

func TestForce_Reset(t *testing.T) {
	f := NewForce(0.3)
	f.SetDestination(1, 1)
	f.SetDirectionMaximum(1, 1)
	f.Update(1)

	f.Reset()

	assert.Zero(t, f.DirectionHorizontal())
	assert.Zero(t, f.DestinationHorizontal())
	assert.Equal(t, 0.3, f.Velocity())
	_, _, ok := f.DirectionMaximum()
	assert.False(t, ok)
}
