package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Height(t *testing.T) {
	tests := []struct {
		profile Profile
		localX  float64
		want    float64
	}{
		{ProfileGround, 3, 16},
		{ProfileSlope, 3, 16},
		{ProfileSlopeLeft, 0, 0},
		{ProfileSlopeLeft, 12, 12},
		{ProfileSlopeRight, 12, 4},
		{ProfileSteepLeft, 4, 8},
		{ProfileSteepLeft, 12, 16},
		{ProfileSteepRight, 4, 16},
		{ProfileSteepRight, 12, 8},
		{ProfileSlopeLeft, -5, 0},
		{ProfileSlopeLeft, 40, 16},
		{ProfileNone, 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.profile.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.Height(tt.localX, 16))
		})
	}
}

func TestProfile_SolidSpan(t *testing.T) {
	minX, maxX, ok := ProfileGround.SolidSpan(5, 16)
	require.True(t, ok)
	assert.Equal(t, 0.0, minX)
	assert.Equal(t, 16.0, maxX)

	minX, maxX, ok = ProfileSlopeLeft.SolidSpan(4, 16)
	require.True(t, ok)
	assert.Equal(t, 4.0, minX)
	assert.Equal(t, 16.0, maxX)

	minX, maxX, ok = ProfileSteepRight.SolidSpan(8, 16)
	require.True(t, ok)
	assert.Equal(t, 0.0, minX)
	assert.Equal(t, 12.0, maxX)

	_, _, ok = ProfileGround.SolidSpan(16, 16)
	assert.False(t, ok, "the top edge is outside the tile")
	_, _, ok = ProfileGround.SolidSpan(-1, 16)
	assert.False(t, ok)
	_, _, ok = ProfileNone.SolidSpan(4, 16)
	assert.False(t, ok)
}

func TestProfile_Families(t *testing.T) {
	assert.True(t, ProfileGround.IsGround())
	assert.False(t, ProfileSlope.IsGround())

	for _, p := range []Profile{ProfileSlope, ProfileSlopeLeft, ProfileSlopeRight} {
		assert.True(t, p.IsSlope(), p.String())
		assert.False(t, p.IsSteep(), p.String())
	}
	for _, p := range []Profile{ProfileSteep, ProfileSteepLeft, ProfileSteepRight} {
		assert.True(t, p.IsSteep(), p.String())
		assert.False(t, p.IsSlope(), p.String())
	}
}

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("steep_right")
	require.NoError(t, err)
	assert.Equal(t, ProfileSteepRight, p)

	_, err = ParseProfile("steep_right_2")
	assert.ErrorIs(t, err, ErrUnknownProfile)
	assert.Equal(t, "unknown", Profile(42).String())
}

func TestAxis_String(t *testing.T) {
	assert.Equal(t, "x", AxisX.String())
	assert.Equal(t, "y", AxisY.String())
}

func TestCapability_Has(t *testing.T) {
	both := CapGlue | CapHurtable
	assert.True(t, both.Has(CapGlue))
	assert.True(t, both.Has(CapHurtable|CapGlue))
	assert.False(t, CapGlue.Has(CapHurtable))
}
