// Package collision defines the tags exchanged between tile/entity collision
// resolution and the locomotion states: axes, surface profiles, probe zones,
// results and the listener router that delivers them.
package collision

import (
	"errors"
	"fmt"
)

// ErrUnknownProfile is returned when a profile name matches no known prefix.
var ErrUnknownProfile = errors.New("unknown collision profile")

// Axis is the axis a tile collision was resolved on
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns the string representation of the axis
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Profile classifies the surface of a tile.
//
// Left/right variants name the side the surface faces: a left profile rises
// toward +X, a right profile descends toward +X. Steep profiles rise two
// units per unit of X and cannot be stood on.
type Profile int

const (
	ProfileNone Profile = iota
	ProfileGround
	ProfileSlope
	ProfileSlopeLeft
	ProfileSlopeRight
	ProfileSteep
	ProfileSteepLeft
	ProfileSteepRight
)

var profileNames = [...]string{
	ProfileNone:       "none",
	ProfileGround:     "ground",
	ProfileSlope:      "slope",
	ProfileSlopeLeft:  "slope_left",
	ProfileSlopeRight: "slope_right",
	ProfileSteep:      "steep",
	ProfileSteepLeft:  "steep_left",
	ProfileSteepRight: "steep_right",
}

// String returns the canonical name of the profile
func (p Profile) String() string {
	if p < 0 || int(p) >= len(profileNames) {
		return "unknown"
	}
	return profileNames[p]
}

// ParseProfile returns the profile whose canonical name is name
func ParseProfile(name string) (Profile, error) {
	for i, n := range profileNames {
		if n == name {
			return Profile(i), nil
		}
	}
	return ProfileNone, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// IsGround reports whether the profile is flat walkable ground
func (p Profile) IsGround() bool {
	return p == ProfileGround
}

// IsSlope reports whether the profile belongs to the slope family
func (p Profile) IsSlope() bool {
	return p == ProfileSlope || p == ProfileSlopeLeft || p == ProfileSlopeRight
}

// IsSteep reports whether the profile belongs to the steep family
func (p Profile) IsSteep() bool {
	return p == ProfileSteep || p == ProfileSteepLeft || p == ProfileSteepRight
}

// Height returns the surface height above the tile bottom at localX.
// localX is clamped to [0, size].
func (p Profile) Height(localX, size float64) float64 {
	lx := clamp(localX, 0, size)
	switch p {
	case ProfileNone:
		return 0
	case ProfileSlopeLeft:
		return lx
	case ProfileSlopeRight:
		return size - lx
	case ProfileSteepLeft:
		return min(2*lx, size)
	case ProfileSteepRight:
		return min(2*(size-lx), size)
	default:
		return size
	}
}

// SolidSpan returns the local X range covered by the tile at localY.
// ok is false when nothing of the tile is solid at that height.
func (p Profile) SolidSpan(localY, size float64) (minX, maxX float64, ok bool) {
	if p == ProfileNone || localY < 0 || localY >= size {
		return 0, 0, false
	}
	switch p {
	case ProfileSlopeLeft:
		return localY, size, true
	case ProfileSlopeRight:
		return 0, size - localY, true
	case ProfileSteepLeft:
		return localY / 2, size, true
	case ProfileSteepRight:
		return 0, size - localY/2, true
	default:
		return 0, size, true
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
