package collision

import (
	"errors"
	"fmt"
)

// ErrUnknownZone is returned when a zone name is not one of the known zones
var ErrUnknownZone = errors.New("unknown collision zone")

// Zone tags the body part a probe or contact box belongs to
type Zone int

const (
	ZoneOther Zone = iota
	ZoneLeg
	ZoneLegLeft
	ZoneLegRight
	ZoneLegCenter
	ZoneAttackFall
)

var zoneNames = [...]string{
	ZoneOther:      "other",
	ZoneLeg:        "leg",
	ZoneLegLeft:    "leg_left",
	ZoneLegRight:   "leg_right",
	ZoneLegCenter:  "leg_center",
	ZoneAttackFall: "attack_fall",
}

// String returns the canonical name of the zone
func (z Zone) String() string {
	if z < 0 || int(z) >= len(zoneNames) {
		return "unknown"
	}
	return zoneNames[z]
}

// ParseZone returns the zone whose canonical name is name
func ParseZone(name string) (Zone, error) {
	for i, n := range zoneNames {
		if n == name {
			return Zone(i), nil
		}
	}
	return ZoneOther, fmt.Errorf("%w: %q", ErrUnknownZone, name)
}

// IsLeg reports whether the zone is one of the leg zones
func (z Zone) IsLeg() bool {
	return z == ZoneLeg || z == ZoneLegLeft || z == ZoneLegRight || z == ZoneLegCenter
}
