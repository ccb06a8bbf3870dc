package collision

import (
	"fmt"
	"sort"
	"strings"
)

type prefixEntry[T any] struct {
	prefix string
	value  T
}

// Table resolves the free-form names found in map and entity data into
// profile and zone tags. Lookups match the longest registered prefix, so
// "steep_left_2" resolves through "steep_left" before "steep".
//
// A Table is built once at load time; the per-frame path only sees tags.
type Table struct {
	profiles []prefixEntry[Profile]
	zones    []prefixEntry[Zone]
}

// NewTable creates a table from prefix maps
func NewTable(profiles map[string]Profile, zones map[string]Zone) *Table {
	t := &Table{}
	for prefix, p := range profiles {
		t.profiles = append(t.profiles, prefixEntry[Profile]{prefix, p})
	}
	for prefix, z := range zones {
		t.zones = append(t.zones, prefixEntry[Zone]{prefix, z})
	}
	sortByPrefix(t.profiles)
	sortByPrefix(t.zones)
	return t
}

// DefaultTable returns the table matching the canonical names
func DefaultTable() *Table {
	profiles := make(map[string]Profile, len(profileNames))
	for i, name := range profileNames {
		if Profile(i) == ProfileNone {
			continue
		}
		profiles[name] = Profile(i)
	}
	zones := make(map[string]Zone, len(zoneNames))
	for i, name := range zoneNames {
		if Zone(i) == ZoneOther {
			continue
		}
		zones[name] = Zone(i)
	}
	return NewTable(profiles, zones)
}

// Profile resolves a tile profile name
func (t *Table) Profile(name string) (Profile, error) {
	for _, e := range t.profiles {
		if strings.HasPrefix(name, e.prefix) {
			return e.value, nil
		}
	}
	return ProfileNone, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// Zone resolves a probe or contact box name. Unmatched names are ZoneOther.
func (t *Table) Zone(name string) Zone {
	for _, e := range t.zones {
		if strings.HasPrefix(name, e.prefix) {
			return e.value
		}
	}
	return ZoneOther
}

func sortByPrefix[T any](entries []prefixEntry[T]) {
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].prefix) != len(entries[j].prefix) {
			return len(entries[i].prefix) > len(entries[j].prefix)
		}
		return entries[i].prefix < entries[j].prefix
	})
}
