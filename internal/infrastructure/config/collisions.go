package config

import (
	"fmt"

	"github.com/younwookim/lionheart/internal/domain/collision"
)

// CollisionsConfig is the root config for collisions.yaml.
// Both maps are keyed by name prefix.
type CollisionsConfig struct {
	Profiles map[string]string `yaml:"profiles"`
	Zones    map[string]string `yaml:"zones"`
}

// Table resolves the configured names into a prefix table
func (c *CollisionsConfig) Table() (*collision.Table, error) {
	profiles := make(map[string]collision.Profile, len(c.Profiles))
	for prefix, name := range c.Profiles {
		p, err := collision.ParseProfile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to map profile prefix %q: %w", prefix, err)
		}
		profiles[prefix] = p
	}

	zones := make(map[string]collision.Zone, len(c.Zones))
	for prefix, name := range c.Zones {
		z, err := collision.ParseZone(name)
		if err != nil {
			return nil, fmt.Errorf("failed to map zone prefix %q: %w", prefix, err)
		}
		zones[prefix] = z
	}
	return collision.NewTable(profiles, zones), nil
}
