package config

// EntitiesConfig is the root config for entities.yaml
type EntitiesConfig struct {
	Entities map[string]EntityConfig `yaml:"entities"`
}

// EntityConfig describes one kind of actor
type EntityConfig struct {
	InitialState string                     `yaml:"initial_state"`
	Capabilities CapabilitiesConfig         `yaml:"capabilities"`
	Size         SizeConfig                 `yaml:"size"`
	Color        string                     `yaml:"color"` // colornames name used by the debug renderer
	Probes       []ProbeConfig              `yaml:"probes"`
	Boxes        []BoxConfig                `yaml:"boxes"`
	Animations   map[string]AnimationConfig `yaml:"animations"` // keyed by state name
}

type CapabilitiesConfig struct {
	Gravity  bool `yaml:"gravity"`
	Glue     bool `yaml:"glue"`
	Patrol   bool `yaml:"patrol"`
	Hurtable bool `yaml:"hurtable"`
	Player   bool `yaml:"player"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ProbeConfig is a tile collision probe relative to the entity origin
type ProbeConfig struct {
	Name    string  `yaml:"name"`
	Axis    string  `yaml:"axis"` // "x" or "y"
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// BoxConfig is an entity contact box relative to the entity origin
type BoxConfig struct {
	Name    string  `yaml:"name"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

type AnimationConfig struct {
	First  int     `yaml:"first"`
	Last   int     `yaml:"last"`
	Speed  float64 `yaml:"speed"`
	Repeat bool    `yaml:"repeat"`
}
