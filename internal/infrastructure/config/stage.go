package config

import "errors"

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	Background  string                       `json:"background"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	Actors      []ActorSpawnConfig           `json:"actors"`
}

type StageSizeConfig struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TileSize int `json:"tileSize"`
}

// LayersConfig holds the tile rows, top row first
type LayersConfig struct {
	Collision []string `json:"collision"`
}

// TileMappingConfig names the collision profile of a tile character
type TileMappingConfig struct {
	Profile string `json:"profile"`
}

type ActorSpawnConfig struct {
	Kind       string  `json:"kind"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	FacingLeft bool    `json:"facingLeft"`
}

// ErrInvalidStage is returned when stage data cannot form a tile map
var ErrInvalidStage = errors.New("invalid stage")
