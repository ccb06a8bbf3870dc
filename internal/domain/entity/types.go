package entity

import (
	"math"

	"github.com/younwookim/lionheart/internal/domain/collision"
)

// EntityID is a unique identifier for an entity
type EntityID uint32

// Tile represents a single tile in the stage
type Tile struct {
	Profile collision.Profile
	Name    string // profile name as written in the stage data
}

// Exists reports whether the cell holds a tile
func (t Tile) Exists() bool {
	return t.Profile != collision.ProfileNone
}

// TileMap answers the tile queries the locomotion states need
type TileMap interface {
	HasTile(tx, ty int) bool
}

// Stage represents the current stage's tile data.
// Tiles[0] is the bottom row; world Y grows upward.
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   float64
	SpawnY   float64
}

// GetTile returns the tile at the given tile coordinates.
// Cells outside the stage are empty.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{}
	}
	return s.Tiles[ty][tx]
}

// HasTile reports whether a tile exists at the given tile coordinates
func (s *Stage) HasTile(tx, ty int) bool {
	return s.GetTile(tx, ty).Exists()
}

// TileCoords returns the tile coordinates containing the world point
func (s *Stage) TileCoords(x, y float64) (tx, ty int) {
	size := float64(s.TileSize)
	return int(math.Floor(x / size)), int(math.Floor(y / size))
}

// GetTileAt returns the tile containing the world point
func (s *Stage) GetTileAt(x, y float64) Tile {
	return s.GetTile(s.TileCoords(x, y))
}
