package state

import (
	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// BorderDetection tells from two leg probes whether the entity stands at a
// ledge. Flags only accumulate; callers reset them where they need to.
type BorderDetection struct {
	tiles          entity.TileMap
	legLeftGround  bool
	legRightGround bool
}

// NewBorderDetection creates a detection reading adjacent tiles from tiles
func NewBorderDetection(tiles entity.TileMap) *BorderDetection {
	return &BorderDetection{tiles: tiles}
}

// Reset clears both legs
func (d *BorderDetection) Reset() {
	d.legLeftGround = false
	d.legRightGround = false
}

// Is reports whether the entity is at a border on either side
func (d *BorderDetection) Is() bool {
	return d.IsLeft() || d.IsRight()
}

// IsLeft reports whether the left leg hangs over the void
func (d *BorderDetection) IsLeft() bool {
	return !d.legLeftGround && d.legRightGround
}

// IsRight reports whether the right leg hangs over the void
func (d *BorderDetection) IsRight() bool {
	return !d.legRightGround && d.legLeftGround
}

// Grounded reports whether any leg touched ground
func (d *BorderDetection) Grounded() bool {
	return d.legLeftGround || d.legRightGround
}

// NotifyTileCollided marks legs from Y-axis tile collisions.
// A leg on a steep tile only counts when the tile beyond it toward the
// other leg is absent; otherwise the leg is resting on the steep edge of a
// wider slope and would hide the ledge.
func (d *BorderDetection) NotifyTileCollided(result collision.Result, category collision.Category) {
	if category.Axis != collision.AxisY {
		return
	}
	switch category.Zone {
	case collision.ZoneLegCenter:
		d.legLeftGround = true
		d.legRightGround = true
	case collision.ZoneLegLeft:
		if result.Profile.IsGround() ||
			result.Profile.IsSteep() && !d.tiles.HasTile(result.TileX+1, result.TileY) {
			d.legLeftGround = true
		}
	case collision.ZoneLegRight:
		if result.Profile.IsGround() ||
			result.Profile.IsSteep() && !d.tiles.HasTile(result.TileX-1, result.TileY) {
			d.legRightGround = true
		}
	}
}

// NotifyCollided marks legs resting on glue entities
func (d *BorderDetection) NotifyCollided(contact collision.Contact) {
	if !contact.Other.Has(collision.CapGlue) {
		return
	}
	switch contact.With.Zone {
	case collision.ZoneLegCenter:
		d.legLeftGround = true
		d.legRightGround = true
	case collision.ZoneLegLeft:
		d.legLeftGround = true
	case collision.ZoneLegRight:
		d.legRightGround = true
	}
}
