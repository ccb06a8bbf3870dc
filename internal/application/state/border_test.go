package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

func legHit(zone collision.Zone, profile collision.Profile, tx, ty int) (collision.Result, collision.Category) {
	return collision.Result{Axis: collision.AxisY, Profile: profile, TileX: tx, TileY: ty},
		collision.Category{Name: zone.String(), Axis: collision.AxisY, Zone: zone}
}

func TestBorderDetection_Exclusive(t *testing.T) {
	tests := []struct {
		name          string
		left, right   bool
		isLeft        bool
		isRight       bool
		expectedOnAny bool
	}{
		{"both grounded", true, true, false, false, false},
		{"left hangs", false, true, true, false, true},
		{"right hangs", true, false, false, true, true},
		{"airborne", false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewBorderDetection(createTestStage())
			if tt.left {
				d.NotifyTileCollided(legHit(collision.ZoneLegLeft, collision.ProfileGround, 1, 0))
			}
			if tt.right {
				d.NotifyTileCollided(legHit(collision.ZoneLegRight, collision.ProfileGround, 2, 0))
			}

			assert.Equal(t, tt.isLeft, d.IsLeft())
			assert.Equal(t, tt.isRight, d.IsRight())
			assert.Equal(t, tt.expectedOnAny, d.Is())
			assert.False(t, d.IsLeft() && d.IsRight())
		})
	}
}

func TestBorderDetection_CenterMarksBoth(t *testing.T) {
	d := NewBorderDetection(createTestStage())
	d.NotifyTileCollided(legHit(collision.ZoneLegCenter, collision.ProfileSlope, 1, 0))

	assert.True(t, d.Grounded())
	assert.False(t, d.Is())
}

func TestBorderDetection_SteepEdge(t *testing.T) {
	tiles := &entity.Stage{
		Width:    4,
		Height:   1,
		TileSize: 16,
		Tiles: [][]entity.Tile{{
			{},
			{Profile: collision.ProfileSteepRight},
			{Profile: collision.ProfileSteepRight},
			{},
		}},
	}

	t.Run("left leg with a tile beyond", func(t *testing.T) {
		d := NewBorderDetection(tiles)
		d.NotifyTileCollided(legHit(collision.ZoneLegLeft, collision.ProfileSteepRight, 1, 0))
		assert.False(t, d.Grounded())
	})

	t.Run("left leg on the last steep tile", func(t *testing.T) {
		d := NewBorderDetection(tiles)
		d.NotifyTileCollided(legHit(collision.ZoneLegLeft, collision.ProfileSteepRight, 2, 0))
		assert.True(t, d.Grounded())
	})

	t.Run("right leg on the first steep tile", func(t *testing.T) {
		d := NewBorderDetection(tiles)
		d.NotifyTileCollided(legHit(collision.ZoneLegRight, collision.ProfileSteepRight, 1, 0))
		assert.True(t, d.Grounded())
	})

	t.Run("slopes never count", func(t *testing.T) {
		d := NewBorderDetection(tiles)
		d.NotifyTileCollided(legHit(collision.ZoneLegRight, collision.ProfileSlopeLeft, 1, 0))
		assert.False(t, d.Grounded())
	})
}

func TestBorderDetection_IgnoresXAxis(t *testing.T) {
	d := NewBorderDetection(createTestStage())
	result, category := legHit(collision.ZoneLegLeft, collision.ProfileGround, 1, 0)
	category.Axis = collision.AxisX
	d.NotifyTileCollided(result, category)

	assert.False(t, d.Grounded())
}

func TestBorderDetection_Glue(t *testing.T) {
	d := NewBorderDetection(createTestStage())
	d.NotifyCollided(collision.Contact{Other: collision.CapHurtable, With: collision.Box{Zone: collision.ZoneLegLeft}})
	assert.False(t, d.Grounded())

	d.NotifyCollided(collision.Contact{Other: collision.CapGlue, With: collision.Box{Zone: collision.ZoneLegRight}})
	assert.True(t, d.IsLeft())

	d.Reset()
	assert.False(t, d.Grounded())
}

func TestBorderState_Ledge(t *testing.T) {
	in := &testInput{}
	h := createTestHandler(t, in, Idle)
	leftHangs := func() (collision.Result, collision.Category) {
		return legHit(collision.ZoneLegRight, collision.ProfileGround, 1, 0)
	}

	step(h, leftHangs)
	assert.True(t, h.Is(Border))

	step(h, leftHangs)
	assert.True(t, h.Is(Border))

	in.downOnce, in.v = true, -1
	step(h, leftHangs)
	assert.True(t, h.Is(Crouch))
}
