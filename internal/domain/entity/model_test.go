package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lionheart/internal/domain/collision"
)

func createTestStage() *Stage {
	tiles := [][]Tile{
		{{Profile: collision.ProfileGround, Name: "ground"}, {Profile: collision.ProfileGround, Name: "ground"}, {}},
		{{}, {Profile: collision.ProfileSlopeLeft, Name: "slope_left"}, {}},
	}
	return &Stage{
		Width:    3,
		Height:   2,
		TileSize: 16,
		Tiles:    tiles,
		SpawnX:   8,
		SpawnY:   16,
	}
}

func TestStage_GetTile(t *testing.T) {
	stage := createTestStage()

	tests := []struct {
		name   string
		tx, ty int
		want   collision.Profile
	}{
		{"bottom left", 0, 0, collision.ProfileGround},
		{"bottom right empty", 2, 0, collision.ProfileNone},
		{"slope", 1, 1, collision.ProfileSlopeLeft},
		{"left of stage", -1, 0, collision.ProfileNone},
		{"above stage", 0, 2, collision.ProfileNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stage.GetTile(tt.tx, tt.ty).Profile)
			assert.Equal(t, tt.want != collision.ProfileNone, stage.HasTile(tt.tx, tt.ty))
		})
	}
}

func TestStage_TileCoords(t *testing.T) {
	stage := createTestStage()

	tx, ty := stage.TileCoords(17, 15.9)
	assert.Equal(t, 1, tx)
	assert.Equal(t, 0, ty)

	tx, ty = stage.TileCoords(-0.5, -0.5)
	assert.Equal(t, -1, tx)
	assert.Equal(t, -1, ty)

	assert.Equal(t, "slope_left", stage.GetTileAt(20, 20).Name)
}

func createTestModelConfig() ModelConfig {
	return ModelConfig{
		ID:               7,
		Kind:             "player",
		X:                24,
		Y:                16,
		Mirror:           MirrorHorizontal,
		Animator:         NewAnimationPlayer(),
		Input:            NoInput{},
		Map:              createTestStage(),
		Gravity:          0.25,
		GravityMax:       6,
		MovementVelocity: 0.3,
		JumpDeceleration: 0.15,
		HasGravity:       true,
	}
}

func TestNewModel(t *testing.T) {
	model, err := NewModel(createTestModelConfig())
	require.NoError(t, err)

	assert.Equal(t, EntityID(7), model.ID)
	assert.Equal(t, 24.0, model.Transform.X)
	assert.Equal(t, 16.0, model.Transform.OldY)
	assert.Equal(t, 0.3, model.Movement.Velocity())
	assert.Equal(t, 0.15, model.Jump.Velocity())
	assert.NotNil(t, model.Collisions)
}

func TestNewModel_MissingCapability(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ModelConfig)
	}{
		{"no animator", func(c *ModelConfig) { c.Animator = nil }},
		{"no input", func(c *ModelConfig) { c.Input = nil }},
		{"no map", func(c *ModelConfig) { c.Map = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestModelConfig()
			tt.modify(&cfg)
			_, err := NewModel(cfg)
			assert.ErrorIs(t, err, ErrMissingCapability)
		})
	}
}

func TestModel_Apply(t *testing.T) {
	model, err := NewModel(createTestModelConfig())
	require.NoError(t, err)

	model.Apply(collision.Result{Axis: collision.AxisY, X: 99, Y: 32})
	assert.Equal(t, 24.0, model.Transform.X, "only the result axis moves")
	assert.Equal(t, 32.0, model.Transform.Y)

	model.Apply(collision.Result{Axis: collision.AxisX, X: 40, Y: 0})
	assert.Equal(t, 40.0, model.Transform.X)
	assert.Equal(t, 32.0, model.Transform.Y)
}

func TestModel_Recycle(t *testing.T) {
	model, err := NewModel(createTestModelConfig())
	require.NoError(t, err)
	model.Collisions.AddTileListener(collision.TileListenerFunc(func(collision.Result, collision.Category) {}))

	model.Transform.Teleport(100, 100)
	model.Mirror = MirrorNone
	model.Movement.SetDirection(1, 0)
	model.Body.Update(1)

	model.Recycle()

	assert.Equal(t, 24.0, model.Transform.X)
	assert.Equal(t, 16.0, model.Transform.Y)
	assert.Equal(t, MirrorHorizontal, model.Mirror)
	assert.Zero(t, model.Movement.DirectionHorizontal())
	assert.Zero(t, model.Body.Vertical())
	assert.Zero(t, model.Collisions.TileListeners())
}

func TestModel_SetInput(t *testing.T) {
	model, err := NewModel(createTestModelConfig())
	require.NoError(t, err)

	model.SetInput(nil)
	assert.Equal(t, NoInput{}, model.Input)
}
