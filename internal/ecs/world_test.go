package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/application/system"
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Model)
	assert.NotNil(t, w.Handler)
	assert.NotNil(t, w.IsPlayer)
}

func TestNewEntity(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

type testGame struct {
	world   *World
	spawner *Spawner
	system  *LocomotionSystem
}

func createTestGame(t testing.TB) *testGame {
	t.Helper()
	loader := config.NewLoader("../../cmd/game/configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	table, err := cfg.Collisions.Table()
	require.NoError(t, err)
	stageCfg, err := loader.LoadStage("demo")
	require.NoError(t, err)
	stage, err := system.LoadStage(stageCfg, table)
	require.NoError(t, err)

	w := NewWorld()
	spawner := NewSpawner(cfg, table, stage)
	require.NoError(t, spawner.SpawnStage(w, stageCfg, "player", nil))

	return &testGame{
		world:   w,
		spawner: spawner,
		system: NewLocomotionSystem(
			system.NewPhysicsSystem(cfg.Physics, stage),
			system.NewContactSystem(),
			cfg.Physics.Drown.End,
		),
	}
}

func (g *testGame) run(t *testing.T, frames int) {
	t.Helper()
	for i := 0; i < frames; i++ {
		require.NoError(t, g.system.Update(g.world, 1))
	}
}

func (g *testGame) find(kind string) EntityID {
	for _, id := range g.world.IDs() {
		if g.world.Actor[id].Kind == kind {
			return id
		}
	}
	return 0
}

func TestSpawner_SpawnStage(t *testing.T) {
	g := createTestGame(t)
	w := g.world

	assert.Len(t, w.IDs(), 3)
	assert.Equal(t, EntityID(1), w.PlayerID)
	assert.Equal(t, 1, w.CountEnemies())
	assert.Len(t, w.IsPlatform, 1)
	assert.Len(t, w.Drown, 1, "only the player drowns")

	model, handler, ok := w.Player()
	require.True(t, ok)
	assert.Equal(t, 40.0, model.Transform.X)
	assert.True(t, handler.Is(state.Idle))
	assert.Len(t, model.Categories, 5)

	walker := g.find("walker")
	require.NotZero(t, walker)
	assert.True(t, w.Handler[walker].Is(state.Patrol))
	assert.Equal(t, -1.0, w.Model[walker].Mirror.Sign())
	assert.True(t, w.Model[walker].Patrol)
}

func TestSpawner_UnknownKind(t *testing.T) {
	g := createTestGame(t)

	_, err := g.spawner.Spawn(g.world, "dragon", 0, 0, false, nil)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestAnimations_Invalid(t *testing.T) {
	_, err := animations("player", map[string]config.AnimationConfig{
		"Walk": {First: 4, Last: 3, Speed: 1, Repeat: true},
	})
	assert.ErrorIs(t, err, entity.ErrInvalidAnimation)

	_, err = animations("player", map[string]config.AnimationConfig{
		"Walk": {First: 0, Last: 3, Speed: -0.2},
	})
	assert.ErrorIs(t, err, entity.ErrInvalidAnimation)

	anims, err := animations("player", map[string]config.AnimationConfig{
		"Walk": {First: 4, Last: 11, Speed: 0.2, Repeat: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 11, anims[state.Walk].Last)
}

func TestLocomotionSystem_Update(t *testing.T) {
	g := createTestGame(t)
	walker := g.find("walker")
	platform := g.find("platform")

	g.run(t, 60)

	model, handler, ok := g.world.Player()
	require.True(t, ok)
	assert.True(t, handler.Is(state.Idle))
	assert.Equal(t, 16.0, model.Transform.Y)
	assert.Equal(t, 40.0, model.Transform.X)

	require.True(t, g.world.Exists(walker))
	assert.Less(t, g.world.Model[walker].Transform.X, 420.0)
	assert.Equal(t, 16.0, g.world.Model[walker].Transform.Y)

	assert.Equal(t, 40.0, g.world.Model[platform].Transform.Y, "platforms ignore gravity")
}

func TestLocomotionSystem_LandsOnPlatform(t *testing.T) {
	g := createTestGame(t)
	model, handler, ok := g.world.Player()
	require.True(t, ok)
	model.Transform.Teleport(280, 70)

	g.run(t, 60)

	assert.True(t, handler.Is(state.Idle), "got %s", handler.Current())
	assert.InDelta(t, 48.0, model.Transform.Y, 0.01)
	assert.Equal(t, 280.0, model.Transform.X)
	assert.Equal(t, 0.0, model.Body.Vertical())
}

func TestRemoveFallen(t *testing.T) {
	g := createTestGame(t)
	walker := g.find("walker")

	g.world.Model[walker].Transform.Teleport(300, -100)
	model, _, _ := g.world.Player()
	model.Transform.Teleport(40, -100)

	removed := RemoveFallen(g.world, -60)

	assert.Equal(t, 1, removed)
	assert.False(t, g.world.Exists(walker))
	assert.Zero(t, g.world.CountEnemies())
	assert.True(t, g.world.Exists(g.world.PlayerID), "the player is left to its watchdog")
}

func TestDestroyEntity(t *testing.T) {
	g := createTestGame(t)
	player := g.world.PlayerID
	model := g.world.Model[player]

	g.world.DestroyEntity(player)

	assert.False(t, g.world.Exists(player))
	assert.Zero(t, g.world.PlayerID)
	assert.Zero(t, model.Collisions.TileListeners(), "the current state released its listeners")
	_, _, ok := g.world.Player()
	assert.False(t, ok)

	next := g.world.NewEntity()
	assert.NotEqual(t, player, next, "entity ids are never recycled")
}

func TestRecycleEntity(t *testing.T) {
	g := createTestGame(t)
	player := g.world.PlayerID
	handler := g.world.Handler[player]

	require.NoError(t, handler.ChangeState(state.Die))
	g.world.Model[player].Transform.Teleport(200, -20)

	require.NoError(t, g.world.RecycleEntity(player))

	assert.True(t, handler.Is(state.Idle))
	assert.Equal(t, 40.0, g.world.Model[player].Transform.X)
	assert.Equal(t, 16.0, g.world.Model[player].Transform.Y)
	assert.Equal(t, system.WatchingStart, g.world.Drown[player].Phase())
}
