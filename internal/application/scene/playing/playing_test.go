package playing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lionheart/internal/application/replay"
	"github.com/younwookim/lionheart/internal/application/scene"
	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/application/system"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

func createTestLoader() *config.Loader {
	return config.NewLoader("../../../../cmd/game/configs")
}

func createTestPlaying(t *testing.T, opts Options) *Playing {
	t.Helper()
	if opts.Stage == "" {
		opts.Stage = "demo"
	}
	p, err := New(createTestLoader(), opts)
	require.NoError(t, err)
	return p
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
	var _ scene.Reloadable = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := createTestPlaying(t, Options{})

	assert.Equal(t, 320, p.screenW)
	assert.Equal(t, 240, p.screenH)
	assert.Len(t, p.World().IDs(), 3)
	assert.Nil(t, p.recorder)
	assert.Nil(t, p.replayer)

	model, _, ok := p.World().Player()
	require.True(t, ok)
	assert.Same(t, &p.input, model.Input, "the player reads the scene input")
}

func TestNewPlaying_UnknownStage(t *testing.T) {
	_, err := New(createTestLoader(), Options{Stage: "nonexistent"})
	assert.Error(t, err)
}

func TestNewPlaying_UnknownPlayerKind(t *testing.T) {
	_, err := New(createTestLoader(), Options{Stage: "demo", Player: "dragon"})
	assert.Error(t, err)
}

func TestPlaying_ReplayDrivesPlayer(t *testing.T) {
	data := replay.CreateTestReplayData("demo", 30, system.InputState{Right: true})
	p := createTestPlaying(t, Options{Replay: &data})

	for i := 0; i < 30; i++ {
		require.NoError(t, p.step(1))
	}

	model, handler, ok := p.World().Player()
	require.True(t, ok)
	assert.True(t, handler.Is(state.Walk))
	assert.Greater(t, model.Transform.X, 40.0)
	assert.Equal(t, 30, p.Frame())

	require.NoError(t, p.step(1))
	assert.True(t, p.finished)
	assert.Equal(t, 30, p.Frame(), "nothing moves after the replay ends")
}

func TestPlaying_Update_ReturnsNil(t *testing.T) {
	data := replay.CreateTestReplayData("demo", 5, system.InputState{})
	p := createTestPlaying(t, Options{Replay: &data})

	next, err := p.Update(1)
	assert.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, 1, p.Frame())
}

func TestPlaying_Paused(t *testing.T) {
	data := replay.CreateTestReplayData("demo", 5, system.InputState{})
	p := createTestPlaying(t, Options{Replay: &data})
	p.paused = true

	_, err := p.Update(1)
	require.NoError(t, err)
	assert.Zero(t, p.Frame())
}

func TestPlaying_WithRecorder(t *testing.T) {
	data := replay.CreateTestReplayData("demo", 3, system.InputState{Up: true})
	path := t.TempDir() + "/replay.json"
	p := createTestPlaying(t, Options{Replay: &data, RecordPath: path})
	require.NotNil(t, p.recorder)

	for i := 0; i < 3; i++ {
		require.NoError(t, p.step(1))
	}
	assert.Equal(t, 3, p.recorder.FrameCount())

	p.OnExit()
	assert.False(t, p.recorder.IsRecording())

	saved, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", saved.Stage)
	assert.Len(t, saved.Frames, 3)
	assert.True(t, saved.Frames[0].U)
}

func TestPlaying_Reload(t *testing.T) {
	data := replay.CreateTestReplayData("demo", 10, system.InputState{Right: true})
	p := createTestPlaying(t, Options{Replay: &data})
	for i := 0; i < 10; i++ {
		require.NoError(t, p.step(1))
	}
	before := p.World()

	require.NoError(t, p.Reload())

	assert.NotSame(t, before, p.World())
	model, handler, ok := p.World().Player()
	require.True(t, ok)
	assert.Equal(t, 40.0, model.Transform.X, "actors respawn")
	assert.True(t, handler.Is(state.Idle))
	assert.Zero(t, p.Frame())
	assert.Zero(t, p.replayer.CurrentFrame(), "the replay starts over")

	for i := 0; i < 10; i++ {
		require.NoError(t, p.step(1))
	}
	assert.False(t, p.finished, "the whole replay plays again")
}

func TestPlaying_ReloadRestartsRecording(t *testing.T) {
	data := replay.CreateTestReplayData("demo", 20, system.InputState{})
	path := t.TempDir() + "/replay.json"
	p := createTestPlaying(t, Options{Replay: &data, RecordPath: path})
	for i := 0; i < 5; i++ {
		require.NoError(t, p.step(1))
	}
	require.Equal(t, 5, p.recorder.FrameCount())

	require.NoError(t, p.Reload())
	assert.Zero(t, p.recorder.FrameCount())
	assert.True(t, p.recorder.IsRecording())

	require.NoError(t, p.step(1))
	assert.Equal(t, 1, p.recorder.FrameCount())
}

func TestPlaying_Trace(t *testing.T) {
	p := createTestPlaying(t, Options{Trace: true})
	_, handler, ok := p.World().Player()
	require.True(t, ok)

	require.NoError(t, handler.ChangeState(state.Crouch))
	assert.True(t, handler.Is(state.Crouch))
}

func TestPlaying_Camera(t *testing.T) {
	p := createTestPlaying(t, Options{})

	camX, camY := p.camera()
	assert.Zero(t, camX, "clamped to the stage left edge")
	assert.Zero(t, camY)

	model, _, _ := p.World().Player()
	model.Transform.Teleport(700, 16)
	camX, _ = p.camera()
	assert.Equal(t, 768.0-320.0, camX, "clamped to the stage right edge")

	x, y := p.toScreen(0, 0, 10, 16)
	assert.Equal(t, float32(10), x)
	assert.Equal(t, float32(224), y)
}

func TestPlaying_Display(t *testing.T) {
	p := createTestPlaying(t, Options{})

	display := p.Display()
	assert.Equal(t, 2, display.Scale)
	assert.Equal(t, 60, display.Framerate)
}
