package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lionheart/internal/application/replay"
	"github.com/younwookim/lionheart/internal/application/system"
)

const configsDir = "../game/configs"

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out
	require.NoError(t, cmd.Run(context.Background(), append([]string{"locosim"}, args...)))
	return out.String()
}

func TestStates(t *testing.T) {
	out := run(t, "states")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 16)
	assert.Contains(t, out, "Fall")
	assert.Regexp(t, `(?m)^Die\s+->\s*$`, out)
	assert.Regexp(t, `(?m)^Idle\s+-> Walk, Crouch, Jump, AttackPrepare, Fall, Border$`, out)
}

func TestRun_Idle(t *testing.T) {
	out := run(t, "run", "--configs", configsDir, "--frames", "30")

	assert.Contains(t, out, "30 frames\n")
	assert.Contains(t, out, "player#1 Idle x=40.00 y=16.00\n")
	assert.Contains(t, out, "walker#2 Patrol")
	assert.Contains(t, out, "platform#3 Idle x=280.00 y=40.00\n")
}

func TestRun_Replay(t *testing.T) {
	data := replay.CreateTestReplayData("demo", 20, system.InputState{Right: true})
	rec := replay.NewRecorder(data.Stage, "player")
	for range data.Frames {
		rec.RecordFrame(system.InputState{Right: true})
	}
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	out := run(t, "run", "--configs", configsDir, "--trace", "--transitions", path)

	assert.Contains(t, out, "20 frames\n")
	assert.Contains(t, out, "player#1 Idle -> Walk")
	assert.Contains(t, out, "   20 Walk")
}

func TestRun_UnknownStage(t *testing.T) {
	cmd := newCommand()
	cmd.Writer = &bytes.Buffer{}
	err := cmd.Run(context.Background(), []string{"locosim", "run", "--configs", configsDir, "--stage", "nowhere"})
	assert.Error(t, err)
}
