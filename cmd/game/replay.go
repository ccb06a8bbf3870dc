package main

import (
	"github.com/younwookim/lionheart/internal/application/replay"
	"github.com/younwookim/lionheart/internal/application/scene/playing"
)

// playingOptions builds the scene options for stage, driven by the replay
// file at replayPath when it is set. A replay carries its own stage and
// player kind, which take precedence.
func playingOptions(stage, replayPath string) (playing.Options, error) {
	opts := playing.Options{Stage: stage}
	if replayPath == "" {
		return opts, nil
	}

	data, err := replay.LoadReplay(replayPath)
	if err != nil {
		return opts, err
	}
	if data.Stage != "" {
		opts.Stage = data.Stage
	}
	opts.Player = data.Player
	opts.Replay = data
	return opts, nil
}
