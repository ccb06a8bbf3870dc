package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/lionheart/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
	next  int // index of the first recorded frame not yet played
	prev  system.InputState
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads replay data from r
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// GetInput returns the input for the current frame and advances.
// It reports false once every recorded frame was played.
// Frames missing from the data play with no button held.
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= r.data.FrameTotal() {
		return system.InputState{}, false
	}

	frames := r.data.Frames
	for r.next < len(frames) && frames[r.next].F < r.frame {
		r.next++
	}
	var held system.InputState
	if r.next < len(frames) && frames[r.next].F == r.frame {
		fi := frames[r.next]
		held = system.InputState{
			Left:  fi.L,
			Right: fi.R,
			Up:    fi.U,
			Down:  fi.D,
			Fire:  fi.X,
		}
		r.next++
	}
	r.frame++

	input := system.NextInput(r.prev, held)
	r.prev = input
	return input, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return r.data.FrameTotal()
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.next = 0
	r.prev = system.InputState{}
}

// CreateTestReplayData creates replay data holding input for frames frames
func CreateTestReplayData(stage string, frames int, input system.InputState) ReplayData {
	data := ReplayData{
		Version:   version,
		Stage:     stage,
		StartTime: time.Now().Format(time.RFC3339),
		Length:    frames,
		Frames:    make([]FrameInput, 0, frames),
	}

	if !held(input) {
		return data
	}
	for i := 0; i < frames; i++ {
		data.Frames = append(data.Frames, frameInput(i, input))
	}

	return data
}

func held(input system.InputState) bool {
	return input.Left || input.Right || input.Up || input.Down || input.Fire
}

func frameInput(frame int, input system.InputState) FrameInput {
	return FrameInput{
		F: frame,
		L: input.Left,
		R: input.Right,
		U: input.Up,
		D: input.Down,
		X: input.Fire,
	}
}
