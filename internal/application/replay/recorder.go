package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/lionheart/internal/application/system"
)

// ErrEmptyRecording is returned when saving a recording without frames
var ErrEmptyRecording = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for a session on stage
func NewRecorder(stage, player string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   version,
			Stage:     stage,
			Player:    player,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's held buttons
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	if held(input) {
		r.data.Frames = append(r.data.Frames, frameInput(r.frame, input))
	}
	r.frame++
	r.data.Length = r.frame
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if r.frame == 0 {
		return ErrEmptyRecording
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.Encode(file)
}

// Encode writes the replay data to w as indented JSON
func (r *Recorder) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Restart drops what was recorded and starts over from frame 0
func (r *Recorder) Restart() {
	r.data.Frames = r.data.Frames[:0]
	r.data.Length = 0
	r.data.StartTime = time.Now().Format(time.RFC3339)
	r.frame = 0
	r.recording = true
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return r.frame
}

// Data returns the recorded replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
