package replay

// FrameInput records the held buttons of a single frame.
// Press edges are not stored; playback derives them from the previous frame.
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	X bool `json:"x,omitempty"` // Fire
}

// ReplayData contains all data needed to replay a session.
// Frames only lists frames with at least one button held, ordered by F.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	Player    string       `json:"player,omitempty"` // entity kind driven by the input
	StartTime string       `json:"startTime"`
	Length    int          `json:"length,omitempty"` // recorded frames, held or not
	Frames    []FrameInput `json:"frames"`
}

// FrameTotal returns the number of frames the replay spans
func (d ReplayData) FrameTotal() int {
	total := d.Length
	if n := len(d.Frames); n > 0 && d.Frames[n-1].F+1 > total {
		total = d.Frames[n-1].F + 1
	}
	return total
}

const version = "2.0"
