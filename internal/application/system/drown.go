package system

import (
	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

// DrownPhase is the watchdog phase
type DrownPhase int

const (
	// WatchingStart waits for the entity to sink below the start height
	WatchingStart DrownPhase = iota
	// WatchingEnd waits for the dead entity to sink below the end height
	WatchingEnd
)

func (p DrownPhase) String() string {
	if p == WatchingEnd {
		return "WatchingEnd"
	}
	return "WatchingStart"
}

// Drownable kills an entity that falls below the stage and respawns it
// once it has sunk deep enough.
type Drownable struct {
	handler *state.Handler
	start   float64
	end     float64
	phase   DrownPhase
}

// NewDrownable creates a watchdog over handler
func NewDrownable(handler *state.Handler, cfg config.DrownConfig) *Drownable {
	return &Drownable{
		handler: handler,
		start:   cfg.Start,
		end:     cfg.End,
	}
}

// Phase returns the current watchdog phase
func (d *Drownable) Phase() DrownPhase {
	return d.phase
}

// Update checks the entity height once per frame
func (d *Drownable) Update() error {
	y := d.handler.Model().Transform.Y
	switch d.phase {
	case WatchingStart:
		if y >= d.start {
			return nil
		}
		if !d.handler.Is(state.Die) {
			if err := d.handler.ChangeState(state.Die); err != nil {
				return err
			}
		}
		d.phase = WatchingEnd
	case WatchingEnd:
		if y < d.end {
			if err := d.handler.ChangeState(state.Idle); err != nil {
				return err
			}
			d.phase = WatchingStart
		}
	}
	return nil
}

// Recycle re-arms the watchdog
func (d *Drownable) Recycle() {
	d.phase = WatchingStart
}
