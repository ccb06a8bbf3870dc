package ecs

import (
	"github.com/younwookim/lionheart/internal/application/state"
)

// Actor describes what an entity was spawned as
type Actor struct {
	Kind    string
	Initial state.ID
	Color   string // colornames name for the debug renderer
	Width   float64
	Height  float64
}
