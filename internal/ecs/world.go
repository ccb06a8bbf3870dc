package ecs

import (
	"slices"

	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/application/system"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID = entity.EntityID

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Actor   map[EntityID]Actor
	Model   map[EntityID]*entity.Model
	Handler map[EntityID]*state.Handler
	Drown   map[EntityID]*system.Drownable

	// Tags
	IsPlayer   map[EntityID]struct{}
	IsEnemy    map[EntityID]struct{}
	IsPlatform map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:     1, // 0 is "nil"
		Actor:      make(map[EntityID]Actor),
		Model:      make(map[EntityID]*entity.Model),
		Handler:    make(map[EntityID]*state.Handler),
		Drown:      make(map[EntityID]*system.Drownable),
		IsPlayer:   make(map[EntityID]struct{}),
		IsEnemy:    make(map[EntityID]struct{}),
		IsPlatform: make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity stops the entity's state machine and removes all its
// components
func (w *World) DestroyEntity(id EntityID) {
	if h, ok := w.Handler[id]; ok {
		h.Stop()
	}
	delete(w.Actor, id)
	delete(w.Model, id)
	delete(w.Handler, id)
	delete(w.Drown, id)
	delete(w.IsPlayer, id)
	delete(w.IsEnemy, id)
	delete(w.IsPlatform, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists checks if an entity has a Model component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Model[id]
	return ok
}

// RecycleEntity returns a live entity to its spawn condition and restarts
// its state machine in the initial state
func (w *World) RecycleEntity(id EntityID) error {
	h, ok := w.Handler[id]
	if !ok {
		return nil
	}
	h.Stop()
	w.Model[id].Recycle()
	if d, ok := w.Drown[id]; ok {
		d.Recycle()
	}
	return h.Restart(w.Actor[id].Initial)
}

// IDs returns the live entity ids in spawn order
func (w *World) IDs() []EntityID {
	ids := make([]EntityID, 0, len(w.Model))
	for id := range w.Model {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Models returns the live models in spawn order
func (w *World) Models() []*entity.Model {
	ids := w.IDs()
	models := make([]*entity.Model, len(ids))
	for i, id := range ids {
		models[i] = w.Model[id]
	}
	return models
}

// Player returns the player's model and handler
func (w *World) Player() (*entity.Model, *state.Handler, bool) {
	m, ok := w.Model[w.PlayerID]
	if !ok {
		return nil, nil, false
	}
	return m, w.Handler[w.PlayerID], true
}

// CountEnemies returns the number of active enemies
func (w *World) CountEnemies() int {
	return len(w.IsEnemy)
}
