package ecs

import (
	"github.com/younwookim/lionheart/internal/application/system"
)

// LocomotionSystem steps every actor through one frame:
// state update, physics and animation per actor, then contacts between
// actors, then the transition checks, then the drown watchdogs.
type LocomotionSystem struct {
	Physics  *system.PhysicsSystem
	Contacts *system.ContactSystem

	// Floor removes actors without a drown watchdog once they sink below it
	Floor float64
}

// NewLocomotionSystem creates a locomotion system
func NewLocomotionSystem(physics *system.PhysicsSystem, contacts *system.ContactSystem, floor float64) *LocomotionSystem {
	return &LocomotionSystem{
		Physics:  physics,
		Contacts: contacts,
		Floor:    floor,
	}
}

// Update advances the world by one frame scaled by extrp
func (s *LocomotionSystem) Update(w *World, extrp float64) error {
	ids := w.IDs()
	for _, id := range ids {
		model := w.Model[id]
		model.Transform.Snapshot()
		w.Handler[id].Update(extrp)
		s.Physics.Update(model, extrp)
		model.Animator.Update(extrp)
	}

	s.Contacts.Update(w.Models())

	for _, id := range ids {
		w.Handler[id].PostUpdate()
	}

	for _, id := range ids {
		if d, ok := w.Drown[id]; ok {
			if err := d.Update(); err != nil {
				return err
			}
		}
	}

	RemoveFallen(w, s.Floor)
	return nil
}

// RemoveFallen destroys actors without a drown watchdog below floor and
// returns how many were removed
func RemoveFallen(w *World, floor float64) int {
	removed := 0
	for _, id := range w.IDs() {
		if _, ok := w.Drown[id]; ok {
			continue
		}
		if w.Model[id].Transform.Y < floor {
			w.DestroyEntity(id)
			removed++
		}
	}
	return removed
}
