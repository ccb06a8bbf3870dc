package entity

import (
	"errors"
	"fmt"

	"github.com/younwookim/lionheart/internal/domain/collision"
)

// ErrMissingCapability is returned when an entity is assembled without a
// capability its states rely on
var ErrMissingCapability = errors.New("missing capability")

// ModelConfig describes the capabilities of an entity at spawn time
type ModelConfig struct {
	ID   EntityID
	Kind string
	X, Y float64

	Mirror   Mirror
	Animator Animator
	Input    InputDevice
	Map      TileMap

	Gravity          float64
	GravityMax       float64
	MovementVelocity float64
	JumpDeceleration float64

	Categories []collision.Category
	Boxes      []collision.Box
	Exposes    collision.Capability // capabilities other entities see

	HasGravity bool
	Patrol     bool
}

// Model is the per-entity context shared by the locomotion states.
//
// Only the current state mutates it; ownership passes from one state to
// the next at the exit/enter boundary.
type Model struct {
	ID   EntityID
	Kind string

	Movement  *Force
	Jump      *Force
	Body      *Body
	Transform Transform
	Mirror    Mirror
	Animator  Animator
	Input     InputDevice
	Map       TileMap

	// Collisions routes tile and contact events to the current state
	Collisions *collision.Router
	Categories []collision.Category
	Boxes      []collision.Box
	Exposes    collision.Capability

	HasGravity bool
	Patrol     bool

	spawnX, spawnY float64
	spawnMirror    Mirror
}

// NewModel assembles a model, failing when a required capability is absent
func NewModel(cfg ModelConfig) (*Model, error) {
	switch {
	case cfg.Animator == nil:
		return nil, fmt.Errorf("%w: %s has no animator", ErrMissingCapability, cfg.Kind)
	case cfg.Input == nil:
		return nil, fmt.Errorf("%w: %s has no input device", ErrMissingCapability, cfg.Kind)
	case cfg.Map == nil:
		return nil, fmt.Errorf("%w: %s has no tile map", ErrMissingCapability, cfg.Kind)
	}

	m := &Model{
		ID:          cfg.ID,
		Kind:        cfg.Kind,
		Movement:    NewForce(cfg.MovementVelocity),
		Jump:        NewForce(cfg.JumpDeceleration),
		Body:        NewBody(cfg.Gravity, cfg.GravityMax),
		Mirror:      cfg.Mirror,
		Animator:    cfg.Animator,
		Input:       cfg.Input,
		Map:         cfg.Map,
		Collisions:  collision.NewRouter(),
		Categories:  cfg.Categories,
		Boxes:       cfg.Boxes,
		Exposes:     cfg.Exposes,
		HasGravity:  cfg.HasGravity,
		Patrol:      cfg.Patrol,
		spawnX:      cfg.X,
		spawnY:      cfg.Y,
		spawnMirror: cfg.Mirror,
	}
	m.Transform.Teleport(cfg.X, cfg.Y)
	return m, nil
}

// Apply moves the entity to the position resolved by a tile collision,
// on the result's axis only
func (m *Model) Apply(result collision.Result) {
	switch result.Axis {
	case collision.AxisX:
		m.Transform.X = result.X
	case collision.AxisY:
		m.Transform.Y = result.Y
	}
}

// SetInput replaces the active input device
func (m *Model) SetInput(input InputDevice) {
	if input == nil {
		input = NoInput{}
	}
	m.Input = input
}

// Recycle returns the model to its spawn condition for reuse from a pool
func (m *Model) Recycle() {
	m.Movement.Reset()
	m.Jump.Reset()
	m.Body.ResetGravity()
	m.Collisions.Clear()
	m.Mirror = m.spawnMirror
	m.Transform.Teleport(m.spawnX, m.spawnY)
}
