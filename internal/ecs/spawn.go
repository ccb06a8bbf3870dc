package ecs

import (
	"errors"
	"fmt"

	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/application/system"
	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

// ErrUnknownKind is returned when spawning a kind missing from entities.yaml
var ErrUnknownKind = errors.New("unknown entity kind")

// Spawner builds actors from the entity definitions
type Spawner struct {
	entities *config.EntitiesConfig
	physics  *config.PhysicsConfig
	table    *collision.Table
	stage    *entity.Stage
	tuning   state.Config
}

// NewSpawner creates a spawner for actors living on stage
func NewSpawner(cfg *config.GameConfig, table *collision.Table, stage *entity.Stage) *Spawner {
	return &Spawner{
		entities: cfg.Entities,
		physics:  cfg.Physics,
		table:    table,
		stage:    stage,
		tuning:   system.NewStateConfig(cfg.Physics),
	}
}

// Tuning returns the state tuning handed to spawned actors
func (s *Spawner) Tuning() state.Config {
	return s.tuning
}

// Spawn creates an actor of kind at (x, y). A nil input leaves the actor
// uncontrolled.
func (s *Spawner) Spawn(w *World, kind string, x, y float64, facingLeft bool, input entity.InputDevice) (EntityID, error) {
	def, ok := s.entities.Entities[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if input == nil {
		input = entity.NoInput{}
	}

	categories, err := s.categories(kind, def.Probes)
	if err != nil {
		return 0, err
	}
	anims, err := animations(kind, def.Animations)
	if err != nil {
		return 0, err
	}
	initial := state.Idle
	if def.InitialState != "" {
		if initial, err = state.ParseID(def.InitialState); err != nil {
			return 0, fmt.Errorf("failed to read initial state of %s: %w", kind, err)
		}
	}

	mirror := entity.MirrorNone
	if facingLeft {
		mirror = entity.MirrorHorizontal
	}
	var exposes collision.Capability
	if def.Capabilities.Glue {
		exposes |= collision.CapGlue
	}
	if def.Capabilities.Hurtable {
		exposes |= collision.CapHurtable
	}

	id := w.NewEntity()
	model, err := entity.NewModel(entity.ModelConfig{
		ID:               id,
		Kind:             kind,
		X:                x,
		Y:                y,
		Mirror:           mirror,
		Animator:         entity.NewAnimationPlayer(),
		Input:            input,
		Map:              s.stage,
		Gravity:          s.physics.Physics.Gravity,
		GravityMax:       s.physics.Physics.MaxFallSpeed,
		MovementVelocity: s.tuning.VelocityMove,
		JumpDeceleration: s.physics.Physics.JumpDeceleration,
		Categories:       categories,
		Boxes:            s.boxes(def.Boxes),
		Exposes:          exposes,
		HasGravity:       def.Capabilities.Gravity,
		Patrol:           def.Capabilities.Patrol,
	})
	if err != nil {
		return 0, err
	}
	handler, err := state.NewEntityHandler(model, s.tuning, anims, initial)
	if err != nil {
		return 0, fmt.Errorf("failed to build states of %s: %w", kind, err)
	}

	w.Actor[id] = Actor{
		Kind:    kind,
		Initial: initial,
		Color:   def.Color,
		Width:   def.Size.Width,
		Height:  def.Size.Height,
	}
	w.Model[id] = model
	w.Handler[id] = handler
	switch {
	case def.Capabilities.Player:
		w.IsPlayer[id] = struct{}{}
		w.PlayerID = id
		w.Drown[id] = system.NewDrownable(handler, s.physics.Drown)
	case def.Capabilities.Glue:
		w.IsPlatform[id] = struct{}{}
	case def.Capabilities.Hurtable:
		w.IsEnemy[id] = struct{}{}
	}
	return id, nil
}

// SpawnStage spawns the player at the stage spawn point, driven by input,
// and every actor the stage lists
func (s *Spawner) SpawnStage(w *World, cfg *config.StageConfig, playerKind string, input entity.InputDevice) error {
	if _, err := s.Spawn(w, playerKind, cfg.PlayerSpawn.X, cfg.PlayerSpawn.Y, false, input); err != nil {
		return err
	}
	for _, a := range cfg.Actors {
		if _, err := s.Spawn(w, a.Kind, a.X, a.Y, a.FacingLeft, nil); err != nil {
			return err
		}
	}
	return nil
}

func (s *Spawner) categories(kind string, probes []config.ProbeConfig) ([]collision.Category, error) {
	categories := make([]collision.Category, 0, len(probes))
	for _, p := range probes {
		var axis collision.Axis
		switch p.Axis {
		case "x", "X":
			axis = collision.AxisX
		case "y", "Y":
			axis = collision.AxisY
		default:
			return nil, fmt.Errorf("probe %s of %s: unknown axis %q", p.Name, kind, p.Axis)
		}
		categories = append(categories, collision.Category{
			Name:    p.Name,
			Axis:    axis,
			Zone:    s.table.Zone(p.Name),
			OffsetX: p.OffsetX,
			OffsetY: p.OffsetY,
		})
	}
	return categories, nil
}

func (s *Spawner) boxes(defs []config.BoxConfig) []collision.Box {
	boxes := make([]collision.Box, len(defs))
	for i, b := range defs {
		boxes[i] = collision.Box{
			Name:    b.Name,
			Zone:    s.table.Zone(b.Name),
			OffsetX: b.OffsetX,
			OffsetY: b.OffsetY,
			Width:   b.Width,
			Height:  b.Height,
		}
	}
	return boxes
}

func animations(kind string, defs map[string]config.AnimationConfig) (map[state.ID]entity.Animation, error) {
	anims := make(map[state.ID]entity.Animation, len(defs))
	for name, a := range defs {
		id, err := state.ParseID(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read animations of %s: %w", kind, err)
		}
		anim := entity.Animation{
			Name:   name,
			First:  a.First,
			Last:   a.Last,
			Speed:  a.Speed,
			Repeat: a.Repeat,
		}
		if err := anim.Validate(); err != nil {
			return nil, fmt.Errorf("failed to read animations of %s: %w", kind, err)
		}
		anims[id] = anim
	}
	return anims, nil
}
