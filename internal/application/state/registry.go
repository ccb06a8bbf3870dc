package state

import "github.com/younwookim/lionheart/internal/domain/entity"

type factory func(model *entity.Model, cfg Config, anim entity.Animation) State

var factories = map[ID]factory{
	Idle:                   func(m *entity.Model, c Config, a entity.Animation) State { return newIdle(m, c, a) },
	Walk:                   func(m *entity.Model, c Config, a entity.Animation) State { return newWalk(m, c, a) },
	Crouch:                 func(m *entity.Model, c Config, a entity.Animation) State { return newCrouch(m, c, a) },
	Jump:                   func(m *entity.Model, c Config, a entity.Animation) State { return newJump(m, c, a) },
	Fall:                   func(m *entity.Model, c Config, a entity.Animation) State { return newFall(m, c, a) },
	Slide:                  func(m *entity.Model, c Config, a entity.Animation) State { return newSlide(m, c, a) },
	Land:                   func(m *entity.Model, c Config, a entity.Animation) State { return newLand(m, c, a) },
	Border:                 func(m *entity.Model, c Config, a entity.Animation) State { return newBorder(m, c, a) },
	Patrol:                 func(m *entity.Model, c Config, a entity.Animation) State { return newPatrol(m, c, a) },
	Die:                    func(m *entity.Model, c Config, a entity.Animation) State { return newDie(m, c, a) },
	AttackPrepare:          func(m *entity.Model, c Config, a entity.Animation) State { return newAttackPrepare(m, c, a) },
	AttackUnprepare:        func(m *entity.Model, c Config, a entity.Animation) State { return newAttackUnprepare(m, c, a) },
	AttackJump:             func(m *entity.Model, c Config, a entity.Animation) State { return newAttackJump(m, c, a) },
	AttackFall:             func(m *entity.Model, c Config, a entity.Animation) State { return newAttackFall(m, c, a) },
	AttackCrouchHorizontal: func(m *entity.Model, c Config, a entity.Animation) State { return newAttackCrouchHorizontal(m, c, a) },
	AttackCrouchPrepared:   func(m *entity.Model, c Config, a entity.Animation) State { return newAttackCrouchPrepared(m, c, a) },
}

// DefaultAnimation is the single-frame animation used for states without
// a configured one
func DefaultAnimation(id ID) entity.Animation {
	return entity.Animation{Name: id.String(), First: 0, Last: 0, Speed: 1}
}

// NewStates builds the full state set for model. States missing from anims
// play DefaultAnimation.
func NewStates(model *entity.Model, cfg Config, anims map[ID]entity.Animation) map[ID]State {
	states := make(map[ID]State, len(factories))
	for id, build := range factories {
		anim, ok := anims[id]
		if !ok {
			anim = DefaultAnimation(id)
		}
		states[id] = build(model, cfg, anim)
	}
	return states
}

// NewEntityHandler builds the full state set for model and enters initial
func NewEntityHandler(model *entity.Model, cfg Config, anims map[ID]entity.Animation, initial ID) (*Handler, error) {
	return NewHandler(model, NewStates(model, cfg, anims), initial)
}
