package state

import "github.com/younwookim/lionheart/internal/domain/entity"

type crouch struct {
	base
	ground groundContact
}

func newCrouch(model *entity.Model, cfg Config, anim entity.Animation) *crouch {
	s := &crouch{
		base:   newBase(Crouch, model, cfg, anim),
		ground: groundContact{model: model},
	}
	s.addTransition(AttackCrouchHorizontal, s.isFireOnce)
	s.addTransition(Idle, func() bool { return !s.isGoingDown() })
	s.addTransition(Fall, func() bool { return model.HasGravity && !s.ground.collideY })
	return s
}

func (s *crouch) Enter() {
	s.base.Enter()

	s.listenTiles(&s.ground)
	s.listenContacts(&s.ground)
	s.ground.reset()
	s.stopMovement()
}

func (s *crouch) Update(extrp float64) {
	s.ground.reset()
}
