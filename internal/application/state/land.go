package state

import "github.com/younwookim/lionheart/internal/domain/entity"

// land plays the landing animation; any input cuts it short
type land struct {
	base
	ground groundContact
}

func newLand(model *entity.Model, cfg Config, anim entity.Animation) *land {
	s := &land{
		base:   newBase(Land, model, cfg, anim),
		ground: groundContact{model: model},
	}
	s.addTransition(Jump, s.isGoingUpOnce)
	s.addTransition(Crouch, s.isGoingDown)
	s.addTransition(Walk, s.isGoingHorizontal)
	s.addTransition(Idle, func() bool { return s.is(entity.AnimFinished) })
	s.addTransition(Fall, func() bool { return model.HasGravity && !s.ground.collideY })
	return s
}

func (s *land) Enter() {
	s.base.Enter()

	s.listenTiles(&s.ground)
	s.listenContacts(&s.ground)
	s.ground.reset()
	s.model.Jump.Zero()
	s.model.Body.ResetGravity()
	s.stopMovement()
}

func (s *land) Update(extrp float64) {
	s.ground.reset()
}
