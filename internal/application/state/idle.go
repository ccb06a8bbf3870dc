package state

import "github.com/younwookim/lionheart/internal/domain/entity"

// idle stands still on the ground
type idle struct {
	base
	ground groundContact
	border *BorderDetection
}

func newIdle(model *entity.Model, cfg Config, anim entity.Animation) *idle {
	s := &idle{
		base:   newBase(Idle, model, cfg, anim),
		ground: groundContact{model: model},
		border: NewBorderDetection(model.Map),
	}
	s.addTransition(Walk, s.isGoingHorizontal)
	s.addTransition(Crouch, s.isGoingDown)
	s.addTransition(Jump, s.isGoingUpOnce)
	s.addTransition(AttackPrepare, s.isFire)
	s.addTransition(Fall, func() bool { return model.HasGravity && !s.ground.collideY })
	s.addTransition(Border, s.border.Is)
	return s
}

func (s *idle) Enter() {
	s.base.Enter()

	s.listenTiles(&s.ground)
	s.listenContacts(&s.ground)
	s.listenTiles(s.border)
	s.listenContacts(s.border)

	s.border.Reset()
	s.ground.reset()
	s.stopMovement()
	s.model.Jump.Zero()
	s.model.Body.ResetGravity()
}

func (s *idle) Update(extrp float64) {
	s.ground.reset()
	s.border.Reset()
	s.model.Movement.SetDestination(0, 0)
}
