package state

import (
	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// slide carries the entity down a steep tile until it reaches ground that
// can be stood on
type slide struct {
	base
	collideY  bool
	onSteep   bool
	direction float64
}

func newSlide(model *entity.Model, cfg Config, anim entity.Animation) *slide {
	s := &slide{base: newBase(Slide, model, cfg, anim)}
	s.addTransition(Jump, s.isGoingUpOnce)
	s.addTransition(Walk, func() bool { return s.onFlat() && s.isGoingHorizontal() })
	s.addTransition(Idle, s.onFlat)
	s.addTransition(Fall, func() bool { return !s.collideY })
	return s
}

func (s *slide) onFlat() bool {
	return s.collideY && !s.onSteep
}

func (s *slide) NotifyTileCollided(result collision.Result, category collision.Category) {
	if category.Axis == collision.AxisX {
		blockWall(s.model, result)
		return
	}
	s.model.Apply(result)
	s.model.Body.ResetGravity()
	s.collideY = true
	switch result.Profile {
	case collision.ProfileSteepLeft:
		s.onSteep = true
		s.direction = -1
	case collision.ProfileSteepRight:
		s.onSteep = true
		s.direction = 1
	case collision.ProfileSteep:
		s.onSteep = true
	default:
		s.onSteep = false
	}
}

func (s *slide) NotifyCollided(contact collision.Contact) {
	if restOnGlue(s.model, contact) {
		s.collideY = true
	}
}

func (s *slide) Enter() {
	s.base.Enter()

	s.listenTiles(s)
	s.listenContacts(s)
	s.direction = s.model.Mirror.Sign()
	s.collideY = true
	s.onSteep = true
	s.model.Jump.Zero()
	s.model.Movement.SetVelocity(s.cfg.SlideVelocity)
}

func (s *slide) Update(extrp float64) {
	s.collideY = false
	s.model.Body.Update(extrp)
	if s.direction < 0 {
		s.model.Mirror = entity.MirrorHorizontal
	} else {
		s.model.Mirror = entity.MirrorNone
	}
	s.model.Movement.SetDestination(s.direction*s.cfg.SlideSpeed, 0)
}
