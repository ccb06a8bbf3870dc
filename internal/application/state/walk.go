package state

import (
	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// walk moves along the ground, speeding up down slopes and slowing down
// up them
type walk struct {
	base
	collideX   bool
	collideY   bool
	speedSlope float64
}

func newWalk(model *entity.Model, cfg Config, anim entity.Animation) *walk {
	s := &walk{base: newBase(Walk, model, cfg, anim)}
	s.addTransition(Idle, func() bool { return s.collideX || s.isWalkingSlowEnough() })
	s.addTransition(Crouch, s.isGoingDown)
	s.addTransition(Jump, s.isGoingUp)
	s.addTransition(AttackPrepare, s.isFire)
	s.addTransition(Fall, func() bool {
		return model.HasGravity && model.Movement.DirectionHorizontal() != 0 && !s.collideY
	})
	return s
}

func (s *walk) isWalkingSlowEnough() bool {
	h := s.model.Movement.DirectionHorizontal()
	return s.isGoingNone() && h >= -s.cfg.WalkMinSpeed && h <= s.cfg.WalkMinSpeed
}

func (s *walk) NotifyTileCollided(result collision.Result, category collision.Category) {
	if category.Axis == collision.AxisX {
		if s.isGoingLeft() && result.Profile == collision.ProfileSteepRight ||
			s.isGoingRight() && result.Profile == collision.ProfileSteepLeft {
			s.model.Apply(result)
			s.model.Movement.Zero()
		} else {
			blockWall(s.model, result)
		}
		s.collideX = true
	}
	if category.Axis == collision.AxisY {
		s.model.Apply(result)
		s.collideY = true
		switch {
		case s.isGoingRight() && result.Profile == collision.ProfileSlopeLeft,
			s.isGoingLeft() && result.Profile == collision.ProfileSlopeRight:
			s.speedSlope = -s.cfg.SlopeBonus
		case s.isGoingRight() && result.Profile == collision.ProfileSlopeRight,
			s.isGoingLeft() && result.Profile == collision.ProfileSlopeLeft:
			s.speedSlope = s.cfg.SlopeBonus
		default:
			s.speedSlope = 0
		}
	}
}

func (s *walk) NotifyCollided(contact collision.Contact) {
	if restOnGlue(s.model, contact) {
		s.collideY = true
	}
}

func (s *walk) Enter() {
	s.base.Enter()

	s.listenTiles(s)
	s.listenContacts(s)

	s.resetFrame()
	s.speedSlope = 0
	s.model.Movement.SetVelocity(s.cfg.VelocityMove)
}

func (s *walk) Update(extrp float64) {
	s.resetFrame()
	s.faceInput()
	s.model.Movement.SetDestination(s.model.Input.HorizontalDirection()*(s.cfg.Speed+s.speedSlope), 0)
	s.model.Animator.SetAnimSpeed(abs(s.model.Movement.DirectionHorizontal()) / s.cfg.AnimSpeedDivisor)
}

func (s *walk) PostUpdate() {
	s.dampOvershoot()
}

func (s *walk) resetFrame() {
	s.collideX = false
	s.collideY = false
}
