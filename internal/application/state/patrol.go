package state

import (
	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// patrol walks an input-less entity back and forth, turning at walls and
// ledges
type patrol struct {
	base
	ground   groundContact
	border   *BorderDetection
	collideX bool
}

func newPatrol(model *entity.Model, cfg Config, anim entity.Animation) *patrol {
	s := &patrol{
		base:   newBase(Patrol, model, cfg, anim),
		ground: groundContact{model: model},
		border: NewBorderDetection(model.Map),
	}
	s.addTransition(Fall, func() bool { return model.HasGravity && !s.ground.collideY })
	return s
}

func (s *patrol) NotifyTileCollided(result collision.Result, category collision.Category) {
	if category.Axis == collision.AxisX && blockWall(s.model, result) {
		s.collideX = true
	}
}

func (s *patrol) Enter() {
	s.base.Enter()

	s.listenTiles(s)
	s.listenTiles(&s.ground)
	s.listenContacts(&s.ground)
	s.listenTiles(s.border)
	s.listenContacts(s.border)
	s.model.Jump.Zero()
	s.model.Movement.SetVelocity(s.cfg.VelocityMove)
}

func (s *patrol) Update(extrp float64) {
	s.collideX = false
	s.ground.reset()
	s.border.Reset()
	s.model.Movement.SetDestination(s.model.Mirror.Sign()*s.cfg.PatrolSpeed, 0)
}

// PostUpdate turns around when the way ahead is blocked or ends
func (s *patrol) PostUpdate() {
	facingLeft := s.model.Mirror == entity.MirrorHorizontal
	ledge := facingLeft && s.border.IsLeft() || !facingLeft && s.border.IsRight()
	if !s.collideX && !ledge {
		return
	}
	if facingLeft {
		s.model.Mirror = entity.MirrorNone
	} else {
		s.model.Mirror = entity.MirrorHorizontal
	}
	s.model.Movement.SetDirection(0, s.model.Movement.DirectionVertical())
}
