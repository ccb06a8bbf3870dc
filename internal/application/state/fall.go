package state

import (
	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// fall descends under gravity until a Y-axis collision lands the entity
type fall struct {
	base
	collideY bool
	side     steepSide
}

func newFall(model *entity.Model, cfg Config, anim entity.Animation) *fall {
	s := &fall{base: newBase(Fall, model, cfg, anim)}
	s.addTransition(Land, func() bool { return !s.side.steep && s.collideY && !model.Patrol })
	s.addTransition(Patrol, func() bool { return s.collideY && model.Patrol })
	s.addTransition(Slide, func() bool { return s.side.steep })
	s.addTransition(AttackJump, func() bool { return !s.collideY && s.isFireOnce() && !s.isGoingDown() })
	s.addTransition(AttackFall, func() bool { return !s.collideY && s.isFire() && s.isGoingDown() })
	return s
}

func (s *fall) NotifyTileCollided(result collision.Result, category collision.Category) {
	if category.Axis == collision.AxisX {
		blockWall(s.model, result)
		return
	}
	s.model.Apply(result)
	s.model.Jump.Zero()
	s.model.Body.ResetGravity()
	s.collideY = true
	s.side.mark(result.Profile)
}

func (s *fall) NotifyCollided(contact collision.Contact) {
	if restOnGlue(s.model, contact) {
		s.collideY = true
	}
}

func (s *fall) Enter() {
	s.base.Enter()

	s.listenTiles(s)
	s.listenContacts(s)
	s.collideY = false
	s.side.reset()
}

func (s *fall) Exit() {
	s.side.unglue(s.model)
}

func (s *fall) Update(extrp float64) {
	s.model.Body.Update(extrp)
	s.faceInput()
	s.driftVelocity()
	s.model.Movement.SetDestination(s.model.Input.HorizontalDirection()*s.cfg.Speed, 0)
}
