package state

import (
	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// jump ascends under the jump force. Holding fire or up keeps the full
// clamp; the first frame both are released the clamp drops to what is left
// of the ascent, which cuts the jump short.
type jump struct {
	base
	collideX bool
	side     steepSide
	released bool
}

func newJump(model *entity.Model, cfg Config, anim entity.Animation) *jump {
	s := &jump{base: newBase(Jump, model, cfg, anim)}
	s.addTransition(Slide, func() bool { return s.side.steep })
	s.addTransition(Fall, func() bool {
		return model.Jump.DirectionVertical() <= 0 || model.Transform.Y < model.Transform.OldY
	})
	s.addTransition(AttackJump, func() bool { return s.isFireOnce() && !s.isGoingDown() })
	s.addTransition(AttackFall, func() bool { return s.isFire() && s.isGoingDown() })
	return s
}

func (s *jump) NotifyTileCollided(result collision.Result, category collision.Category) {
	if category.Axis == collision.AxisX && blockWall(s.model, result) {
		s.collideX = true
		return
	}
	// Y results are only raised while not rising, so this fires on the apex
	// frame, where the jump force is spent and gravity has not kicked in.
	if category.Axis == collision.AxisY && result.Profile.IsSteep() {
		s.model.Apply(result)
		s.model.Body.ResetGravity()
		s.side.mark(result.Profile)
	}
}

func (s *jump) Enter() {
	s.base.Enter()

	s.listenTiles(s)

	s.released = false
	s.model.Jump.SetDirection(0, s.cfg.JumpMax)
	s.model.Jump.SetDirectionMaximum(0, s.cfg.JumpMax)

	s.collideX = false
	s.side.reset()
}

func (s *jump) Exit() {
	s.model.Jump.SetDirectionMaximum(0, s.cfg.JumpMax)
	s.side.unglue(s.model)
}

func (s *jump) Update(extrp float64) {
	s.checkJumpStopped()
	s.model.Body.ResetGravity()
	s.faceInput()
	if !s.collideX {
		s.model.Movement.SetDestination(s.model.Input.HorizontalDirection()*s.cfg.Speed, 0)
	}
}

func (s *jump) PostUpdate() {
	s.dampOvershoot()
}

// checkJumpStopped lowers the clamp once, on the first frame without
// jump input. The clamp never rises again during this jump.
func (s *jump) checkJumpStopped() {
	if s.released || s.isFire() || s.model.Input.VerticalDirection() > 0 {
		return
	}
	s.released = true
	remaining := s.cfg.JumpMax - s.model.Jump.DirectionVertical()
	s.model.Jump.SetDirectionMaximum(0, clampFloat(remaining, s.cfg.JumpMin, s.cfg.JumpMax))
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
