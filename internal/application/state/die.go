package state

import "github.com/younwookim/lionheart/internal/domain/entity"

// die freezes the entity and lets it sink. Leaving it respawns the entity
// at the respawn point.
type die struct {
	base
}

func newDie(model *entity.Model, cfg Config, anim entity.Animation) *die {
	return &die{base: newBase(Die, model, cfg, anim)}
}

func (s *die) Enter() {
	s.base.Enter()

	s.model.Movement.SetDirection(0, 0)
	s.model.Movement.SetVelocity(s.cfg.VelocityMove)
	s.model.Jump.Zero()
}

func (s *die) Update(extrp float64) {
	s.model.Body.ResetGravity()
	s.model.Movement.SetDestination(0, -s.cfg.DieSinkSpeed)
}

func (s *die) Exit() {
	s.model.Transform.Teleport(s.cfg.RespawnX, s.cfg.RespawnY)
}
