package state

import (
	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// attackPrepare raises the sword while fire is held on the ground
type attackPrepare struct {
	base
	ground groundContact
}

func newAttackPrepare(model *entity.Model, cfg Config, anim entity.Animation) *attackPrepare {
	s := &attackPrepare{
		base:   newBase(AttackPrepare, model, cfg, anim),
		ground: groundContact{model: model},
	}
	s.addTransition(Jump, s.isGoingUpOnce)
	s.addTransition(Fall, func() bool { return model.HasGravity && !s.ground.collideY })
	s.addTransition(AttackCrouchHorizontal, s.isGoingDown)
	s.addTransition(AttackUnprepare, func() bool { return !s.isFire() })
	return s
}

func (s *attackPrepare) Enter() {
	s.base.Enter()

	s.listenTiles(&s.ground)
	s.listenContacts(&s.ground)
	s.ground.reset()
	s.stopMovement()
}

func (s *attackPrepare) Update(extrp float64) {
	s.ground.reset()
}

// attackUnprepare lowers the sword
type attackUnprepare struct {
	base
	ground groundContact
}

func newAttackUnprepare(model *entity.Model, cfg Config, anim entity.Animation) *attackUnprepare {
	s := &attackUnprepare{
		base:   newBase(AttackUnprepare, model, cfg, anim),
		ground: groundContact{model: model},
	}
	s.addTransition(Idle, func() bool { return s.is(entity.AnimFinished) })
	return s
}

func (s *attackUnprepare) Enter() {
	s.base.Enter()

	s.listenTiles(&s.ground)
	s.listenContacts(&s.ground)
}

// attackJump swings horizontally in the air
type attackJump struct {
	base
	collideY bool
}

func newAttackJump(model *entity.Model, cfg Config, anim entity.Animation) *attackJump {
	s := &attackJump{base: newBase(AttackJump, model, cfg, anim)}
	s.addTransition(Land, func() bool { return s.collideY })
	s.addTransition(Fall, func() bool { return s.is(entity.AnimFinished) })
	return s
}

func (s *attackJump) NotifyTileCollided(result collision.Result, category collision.Category) {
	if category.Axis == collision.AxisX {
		blockWall(s.model, result)
		return
	}
	s.model.Apply(result)
	s.model.Jump.Zero()
	s.model.Body.ResetGravity()
	s.collideY = true
}

func (s *attackJump) NotifyCollided(contact collision.Contact) {
	if restOnGlue(s.model, contact) {
		s.collideY = true
	}
}

func (s *attackJump) Enter() {
	s.base.Enter()

	s.listenTiles(s)
	s.listenContacts(s)
	s.collideY = false
}

func (s *attackJump) Update(extrp float64) {
	airborne(&s.base, extrp)
}

// attackFall points the sword down. Striking a hurtable entity with the
// blade bounces the attacker back up.
type attackFall struct {
	base
	collideY     bool
	collideSword bool
}

func newAttackFall(model *entity.Model, cfg Config, anim entity.Animation) *attackFall {
	s := &attackFall{base: newBase(AttackFall, model, cfg, anim)}
	s.addTransition(Land, func() bool { return !s.isGoingDown() && s.collideY })
	s.addTransition(Crouch, func() bool { return s.isGoingDown() && s.collideY })
	s.addTransition(Jump, func() bool { return s.collideSword && model.Jump.DirectionVertical() > 0 })
	s.addTransition(Fall, func() bool { return !s.isFire() && model.Jump.DirectionVertical() <= 0 })
	return s
}

func (s *attackFall) NotifyTileCollided(result collision.Result, category collision.Category) {
	if category.Axis == collision.AxisX {
		blockWall(s.model, result)
		return
	}
	s.model.Apply(result)
	s.model.Jump.Zero()
	s.model.Body.ResetGravity()
	s.collideY = true
}

func (s *attackFall) NotifyCollided(contact collision.Contact) {
	if restOnGlue(s.model, contact) {
		s.collideY = true
	}
	if contact.Other.Has(collision.CapHurtable) && contact.With.Zone == collision.ZoneAttackFall {
		s.model.Body.ResetGravity()
		s.model.Jump.SetDirection(0, s.cfg.JumpHit)
		s.model.Jump.SetDirectionMaximum(0, s.cfg.JumpHit)
		s.collideSword = true
	}
}

func (s *attackFall) Enter() {
	s.base.Enter()

	s.listenTiles(s)
	s.listenContacts(s)
	s.collideY = false
	s.collideSword = false
}

func (s *attackFall) Update(extrp float64) {
	airborne(&s.base, extrp)
}

// airborne applies gravity once the ascent is spent and steers toward the
// horizontal input
func airborne(b *base, extrp float64) {
	if b.model.Jump.DirectionVertical() <= 0 {
		b.model.Body.Update(extrp)
	} else {
		b.model.Body.ResetGravity()
	}
	b.driftVelocity()
	b.model.Movement.SetDestination(b.model.Input.HorizontalDirection()*b.cfg.Speed, 0)
}

// attackCrouchHorizontal swings low, turning toward the input first
type attackCrouchHorizontal struct {
	base
	ground groundContact
}

func newAttackCrouchHorizontal(model *entity.Model, cfg Config, anim entity.Animation) *attackCrouchHorizontal {
	s := &attackCrouchHorizontal{
		base:   newBase(AttackCrouchHorizontal, model, cfg, anim),
		ground: groundContact{model: model},
	}
	s.addTransition(AttackCrouchPrepared, func() bool { return s.is(entity.AnimFinished) })
	return s
}

func (s *attackCrouchHorizontal) Enter() {
	s.base.Enter()

	s.listenTiles(&s.ground)
	s.listenContacts(&s.ground)
	s.faceInput()
	s.stopMovement()
}

// attackCrouchPrepared holds the low guard
type attackCrouchPrepared struct {
	base
	ground groundContact
}

func newAttackCrouchPrepared(model *entity.Model, cfg Config, anim entity.Animation) *attackCrouchPrepared {
	s := &attackCrouchPrepared{
		base:   newBase(AttackCrouchPrepared, model, cfg, anim),
		ground: groundContact{model: model},
	}
	s.addTransition(Crouch, func() bool { return !s.isFire() })
	s.addTransition(AttackCrouchHorizontal, func() bool { return s.isGoingLeftOnce() || s.isGoingRightOnce() })
	return s
}

func (s *attackCrouchPrepared) Enter() {
	s.base.Enter()

	s.listenTiles(&s.ground)
	s.listenContacts(&s.ground)
}
