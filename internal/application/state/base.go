package state

import (
	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// base carries what every state shares: the model, the tuning, the state
// animation, the ordered transitions and the listener scope of the current
// activation.
type base struct {
	id          ID
	model       *entity.Model
	cfg         Config
	animation   entity.Animation
	transitions []Transition
	scope       collision.Scope
}

func newBase(id ID, model *entity.Model, cfg Config, animation entity.Animation) base {
	return base{id: id, model: model, cfg: cfg, animation: animation}
}

func (b *base) ID() ID { return b.id }

// Enter plays the state animation
func (b *base) Enter() {
	b.model.Animator.Play(b.animation)
}

func (b *base) Update(extrp float64) {}

func (b *base) PostUpdate() {}

func (b *base) Exit() {}

func (b *base) Transitions() []Transition { return b.transitions }

func (b *base) activation() *collision.Scope { return &b.scope }

func (b *base) addTransition(target ID, guard Guard) {
	b.transitions = append(b.transitions, Transition{Target: target, Guard: guard})
}

// listenTiles registers l for the current activation
func (b *base) listenTiles(l collision.TileListener) {
	b.scope.Hold(b.model.Collisions.AddTileListener(l))
}

// listenContacts registers l for the current activation
func (b *base) listenContacts(l collision.ContactListener) {
	b.scope.Hold(b.model.Collisions.AddContactListener(l))
}

func (b *base) is(state entity.AnimState) bool {
	return b.model.Animator.Is(state)
}

func (b *base) isGoingNone() bool {
	return b.model.Input.HorizontalDirection() == 0
}

func (b *base) isGoingHorizontal() bool {
	return b.model.Input.HorizontalDirection() != 0
}

func (b *base) isGoingLeft() bool {
	return b.model.Input.HorizontalDirection() < 0
}

func (b *base) isGoingRight() bool {
	return b.model.Input.HorizontalDirection() > 0
}

func (b *base) isGoingVertical() bool {
	return b.model.Input.VerticalDirection() != 0
}

func (b *base) isGoingUp() bool {
	return b.model.Input.VerticalDirection() > 0
}

func (b *base) isGoingDown() bool {
	return b.model.Input.VerticalDirection() < 0
}

func (b *base) isGoingUpOnce() bool {
	return b.model.Input.IsUpButtonOnce()
}

func (b *base) isGoingDownOnce() bool {
	return b.model.Input.IsDownButtonOnce()
}

func (b *base) isGoingLeftOnce() bool {
	return b.model.Input.IsLeftButtonOnce()
}

func (b *base) isGoingRightOnce() bool {
	return b.model.Input.IsRightButtonOnce()
}

func (b *base) isFire() bool {
	return b.model.Input.IsFireButton()
}

func (b *base) isFireOnce() bool {
	return b.model.Input.IsFireButtonOnce()
}

// faceInput turns the entity toward the horizontal input
func (b *base) faceInput() {
	switch {
	case b.isGoingLeft():
		b.model.Mirror = entity.MirrorHorizontal
	case b.isGoingRight():
		b.model.Mirror = entity.MirrorNone
	}
}

// stopMovement brakes the horizontal movement to a stop
func (b *base) stopMovement() {
	b.model.Movement.SetDestination(0, 0)
	b.model.Movement.SetVelocity(b.cfg.VelocityStop)
}

// driftVelocity picks the airborne convergence for the current input
func (b *base) driftVelocity() {
	if b.isGoingHorizontal() {
		b.model.Movement.SetVelocity(b.cfg.VelocityMove)
	} else {
		b.model.Movement.SetVelocity(b.cfg.VelocityDrift)
	}
}

// dampOvershoot nearly freezes convergence while the entity is still faster
// than walking speed and slowing down in the input direction, so reversing
// mid-move does not snap
func (b *base) dampOvershoot() {
	h := b.model.Movement.DirectionHorizontal()
	opposed := h < 0 && b.isGoingRight() || h > 0 && b.isGoingLeft()
	if b.isGoingHorizontal() && !opposed && abs(h) > b.cfg.Speed && b.model.Movement.IsDecreasingHorizontal() {
		b.model.Movement.SetVelocity(b.cfg.VelocityDamped)
	} else {
		b.model.Movement.SetVelocity(b.cfg.VelocityMove)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
