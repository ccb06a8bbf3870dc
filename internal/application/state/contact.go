package state

import (
	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// groundContact keeps a grounded state standing: it applies Y-axis tile
// resolutions and records whether ground was touched this frame, through
// tiles or through a glue entity under a leg.
type groundContact struct {
	model    *entity.Model
	collideY bool
}

func (g *groundContact) reset() {
	g.collideY = false
}

func (g *groundContact) NotifyTileCollided(result collision.Result, category collision.Category) {
	if category.Axis != collision.AxisY {
		return
	}
	g.model.Apply(result)
	g.model.Body.ResetGravity()
	g.collideY = true
}

func (g *groundContact) NotifyCollided(contact collision.Contact) {
	if restOnGlue(g.model, contact) {
		g.collideY = true
	}
}

// isGlueLeg reports whether a contact puts a leg on a glue entity
func isGlueLeg(contact collision.Contact) bool {
	return contact.Other.Has(collision.CapGlue) && contact.With.Zone.IsLeg()
}

// restOnGlue stands the entity on top of the glue entity under one of its
// legs and reports whether the contact grounds it. An entity still rising
// is left alone.
func restOnGlue(model *entity.Model, contact collision.Contact) bool {
	if !isGlueLeg(contact) {
		return false
	}
	if model.Transform.Y <= model.Transform.OldY {
		model.Transform.Y = contact.Top
		model.Body.ResetGravity()
	}
	return true
}

// blockWall stops horizontal motion against a wall tile hit on the X axis.
// It reports whether the hit was applied.
func blockWall(model *entity.Model, result collision.Result) bool {
	if result.Axis != collision.AxisX || !result.Profile.IsGround() {
		return false
	}
	model.Apply(result)
	model.Movement.SetDirection(0, model.Movement.DirectionVertical())
	return true
}

// steepSide classifies a struck profile for the mirror fix-up on exit
type steepSide struct {
	steep bool
	left  bool
	right bool
}

func (s *steepSide) reset() {
	*s = steepSide{}
}

// mark records p when it is a directed steep profile
func (s *steepSide) mark(p collision.Profile) {
	switch p {
	case collision.ProfileSteepLeft:
		s.steep = true
		s.left = true
	case collision.ProfileSteepRight:
		s.steep = true
		s.right = true
	}
}

// unglue turns an entity that ended up facing into a steep edge around, and
// stops it so it does not slide through the tile
func (s *steepSide) unglue(model *entity.Model) {
	switch {
	case model.Mirror == entity.MirrorNone && s.left:
		model.Mirror = entity.MirrorHorizontal
	case model.Mirror == entity.MirrorHorizontal && s.right:
		model.Mirror = entity.MirrorNone
	default:
		return
	}
	model.Movement.Zero()
	model.Movement.SetDestination(0, 0)
}
