package state

import "github.com/younwookim/lionheart/internal/domain/entity"

// border is the ledge stance: one leg grounded, the other over the void
type border struct {
	base
	ground    groundContact
	detection *BorderDetection
}

func newBorder(model *entity.Model, cfg Config, anim entity.Animation) *border {
	s := &border{
		base:      newBase(Border, model, cfg, anim),
		ground:    groundContact{model: model},
		detection: NewBorderDetection(model.Map),
	}
	s.addTransition(Jump, s.isGoingUpOnce)
	s.addTransition(Walk, s.isGoingHorizontal)
	s.addTransition(Crouch, s.isGoingDownOnce)
	s.addTransition(Fall, func() bool { return !s.detection.Grounded() && !s.ground.collideY })
	s.addTransition(Idle, func() bool { return !s.detection.Is() })
	return s
}

func (s *border) Enter() {
	s.base.Enter()

	s.listenTiles(&s.ground)
	s.listenContacts(&s.ground)
	s.listenTiles(s.detection)
	s.listenContacts(s.detection)
	s.stopMovement()
}

// Update clears last frame's contacts; the Idle guard needs a full frame of
// fresh leg probes
func (s *border) Update(extrp float64) {
	s.ground.reset()
	s.detection.Reset()
}
