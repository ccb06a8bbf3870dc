package system

import (
	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// ContactSystem raises entity-vs-entity contacts between overlapping boxes
type ContactSystem struct{}

// NewContactSystem creates a new contact system
func NewContactSystem() *ContactSystem {
	return &ContactSystem{}
}

// Update raises one contact per overlapping box pair into the router of
// the entity owning the first box. Entities exposing no capability are
// never reported, since no state reacts to them.
func (s *ContactSystem) Update(models []*entity.Model) {
	for _, a := range models {
		for _, b := range models {
			if a == b || b.Exposes == 0 {
				continue
			}
			s.collide(a, b)
		}
	}
}

func (s *ContactSystem) collide(a, b *entity.Model) {
	for _, with := range a.Boxes {
		ax, ay := boxOrigin(a, with)
		for _, by := range b.Boxes {
			bx, by0 := boxOrigin(b, by)
			if !rectsOverlap(ax, ay, with.Width, with.Height, bx, by0, by.Width, by.Height) {
				continue
			}
			a.Collisions.NotifyContact(collision.Contact{
				OtherID: uint32(b.ID),
				Other:   b.Exposes,
				With:    with,
				By:      by,
				Top:     by0 + by.Height,
			})
		}
	}
}

// boxOrigin returns the world bottom-left corner of box, mirrored with the
// entity facing
func boxOrigin(m *entity.Model, box collision.Box) (x, y float64) {
	x = m.Transform.X + box.OffsetX
	if m.Mirror == entity.MirrorHorizontal {
		x = m.Transform.X - box.OffsetX - box.Width
	}
	return x, m.Transform.Y + box.OffsetY
}

func rectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 < x2+w2 && x1+w1 > x2 && y1 < y2+h2 && y1+h1 > y2
}
