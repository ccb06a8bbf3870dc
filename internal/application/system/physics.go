package system

import (
	"slices"

	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

// PhysicsSystem integrates entity forces and resolves the probes of each
// entity against the stage tiles.
//
// The system never moves an entity out of a tile by itself: every resolved
// collision is raised into the entity's router, and the current state
// decides whether to apply it.
type PhysicsSystem struct {
	config *config.PhysicsConfig
	stage  *entity.Stage
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, stage *entity.Stage) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		stage:  stage,
	}
}

// SetConfig swaps the physics settings, for hot reload
func (s *PhysicsSystem) SetConfig(cfg *config.PhysicsConfig) {
	s.config = cfg
}

// Update moves the model by its forces, then raises X and Y tile collisions
func (s *PhysicsSystem) Update(model *entity.Model, extrp float64) {
	model.Movement.Update(extrp)
	model.Jump.Update(extrp)

	dx := model.Movement.DirectionHorizontal() * extrp
	dy := (model.Movement.DirectionVertical() + model.Jump.DirectionVertical() + model.Body.Vertical()) * extrp
	model.Transform.Move(dx, dy)

	s.resolveX(model, dx)
	s.resolveY(model, dy)
}

// resolveX raises a collision for every horizontal probe inside a blocking
// tile. Probes only look ahead of the motion; a probe right of the origin
// is checked when not moving left, and the other way round.
func (s *PhysicsSystem) resolveX(model *entity.Model, dx float64) {
	size := float64(s.tileSize())
	for _, cat := range model.Categories {
		if cat.Axis != collision.AxisX {
			continue
		}
		right := cat.OffsetX >= 0
		if right && dx < 0 || !right && dx > 0 {
			continue
		}

		px := model.Transform.X + cat.OffsetX
		py := model.Transform.Y + cat.OffsetY
		tx, ty := s.stage.TileCoords(px, py)
		tile := s.stage.GetTile(tx, ty)
		if !blocksHorizontally(tile.Profile) {
			continue
		}
		minX, maxX, ok := tile.Profile.SolidSpan(py-float64(ty)*size, size)
		lx := px - float64(tx)*size
		if !ok || lx <= minX || lx >= maxX {
			continue
		}

		x := float64(tx)*size + maxX - cat.OffsetX
		if right {
			x = float64(tx)*size + minX - cat.OffsetX
		}
		model.Collisions.NotifyTile(collision.Result{
			Axis:    collision.AxisX,
			Profile: tile.Profile,
			Name:    tile.Name,
			TileX:   tx,
			TileY:   ty,
			X:       x,
			Y:       model.Transform.Y,
		}, cat)
	}
}

// blocksHorizontally reports whether knee probes stop on the profile.
// Slopes are climbed through the legs instead.
func blocksHorizontally(p collision.Profile) bool {
	return p == collision.ProfileGround || p == collision.ProfileSteepLeft || p == collision.ProfileSteepRight
}

type yHit struct {
	result   collision.Result
	category collision.Category
}

// resolveY raises a collision for every leg probe resting on a surface.
// Tiles only support from above, so nothing is raised while rising. Hits
// are raised lowest first so the highest surface is applied last.
func (s *PhysicsSystem) resolveY(model *entity.Model, dy float64) {
	if dy > 0 {
		return
	}
	settings := s.config.Physics
	size := float64(s.tileSize())
	reach := settings.StepHeight + max(0, -dy)

	var hits []yHit
	for _, cat := range model.Categories {
		if cat.Axis != collision.AxisY {
			continue
		}
		px := model.Transform.X + cat.OffsetX
		py := model.Transform.Y + cat.OffsetY
		tx, ty := s.stage.TileCoords(px, py)

		for _, row := range [2]int{ty, ty - 1} {
			tile := s.stage.GetTile(tx, row)
			if !tile.Exists() {
				continue
			}
			surface := float64(row)*size + tile.Profile.Height(px-float64(tx)*size, size)
			depth := surface - py
			if depth < -settings.SnapMargin || depth > reach {
				break
			}
			hits = append(hits, yHit{
				result: collision.Result{
					Axis:    collision.AxisY,
					Profile: tile.Profile,
					Name:    tile.Name,
					TileX:   tx,
					TileY:   row,
					X:       model.Transform.X,
					Y:       surface - cat.OffsetY,
				},
				category: cat,
			})
			break
		}
	}

	slices.SortStableFunc(hits, func(a, b yHit) int {
		switch {
		case a.result.Y < b.result.Y:
			return -1
		case a.result.Y > b.result.Y:
			return 1
		}
		return 0
	})
	for _, hit := range hits {
		model.Collisions.NotifyTile(hit.result, hit.category)
	}
}

func (s *PhysicsSystem) tileSize() int {
	if s.stage.TileSize <= 0 {
		return 16 // fallback
	}
	return s.stage.TileSize
}
