package system

import (
	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

// NewStateConfig builds the state tuning from physics.json
func NewStateConfig(cfg *config.PhysicsConfig) state.Config {
	loco := cfg.Locomotion
	return state.Config{
		Speed:            loco.Speed,
		WalkMinSpeed:     loco.WalkMinSpeed,
		SlopeBonus:       loco.SlopeBonus,
		AnimSpeedDivisor: loco.AnimSpeedDivisor,
		VelocityStop:     loco.VelocityStop,
		VelocityMove:     loco.VelocityMove,
		VelocityDrift:    loco.VelocityDrift,
		VelocityDamped:   loco.VelocityDamped,
		JumpMax:          loco.JumpMax,
		JumpMin:          loco.JumpMin,
		JumpHit:          loco.JumpHit,
		SlideSpeed:       loco.SlideSpeed,
		SlideVelocity:    loco.SlideVelocity,
		PatrolSpeed:      loco.PatrolSpeed,
		DieSinkSpeed:     loco.DieSinkSpeed,
		RespawnX:         cfg.Respawn.X,
		RespawnY:         cfg.Respawn.Y,
	}
}
