package state

// Config holds the locomotion tuning shared by all states.
// Speeds are pixels per frame at extrp == 1.
type Config struct {
	Speed            float64
	WalkMinSpeed     float64
	SlopeBonus       float64
	AnimSpeedDivisor float64

	VelocityStop   float64 // convergence when braking to a stop
	VelocityMove   float64 // convergence while moving
	VelocityDrift  float64 // airborne convergence without input
	VelocityDamped float64 // convergence while an overshoot settles

	JumpMax float64
	JumpMin float64
	JumpHit float64

	SlideSpeed    float64
	SlideVelocity float64
	PatrolSpeed   float64

	DieSinkSpeed float64
	RespawnX     float64
	RespawnY     float64
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		Speed:            5.0 / 3.0,
		WalkMinSpeed:     0.005,
		SlopeBonus:       0.3,
		AnimSpeedDivisor: 6.0,
		VelocityStop:     0.3,
		VelocityMove:     0.12,
		VelocityDrift:    0.07,
		VelocityDamped:   0.001,
		JumpMax:          4.0,
		JumpMin:          2.0,
		JumpHit:          3.0,
		SlideSpeed:       1.8,
		SlideVelocity:    0.08,
		PatrolSpeed:      0.5,
		DieSinkSpeed:     0.7,
		RespawnX:         670,
		RespawnY:         64,
	}
}
