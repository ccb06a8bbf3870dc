package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display    DisplayConfig    `json:"display"`
	Physics    PhysicsSettings  `json:"physics"`
	Locomotion LocomotionConfig `json:"locomotion"`
	Drown      DrownConfig      `json:"drown"`
	Respawn    PositionConfig   `json:"respawn"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// PhysicsSettings drives force integration and tile resolution.
// Values are per frame at extrp == 1.
type PhysicsSettings struct {
	Gravity          float64 `json:"gravity"`
	MaxFallSpeed     float64 `json:"maxFallSpeed"`
	JumpDeceleration float64 `json:"jumpDeceleration"`
	SnapMargin       float64 `json:"snapMargin"` // how far above a surface a leg still sticks to it
	StepHeight       float64 `json:"stepHeight"` // how deep a leg may sink before the tile stops counting
}

// LocomotionConfig holds the state tuning
type LocomotionConfig struct {
	Speed            float64 `json:"speed"`
	WalkMinSpeed     float64 `json:"walkMinSpeed"`
	SlopeBonus       float64 `json:"slopeBonus"`
	AnimSpeedDivisor float64 `json:"animSpeedDivisor"`
	VelocityStop     float64 `json:"velocityStop"`
	VelocityMove     float64 `json:"velocityMove"`
	VelocityDrift    float64 `json:"velocityDrift"`
	VelocityDamped   float64 `json:"velocityDamped"`
	JumpMax          float64 `json:"jumpMax"`
	JumpMin          float64 `json:"jumpMin"`
	JumpHit          float64 `json:"jumpHit"`
	SlideSpeed       float64 `json:"slideSpeed"`
	SlideVelocity    float64 `json:"slideVelocity"`
	PatrolSpeed      float64 `json:"patrolSpeed"`
	DieSinkSpeed     float64 `json:"dieSinkSpeed"`
}

// DrownConfig sets the watchdog heights
type DrownConfig struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
