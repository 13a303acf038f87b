package lander

import "github.com/vovakirdan/tui-lander/internal/core"

// Playfield geometry, in percent of the playfield.
const (
	FieldWidth = 100.0 // x wraps at this value
	CeilingY   = 95.0  // y above this bounces back down
	GroundY    = 12.0  // y at or below this is ground contact
)

// Physics constants - per tick at 60 ticks per second.
const (
	Gravity        = 0.01  // Downward acceleration per tick
	ThrustPower    = 0.025 // Engine impulse per tick along the nose
	RotationStep   = 2.0   // Degrees per tick while a rotate control is held
	FuelBurn       = 0.2   // Fuel consumed per tick of effective thrust
	AngleLimit     = 90.0  // Hard rotation stop either side of vertical
	CeilingDamping = 0.5   // Fraction of vertical speed kept after a ceiling hit
)

// Landing tolerances. AngleLimit and MaxLandingAngle are unrelated bounds.
const (
	MaxLandingSpeed = 1.5  // Highest touchdown speed that still counts as soft
	MaxLandingAngle = 15.0 // Largest |angle| in degrees that counts as level
	PadLeft         = 40.0
	PadRight        = 60.0
)

// Launch conditions shared by the first start and every restart.
const (
	StartX       = 20.0
	StartY       = 80.0
	StartDriftX  = 0.1
	FuelCapacity = 100.0
)

// Scoring weights.
const (
	ScoreBase           = 1000
	FuelBonusPerUnit    = 10.0
	SpeedBonusPerUnit   = 100.0
	AngleBonusPerDegree = 5.0
)

// Pad is the horizontal band the craft must touch down inside.
var Pad = core.NewSpan(PadLeft, PadRight)
