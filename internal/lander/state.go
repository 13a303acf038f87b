// Package lander implements the lunar lander simulation core.
// A craft falls under gravity across a percentage playfield; thrust and
// rotation controls steer it onto the landing pad. The package holds no
// timing, input or rendering code: the driver hands it a state and a
// controls snapshot once per tick and gets the next state back.
package lander

import "github.com/go-gl/mathgl/mgl64"

// Phase is the mission state machine.
type Phase int

const (
	PhaseTitle   Phase = iota // Waiting for launch
	PhasePlaying              // In flight, the only phase that steps
	PhaseLanded               // Touched down inside tolerances
	PhaseCrashed              // Touched down outside tolerances
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseLanded:
		return "landed"
	case PhaseCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase is a mission outcome.
func (p Phase) Terminal() bool {
	return p == PhaseLanded || p == PhaseCrashed
}

// Controls is the snapshot of held flight controls for one tick.
type Controls struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool
}

// State is the complete simulation record for one tick.
// It is a value: Step returns a new State and never mutates its argument.
type State struct {
	pos      mgl64.Vec2 // x wraps in [0,100), y bounded
	vel      mgl64.Vec2 // percent of playfield per tick
	fuel     float64
	angle    float64 // degrees from vertical, positive to the right
	controls Controls
	phase    Phase
	score    int
	tick     uint64
}

// FreshState returns the canonical initial state at the title phase.
func FreshState() State {
	return State{
		pos:   mgl64.Vec2{StartX, StartY},
		vel:   mgl64.Vec2{StartDriftX, 0},
		fuel:  FuelCapacity,
		phase: PhaseTitle,
	}
}

// Launch returns the canonical initial state, ready to step.
func Launch() State {
	s := FreshState()
	s.phase = PhasePlaying
	return s
}

func (s State) Position() mgl64.Vec2 { return s.pos }
func (s State) X() float64           { return s.pos.X() }
func (s State) Y() float64           { return s.pos.Y() }
func (s State) Velocity() mgl64.Vec2 { return s.vel }
func (s State) Fuel() float64        { return s.fuel }
func (s State) Angle() float64       { return s.angle }
func (s State) Controls() Controls   { return s.controls }
func (s State) Phase() Phase         { return s.phase }
func (s State) Tick() uint64         { return s.tick }

// Speed returns the magnitude of the velocity.
func (s State) Speed() float64 {
	return s.vel.Len()
}

// Score returns the landing score, zero unless the craft has landed.
func (s State) Score() int {
	if s.phase != PhaseLanded {
		return 0
	}
	return s.score
}

// Altitude returns the height above the ground contact line.
func (s State) Altitude() float64 {
	return s.pos.Y() - GroundY
}

// OverPad reports whether the craft is horizontally above the landing pad.
func (s State) OverPad() bool {
	return Pad.Contains(s.pos.X())
}
