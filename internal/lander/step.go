package lander

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Step advances a playing state by one fixed tick.
// It is pure: identical inputs always produce a bit-identical result.
// A state outside PhasePlaying is returned unchanged; the driver must not
// call Step once the mission has an outcome.
func Step(prev State, c Controls) State {
	if prev.phase != PhasePlaying {
		return prev
	}

	next := prev
	next.controls = c
	next.tick++

	// Thrust is decided on the fuel left before this tick
	burning := c.Thrust && prev.fuel > 0

	// Rotate first so thrust this tick follows the new heading
	angle := prev.angle
	if c.RotateLeft {
		angle -= RotationStep
	}
	if c.RotateRight {
		angle += RotationStep
	}
	next.angle = core.ClampF(angle, -AngleLimit, AngleLimit)

	// Semi-implicit Euler: position moves by the updated velocity
	next.vel = prev.vel.Sub(mgl64.Vec2{0, Gravity})
	if burning {
		next.vel = next.vel.Add(thrustVector(next.angle))
	}
	next.pos = prev.pos.Add(next.vel)

	if burning {
		next.fuel = math.Max(prev.fuel-FuelBurn, 0)
	}

	next.pos[0] = core.WrapF(next.pos[0], FieldWidth)

	if next.pos[1] > CeilingY {
		next.pos[1] = CeilingY
		next.vel[1] = -math.Abs(next.vel[1] * CeilingDamping)
	}

	if next.pos[1] <= GroundY {
		return touchdown(next)
	}
	return next
}

// thrustVector returns the engine impulse for a nose angle in degrees.
func thrustVector(angle float64) mgl64.Vec2 {
	rad := mgl64.DegToRad(angle)
	return mgl64.Vec2{-math.Sin(rad), math.Cos(rad)}.Mul(ThrustPower)
}

// touchdown resolves ground contact for a playing state.
// Inside the pad band, slow enough and level enough, the craft lands:
// it is snapped onto the ground line, stopped, and scored. Anything else
// crashes with the kinematics frozen as they were on contact.
// A state still above the ground line is returned unchanged.
func touchdown(s State) State {
	if s.phase != PhasePlaying || s.pos[1] > GroundY {
		return s
	}

	speed := s.vel.Len()
	onPad := Pad.Contains(s.pos.X())
	soft := speed <= MaxLandingSpeed
	level := math.Abs(s.angle) <= MaxLandingAngle

	if onPad && soft && level {
		s.phase = PhaseLanded
		s.pos[1] = GroundY
		s.vel = mgl64.Vec2{}
		s.score = LandingScore(s.fuel, speed, s.angle)
		return s
	}

	s.phase = PhaseCrashed
	s.pos[1] = math.Max(s.pos[1], 0)
	return s
}
