package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// LandingScore computes the score for a successful touchdown.
// Each bonus is truncated toward zero before summing:
//
//	1000 + fuel*10 + (maxSpeed-speed)*100 + (maxAngle-|angle|)*5
func LandingScore(fuel, speed, angle float64) int {
	fuelBonus := core.Truncate(fuel * FuelBonusPerUnit)
	speedBonus := core.Truncate((MaxLandingSpeed - speed) * SpeedBonusPerUnit)
	angleBonus := core.Truncate((MaxLandingAngle - math.Abs(angle)) * AngleBonusPerDegree)
	return ScoreBase + fuelBonus + speedBonus + angleBonus
}
