package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/lander"
)

var tuningCmd = &cobra.Command{
	Use:   "tuning",
	Short: "Show the physics constants",
	Long: `Prints the fixed physics constants. Distances are percent of the
playfield, velocities are percent per tick, angles are degrees.`,
	Run: runTuning,
}

func runTuning(_ *cobra.Command, _ []string) {
	rows := []struct {
		name  string
		value float64
	}{
		{"gravity", lander.Gravity},
		{"thrust power", lander.ThrustPower},
		{"rotation step", lander.RotationStep},
		{"fuel burn", lander.FuelBurn},
		{"fuel capacity", lander.FuelCapacity},
		{"angle limit", lander.AngleLimit},
		{"ceiling", lander.CeilingY},
		{"ceiling damping", lander.CeilingDamping},
		{"ground", lander.GroundY},
		{"pad left", lander.PadLeft},
		{"pad right", lander.PadRight},
		{"max landing speed", lander.MaxLandingSpeed},
		{"max landing angle", lander.MaxLandingAngle},
	}

	for _, r := range rows {
		fmt.Printf("  %-18s %g\n", r.name, r.value)
	}
	fmt.Printf("  %-18s %g + %g * fuel + %g * (max speed - speed) + %g * (max angle - |angle|)\n",
		"landing score", float64(lander.ScoreBase), float64(lander.FuelBonusPerUnit),
		float64(lander.SpeedBonusPerUnit), float64(lander.AngleBonusPerDegree))
}
