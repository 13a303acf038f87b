package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/flightplan"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List built-in flight plans",
	Long:  `Shows the flight plans bundled with the lander.`,
	Run:   runPlans,
}

func runPlans(_ *cobra.Command, _ []string) {
	plans := flightplan.List()

	if len(plans) == 0 {
		fmt.Println("No flight plans available.")
		return
	}

	fmt.Println("Built-in flight plans:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range plans {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %6s  %s\n", maxNameLen, "Name", "Ticks", "Title")
	fmt.Printf("  %-*s  %6s  %s\n", maxNameLen, "----", "-----", "-----")

	for _, p := range plans {
		fmt.Printf("  %-*s  %6d  %s\n", maxNameLen, p.Name, p.Ticks, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'lander sim <name>' to fly a plan.")
}
