package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-lander/internal/flightplan"
)

var flagTrace bool

var simCmd = &cobra.Command{
	Use:   "sim <plan|file>",
	Short: "Fly a flight plan headlessly",
	Long: `Fly a built-in flight plan, or a plan YAML file, in simulated time and
report the outcome. The digest identifies the final state bit for bit, so two
runs of the same plan always print the same digest.

With --trace the launch state and every tick are written as YAML.

Examples:
  lander sim freefall
  lander sim pad-approach --trace
  lander sim ./my-plan.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print every tick as YAML")
}

func runSim(_ *cobra.Command, args []string) {
	plan, err := flightplan.Resolve(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'lander plans' to see built-in plans.")
		os.Exit(1)
	}

	cfg := loadConfig()
	logger, closeLog, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	res, runErr := flightplan.Run(plan, flightplan.Options{Logger: logger, Trace: flagTrace})
	if runErr != nil && !errors.Is(runErr, flightplan.ErrNoOutcome) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	if flagTrace {
		enc := yaml.NewEncoder(os.Stdout)
		if err := enc.Encode(res.Trace); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing trace: %v\n", err)
			os.Exit(1)
		}
		enc.Close()
		fmt.Println()
	}

	final := res.Final
	fmt.Printf("plan:     %s\n", res.Plan)
	fmt.Printf("outcome:  %s\n", final.Phase())
	fmt.Printf("ticks:    %d\n", res.Ticks)
	fmt.Printf("position: x %.3f  y %.3f\n", final.X(), final.Y())
	fmt.Printf("speed:    %.3f\n", final.Speed())
	fmt.Printf("angle:    %.1f\n", final.Angle())
	fmt.Printf("fuel:     %.1f\n", final.Fuel())
	fmt.Printf("score:    %d\n", final.Score())
	fmt.Printf("digest:   %016x\n", res.Digest)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", runErr)
		os.Exit(2)
	}
}
