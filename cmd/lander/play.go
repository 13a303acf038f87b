package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly the lander",
	Long: `Start an interactive flight.

Controls (defaults, see configs/lander.yaml):
  Up/W/Space  - Thrust
  Left/A      - Rotate left
  Right/D     - Rotate right
  Enter       - Launch
  R           - Fly again (after landing or crashing)
  Q/Ctrl+C    - Quit

Terminals only report key presses, so a control stays engaged for a few
ticks after each press; hold the key to let auto-repeat keep it on.

Examples:
  lander play
  lander play --config ./my-lander.yaml
  lander play --log-file ./lander.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		fmt.Fprintln(os.Stderr, "Run 'lander sim <plan>' to fly without one.")
		os.Exit(1)
	}

	cfg := loadConfig()

	// Logs would corrupt the alt screen, so they are dropped unless a file is set
	logger, closeLog, err := newLogger(cfg.Log, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(cfg.Runtime(), tui.NewKeyMap(cfg.Keys), logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running lander: %v\n", runErr)
		os.Exit(1)
	}
}
