// lander is a fixed-tick lunar lander simulation for the terminal.
//
// Usage:
//
//	lander play              - Fly the lander interactively
//	lander sim <plan|file>   - Fly a scripted flight plan headlessly
//	lander plans             - List built-in flight plans
//	lander tuning            - Show the physics constants
//
// Global flags:
//
//	--config <path>     - Path to a config YAML (default: search ~/.lander, ./configs)
//	--log-level <level> - Override the configured log level
//	--log-file <path>   - Override the configured log file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "TUI Lander - Land a craft on the pad in your terminal",
	Long: `TUI Lander is a fixed-timestep lander simulation. Fight gravity with
thrust and rotation and settle on the pad slowly and level enough to score.

Available commands:
  play     - Fly the lander interactively
  sim      - Fly a scripted flight plan without a terminal
  plans    - Show the built-in flight plans
  tuning   - Show the physics constants

Examples:
  lander play
  lander sim pad-approach
  lander sim ./my-plan.yaml --trace
  lander plans`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(tuningCmd)
}

// loadConfig resolves the config file and applies the logging flag overrides.
func loadConfig() config.LanderConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg
}

// newLogger builds the process logger. With no file configured, logs go to
// fallback; the returned closer releases the file if one was opened.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	out := fallback
	closer := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "lander",
		Level:           level,
	})
	return logger, closer, nil
}
