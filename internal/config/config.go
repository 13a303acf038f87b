// Package config provides YAML-based configuration loading for the lander
// driver: loop cadence, key bindings and logging.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// LanderConfig contains all driver configuration.
type LanderConfig struct {
	Loop LoopConfig `yaml:"loop"`
	Keys KeyConfig  `yaml:"keys"`
	Log  LogConfig  `yaml:"log"`
}

// LoopConfig defines the tick cadence and input sampling.
type LoopConfig struct {
	TickRate  int `yaml:"tick_rate"`
	HoldTicks int `yaml:"hold_ticks"`
}

// KeyConfig maps each action to the key names that trigger it.
// Names use Bubble Tea's key strings ("up", "ctrl+c", " ").
type KeyConfig struct {
	Thrust      []string `yaml:"thrust"`
	RotateLeft  []string `yaml:"rotate_left"`
	RotateRight []string `yaml:"rotate_right"`
	Start       []string `yaml:"start"`
	Restart     []string `yaml:"restart"`
	Quit        []string `yaml:"quit"`
}

// LogConfig defines logger level and destination.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Runtime returns the loop settings as a RuntimeConfig.
func (c LanderConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate:  c.Loop.TickRate,
		HoldTicks: c.Loop.HoldTicks,
	}.Normalize()
}

// Bindings returns the key lists indexed by action.
func (k KeyConfig) Bindings() map[core.Action][]string {
	return map[core.Action][]string{
		core.ActionThrust:      k.Thrust,
		core.ActionRotateLeft:  k.RotateLeft,
		core.ActionRotateRight: k.RotateRight,
		core.ActionStart:       k.Start,
		core.ActionRestart:     k.Restart,
		core.ActionQuit:        k.Quit,
	}
}

// Validate checks ranges, bindings and the log level.
func (c LanderConfig) Validate() error {
	if c.Loop.TickRate < 1 || c.Loop.TickRate > 1000 {
		return fmt.Errorf("%w: loop.tick_rate %d outside [1, 1000]", ErrInvalid, c.Loop.TickRate)
	}
	if c.Loop.HoldTicks < 1 {
		return fmt.Errorf("%w: loop.hold_ticks must be at least 1, got %d", ErrInvalid, c.Loop.HoldTicks)
	}

	owner := make(map[string]core.Action)
	for action, keys := range c.Keys.Bindings() {
		if len(keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %s", ErrInvalid, action)
		}
		for _, k := range keys {
			if prev, taken := owner[k]; taken && prev != action {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, action)
			}
			owner[k] = action
		}
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
		}
	}
	return nil
}
