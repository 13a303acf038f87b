package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultConfig returns the default lander configuration.
func DefaultConfig() LanderConfig {
	return LanderConfig{
		Loop: LoopConfig{
			TickRate:  60,
			HoldTicks: 8,
		},
		Keys: KeyConfig{
			Thrust:      []string{"up", "w", " "},
			RotateLeft:  []string{"left", "a"},
			RotateRight: []string{"right", "d"},
			Start:       []string{"enter"},
			Restart:     []string{"r"},
			Quit:        []string{"q", "ctrl+c"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLanderYAML
}
