// Package tui provides the Bubble Tea driver for the lander.
// It handles the fixed-rate tick loop, key mapping, and a plain telemetry readout.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
// Generation ties the tick to the flight that scheduled it.
type TickMsg struct {
	Time       time.Time
	Generation uint64
}

// tickCmd returns a Bubble Tea command that sends one tick message after the
// interval for the given rate. Each handled tick schedules the next one.
func tickCmd(tickRate int, generation uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Generation: generation}
	})
}
