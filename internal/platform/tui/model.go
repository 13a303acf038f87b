package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
	"github.com/vovakirdan/tui-lander/internal/mission"
)

// Model is the Bubble Tea model for flying the lander.
type Model struct {
	mission  *mission.Mission
	held     *mission.HeldControls
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model waiting at the title phase.
func NewModel(cfg core.RuntimeConfig, keys KeyMap, logger *log.Logger) Model {
	cfg = cfg.Normalize()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		mission: mission.New(mission.WithLogger(logger)),
		held:    mission.NewHeldControls(cfg.HoldTicks),
		keys:    keys,
		help:    help.New(),
		config:  cfg,
		logger:  logger,
	}
}

// Init starts nothing: the cadence only runs once the craft is launched.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		if err := m.mission.Start(); err != nil {
			return m, nil
		}
		return m, m.beginCadence()

	case core.ActionRestart:
		if err := m.mission.Restart(); err != nil {
			return m, nil
		}
		return m, m.beginCadence()

	case core.ActionThrust, core.ActionRotateLeft, core.ActionRotateRight:
		m.held.Press(action)
	}

	return m, nil
}

// beginCadence clears held controls and schedules the first tick of a new flight.
// Ticks still in flight from an older cadence carry an old generation and are dropped.
func (m Model) beginCadence() tea.Cmd {
	m.held.Reset()
	return tickCmd(m.config.TickRate, m.mission.Generation())
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.mission.Generation() || !m.mission.Running() {
		// Cadence was torn down or replaced
		return m, nil
	}

	_, err := m.mission.Advance(m.held)
	m.held.Advance()
	if err != nil {
		if !errors.Is(err, mission.ErrNotPlaying) {
			m.logger.Error("tick failed", "error", err)
		}
		return m, nil
	}

	if !m.mission.Running() {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, msg.Generation)
}

// State returns the current simulation state.
func (m Model) State() lander.State {
	return m.mission.State()
}

// View renders the telemetry readout.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.mission.State()
	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("LANDER"))
	b.WriteString(labelStyle.Render(fmt.Sprintf("   phase: %-8s tick: %d", s.Phase(), s.Tick())))
	b.WriteString("\n\n")

	// Telemetry rows
	pad := ""
	if s.OverPad() {
		pad = "  " + padMarkerStyle.Render("[over pad]")
	}
	row(&b, "position", fmt.Sprintf("x %6.2f   y %6.2f   altitude %6.2f%s", s.X(), s.Y(), s.Altitude(), pad))
	row(&b, "velocity", fmt.Sprintf("vx %6.3f  vy %6.3f  speed %5.3f (max %.2f)",
		s.Velocity().X(), s.Velocity().Y(), s.Speed(), lander.MaxLandingSpeed))
	row(&b, "attitude", fmt.Sprintf("%6.1f deg (landing max %.0f)", s.Angle(), lander.MaxLandingAngle))
	row(&b, "fuel", fmt.Sprintf("%6.1f / %.0f", s.Fuel(), lander.FuelCapacity))
	row(&b, "controls", controlsLabel(s.Controls()))
	b.WriteString("\n")

	if s.Phase() == lander.PhaseTitle {
		b.WriteString(hintStyle.Render(fmt.Sprintf("Press %s to launch. Land on the pad between x=%.0f and x=%.0f.",
			m.keys.Start.Help().Key, lander.PadLeft, lander.PadRight)))
		b.WriteString("\n")
	} else if banner := phaseBanner(s.Phase(), s.Score(), m.keys.Restart.Help().Key); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}

	// Help bar
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// row writes one labelled telemetry line.
func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-9s", label)))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}

// phaseBanner returns the outcome banner, or "" while no outcome exists.
func phaseBanner(phase lander.Phase, score int, restartKey string) string {
	hint := hintStyle.Render(fmt.Sprintf("   press %s to fly again", restartKey))
	switch phase {
	case lander.PhaseLanded:
		return landedStyle.Render(fmt.Sprintf("LANDED  score %d", score)) + hint
	case lander.PhaseCrashed:
		return crashedStyle.Render("CRASHED") + hint
	}
	return ""
}

// controlsLabel lists the controls applied on the last tick.
func controlsLabel(c lander.Controls) string {
	var parts []string
	if c.Thrust {
		parts = append(parts, "THRUST")
	}
	if c.RotateLeft {
		parts = append(parts, "LEFT")
	}
	if c.RotateRight {
		parts = append(parts, "RIGHT")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

// Run starts the Bubble Tea program.
func Run(cfg core.RuntimeConfig, keys KeyMap, logger *log.Logger) error {
	model := NewModel(cfg, keys, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
