// Package mission drives the lander simulation: it owns the single state,
// applies the start and restart commands, and steps the simulation once per
// tick while the craft is in flight. It has no notion of wall-clock time;
// callers decide the cadence and must stop ticking when Running reports false.
package mission

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/lander"
)

var (
	// ErrNotPlaying is returned when a tick arrives outside the playing phase.
	ErrNotPlaying = errors.New("mission: tick outside playing phase")

	// ErrBadTransition is returned when a command does not apply to the current phase.
	ErrBadTransition = errors.New("mission: invalid phase transition")
)

// ControlSource produces the controls snapshot for one tick.
type ControlSource interface {
	SnapshotControls() lander.Controls
}

// Observer receives every state the mission publishes.
type Observer func(lander.State)

// Option configures a Mission.
type Option func(*Mission)

// WithLogger sets the logger used for phase transitions and contract violations.
func WithLogger(l *log.Logger) Option {
	return func(m *Mission) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithObserver registers an observer for published states.
func WithObserver(o Observer) Option {
	return func(m *Mission) {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
}

// Mission owns the authoritative simulation state.
// It is not safe for concurrent use; a single driver goroutine owns it.
type Mission struct {
	state      lander.State
	generation uint64 // bumped on every launch to retire stale cadences
	observers  []Observer
	logger     *log.Logger
}

// New creates a mission waiting at the title phase.
func New(opts ...Option) *Mission {
	m := &Mission{
		state:  lander.FreshState(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current state.
func (m *Mission) State() lander.State {
	return m.state
}

// Running reports whether the cadence should be active.
func (m *Mission) Running() bool {
	return m.state.Phase() == lander.PhasePlaying
}

// Generation identifies the current flight. Ticks scheduled for an older
// generation belong to a cadence that has been torn down.
func (m *Mission) Generation() uint64 {
	return m.generation
}

// Start launches from the title phase.
func (m *Mission) Start() error {
	if phase := m.state.Phase(); phase != lander.PhaseTitle {
		return fmt.Errorf("%w: start from %s", ErrBadTransition, phase)
	}
	m.launch("start")
	return nil
}

// Restart launches a fresh flight after landing or crashing.
func (m *Mission) Restart() error {
	if phase := m.state.Phase(); !phase.Terminal() {
		return fmt.Errorf("%w: restart from %s", ErrBadTransition, phase)
	}
	m.launch("restart")
	return nil
}

// launch replaces the state with a fresh one in flight.
func (m *Mission) launch(reason string) {
	m.state = lander.Launch()
	m.generation++
	m.logger.Info("launch", "reason", reason, "generation", m.generation)
	m.publish()
}

// Tick advances the flight by one step using the given controls.
func (m *Mission) Tick(c lander.Controls) (lander.State, error) {
	if !m.Running() {
		m.logger.Warn("tick rejected", "phase", m.state.Phase(), "generation", m.generation)
		return m.state, fmt.Errorf("%w: phase %s", ErrNotPlaying, m.state.Phase())
	}

	m.state = lander.Step(m.state, c)

	if m.state.Phase().Terminal() {
		m.logger.Info("touchdown",
			"outcome", m.state.Phase(),
			"tick", m.state.Tick(),
			"x", m.state.X(),
			"speed", m.state.Speed(),
			"angle", m.state.Angle(),
			"fuel", m.state.Fuel(),
			"score", m.state.Score(),
		)
	}

	m.publish()
	return m.state, nil
}

// Advance samples the source once and ticks with that snapshot.
func (m *Mission) Advance(src ControlSource) (lander.State, error) {
	return m.Tick(src.SnapshotControls())
}

// publish hands the current state to every observer.
func (m *Mission) publish() {
	for _, o := range m.observers {
		o(m.state)
	}
}
