package flightplan

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/lander"
	"github.com/vovakirdan/tui-lander/internal/mission"
)

// ErrNoOutcome is returned when a flight is still airborne at its tick cap.
var ErrNoOutcome = errors.New("flightplan: no outcome before tick limit")

// Options configures a headless run.
type Options struct {
	Logger *log.Logger // nil discards logs
	Trace  bool        // record a snapshot for every published state
}

// Result is the outcome of a headless run.
type Result struct {
	Plan   string
	Final  lander.State
	Ticks  int
	Digest uint64            // hash of the final snapshot
	Trace  []lander.Snapshot // launch state plus one entry per tick, if requested
}

// Run flies a plan from launch to touchdown in simulated time.
func Run(p Plan, opts Options) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	res := Result{Plan: p.Name}
	missionOpts := []mission.Option{mission.WithLogger(logger)}
	if opts.Trace {
		missionOpts = append(missionOpts, mission.WithObserver(func(s lander.State) {
			res.Trace = append(res.Trace, s.Snapshot())
		}))
	}

	m := mission.New(missionOpts...)
	if err := m.Start(); err != nil {
		return Result{}, err
	}

	script := NewScript(p)
	limit := p.Limit()
	coasting := false

	for m.Running() && res.Ticks < limit {
		if !coasting && script.Done() {
			coasting = true
			logger.Debug("script finished, coasting", "plan", p.Name, "tick", res.Ticks)
		}
		if _, err := m.Advance(script); err != nil {
			return Result{}, err
		}
		res.Ticks++
	}

	res.Final = m.State()
	snap := res.Final.Snapshot()
	res.Digest = snap.Hash()

	if m.Running() {
		return res, fmt.Errorf("%w: %s after %d ticks", ErrNoOutcome, p.Name, res.Ticks)
	}
	return res, nil
}

// LoadFile reads a plan from a YAML file.
func LoadFile(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("flightplan: read %s: %w", path, err)
	}
	return Parse(data)
}

// Resolve returns a registered plan by name, or loads it from a file path.
func Resolve(nameOrPath string) (Plan, error) {
	if Exists(nameOrPath) {
		return Get(nameOrPath)
	}
	return LoadFile(nameOrPath)
}
