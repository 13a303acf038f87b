// Package flightplan runs scripted flights through the lander simulation
// without a terminal. A plan is a list of control segments; once the script
// runs out the craft coasts with no controls until it lands or crashes.
package flightplan

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-lander/internal/lander"
)

// DefaultMaxTicks caps a flight that never reaches an outcome.
const DefaultMaxTicks = 20000

// ErrInvalidPlan is wrapped by every plan validation failure.
var ErrInvalidPlan = errors.New("flightplan: invalid plan")

// Segment holds a set of controls for a number of ticks.
type Segment struct {
	Ticks  int  `yaml:"ticks"`
	Thrust bool `yaml:"thrust"`
	Left   bool `yaml:"left"`
	Right  bool `yaml:"right"`
}

// Controls returns the segment's controls snapshot.
func (s Segment) Controls() lander.Controls {
	return lander.Controls{
		Thrust:      s.Thrust,
		RotateLeft:  s.Left,
		RotateRight: s.Right,
	}
}

// Plan is a named control script.
type Plan struct {
	Name        string    `yaml:"name"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	MaxTicks    int       `yaml:"max_ticks"`
	Segments    []Segment `yaml:"segments"`
}

// Parse decodes and validates a plan from YAML.
func Parse(data []byte) (Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("flightplan: parse: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Validate checks the plan for structural errors.
func (p Plan) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidPlan)
	}
	if p.MaxTicks < 0 {
		return fmt.Errorf("%w: %s: max_ticks must not be negative", ErrInvalidPlan, p.Name)
	}
	for i, s := range p.Segments {
		if s.Ticks < 1 {
			return fmt.Errorf("%w: %s: segment %d has %d ticks", ErrInvalidPlan, p.Name, i, s.Ticks)
		}
	}
	return nil
}

// ScriptedTicks returns the number of ticks covered by segments.
func (p Plan) ScriptedTicks() int {
	total := 0
	for _, s := range p.Segments {
		total += s.Ticks
	}
	return total
}

// Limit returns the tick cap for the plan.
func (p Plan) Limit() int {
	if p.MaxTicks > 0 {
		return p.MaxTicks
	}
	return DefaultMaxTicks
}

// Script replays a plan's segments one tick at a time.
// It implements mission.ControlSource.
type Script struct {
	segments []Segment
	index    int
	used     int
}

// NewScript creates a script positioned at the first segment.
func NewScript(p Plan) *Script {
	return &Script{segments: p.Segments}
}

// SnapshotControls returns the controls for the next tick and moves on.
// After the last segment it returns no controls.
func (s *Script) SnapshotControls() lander.Controls {
	if s.Done() {
		return lander.Controls{}
	}
	seg := s.segments[s.index]
	s.used++
	if s.used >= seg.Ticks {
		s.index++
		s.used = 0
	}
	return seg.Controls()
}

// Done reports whether every segment has been played.
func (s *Script) Done() bool {
	return s.index >= len(s.segments)
}
