package flightplan

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/lander"
)

func TestParse(t *testing.T) {
	p, err := Parse([]byte(`
name: test
title: Test Plan
max_ticks: 500
segments:
  - ticks: 3
    thrust: true
  - ticks: 2
    left: true
    right: true
`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if p.Name != "test" || p.Title != "Test Plan" {
		t.Errorf("Parse() name/title = %q/%q", p.Name, p.Title)
	}
	if len(p.Segments) != 2 {
		t.Fatalf("len(Segments) = %d, expected 2", len(p.Segments))
	}
	if p.ScriptedTicks() != 5 {
		t.Errorf("ScriptedTicks() = %d, expected 5", p.ScriptedTicks())
	}
	if p.Limit() != 500 {
		t.Errorf("Limit() = %d, expected 500", p.Limit())
	}
	want := lander.Controls{RotateLeft: true, RotateRight: true}
	if p.Segments[1].Controls() != want {
		t.Errorf("Segments[1].Controls() = %+v, expected %+v", p.Segments[1].Controls(), want)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", "segments: []\n"},
		{"zero-tick segment", "name: x\nsegments:\n  - ticks: 0\n"},
		{"negative cap", "name: x\nmax_ticks: -1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidPlan) {
				t.Errorf("Parse() error = %v, expected ErrInvalidPlan", err)
			}
		})
	}

	if _, err := Parse([]byte("name: [oops\n")); err == nil {
		t.Error("Parse() of malformed YAML should fail")
	}
}

func TestDefaultLimit(t *testing.T) {
	p := Plan{Name: "x"}
	if p.Limit() != DefaultMaxTicks {
		t.Errorf("Limit() = %d, expected %d", p.Limit(), DefaultMaxTicks)
	}
}

func TestScript(t *testing.T) {
	s := NewScript(Plan{Segments: []Segment{
		{Ticks: 2, Thrust: true},
		{Ticks: 1, Left: true},
	}})

	expected := []lander.Controls{
		{Thrust: true},
		{Thrust: true},
		{RotateLeft: true},
		{},
		{},
	}

	for i, want := range expected {
		if got := s.SnapshotControls(); got != want {
			t.Errorf("tick %d: SnapshotControls() = %+v, expected %+v", i, got, want)
		}
	}
	if !s.Done() {
		t.Error("script should be done after its segments")
	}
}

func TestEmptyScriptIsDone(t *testing.T) {
	s := NewScript(Plan{})
	if !s.Done() {
		t.Error("empty script should start done")
	}
	if s.SnapshotControls() != (lander.Controls{}) {
		t.Error("empty script should return no controls")
	}
}
