package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lander.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadWithoutFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".lander")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("loop:\n  hold_ticks: 12\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Loop.HoldTicks != 12 {
		t.Errorf("HoldTicks = %d, expected 12 from user config", cfg.Loop.HoldTicks)
	}
}

func TestLoadBrokenUserConfigReported(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"fails validation", "loop:\n  tick_rate: 0\n", true},
		{"malformed yaml", "loop: [unclosed\n", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)

			dir := filepath.Join(home, ".lander")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				t.Fatalf("MkdirAll() failed: %v", err)
			}
			path := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}

			_, err := Load("")
			if err == nil {
				t.Fatal("Load() should report a broken user config instead of using defaults")
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("Load() error = %v, expected it to name %s", err, path)
			}
			if tc.invalid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeConfig(t, `
loop:
  tick_rate: 30
keys:
  thrust: ["k"]
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Loop.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Loop.TickRate)
	}
	// Unset fields keep their defaults
	if cfg.Loop.HoldTicks != DefaultConfig().Loop.HoldTicks {
		t.Errorf("HoldTicks = %d, expected default %d", cfg.Loop.HoldTicks, DefaultConfig().Loop.HoldTicks)
	}
	if !reflect.DeepEqual(cfg.Keys.Thrust, []string{"k"}) {
		t.Errorf("Thrust keys = %v, expected [k]", cfg.Keys.Thrust)
	}
	if !reflect.DeepEqual(cfg.Keys.Quit, DefaultConfig().Keys.Quit) {
		t.Errorf("Quit keys = %v, expected defaults", cfg.Keys.Quit)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected debug", cfg.Log.Level)
	}
}

func TestLoadCustomMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing custom file should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, expected to wrap os.ErrNotExist", err)
	}
}

func TestLoadCustomInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero tick rate", "loop:\n  tick_rate: 0\n"},
		{"huge tick rate", "loop:\n  tick_rate: 5000\n"},
		{"zero hold", "loop:\n  hold_ticks: 0\n"},
		{"empty binding", "keys:\n  quit: []\n"},
		{"shared key", "keys:\n  restart: [\"w\"]\n"},
		{"bad log level", "log:\n  level: loud\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "loop: [unclosed\n"))
	if err == nil {
		t.Fatal("Load() of malformed YAML should fail")
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Loop.TickRate = 120

	rt := cfg.Runtime()
	if rt.TickRate != 120 || rt.HoldTicks != cfg.Loop.HoldTicks {
		t.Errorf("Runtime() = %+v, expected tick rate 120 and hold %d", rt, cfg.Loop.HoldTicks)
	}
}

func TestBindingsCoverEveryAction(t *testing.T) {
	b := DefaultConfig().Keys.Bindings()
	for a := core.ActionThrust; a <= core.ActionQuit; a++ {
		if len(b[a]) == 0 {
			t.Errorf("no default keys for %v", a)
		}
	}
}
