package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

func TestNewKeyMapFromConfig(t *testing.T) {
	cfg := config.DefaultConfig().Keys
	cfg.Thrust = []string{"k"}
	cfg.Quit = []string{"esc"}
	keys := NewKeyMap(cfg)

	if got := keys.MapKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}); got != core.ActionThrust {
		t.Errorf("rebound thrust = %v, expected thrust", got)
	}
	if got := keys.MapKey(tea.KeyMsg{Type: tea.KeyUp}); got != core.ActionNone {
		t.Errorf("unbound up = %v, expected none", got)
	}
	if got := keys.MapKey(tea.KeyMsg{Type: tea.KeyEscape}); got != core.ActionQuit {
		t.Errorf("rebound quit = %v, expected quit", got)
	}
}

func TestBindingHelpNamesSpace(t *testing.T) {
	b := binding([]string{"up", " "}, "thrust")

	if got := b.Help().Key; got != "up/space" {
		t.Errorf("help key = %q, expected up/space", got)
	}
	if got := b.Help().Desc; got != "thrust" {
		t.Errorf("help desc = %q, expected thrust", got)
	}
}

func TestHelpCoversEveryBinding(t *testing.T) {
	keys := DefaultKeyMap()

	count := 0
	for _, group := range keys.FullHelp() {
		count += len(group)
	}
	if count != 6 {
		t.Errorf("FullHelp lists %d bindings, expected 6", count)
	}
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
}
