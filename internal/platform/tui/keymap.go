package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// KeyMap translates Bubble Tea key messages to lander actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Thrust      key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	Start       key.Binding
	Restart     key.Binding
	Quit        key.Binding
}

// NewKeyMap builds bindings from configuration.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	return KeyMap{
		Thrust:      binding(cfg.Thrust, "thrust"),
		RotateLeft:  binding(cfg.RotateLeft, "rotate left"),
		RotateRight: binding(cfg.RotateRight, "rotate right"),
		Start:       binding(cfg.Start, "launch"),
		Restart:     binding(cfg.Restart, "fly again"),
		Quit:        binding(cfg.Quit, "quit"),
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().Keys)
}

// binding creates a key binding whose help text lists its keys.
func binding(keys []string, desc string) key.Binding {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// MapKey translates a key message to an action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Thrust):
		return core.ActionThrust
	case key.Matches(msg, k.RotateLeft):
		return core.ActionRotateLeft
	case key.Matches(msg, k.RotateRight):
		return core.ActionRotateRight
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.RotateLeft, k.RotateRight, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Thrust, k.RotateLeft, k.RotateRight},
		{k.Start, k.Restart, k.Quit},
	}
}
