package mission

import (
	"sync"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
)

// HeldControls tracks which flight controls are currently held.
// Terminals report key presses but not releases, so a press keeps its
// control held for a fixed number of ticks; key auto-repeat refreshes it.
// Presses may arrive from any goroutine; the driver samples once per tick.
type HeldControls struct {
	mu     sync.Mutex
	window uint64
	now    uint64
	until  map[core.Action]uint64
}

// NewHeldControls creates a tracker that holds each press for window ticks.
func NewHeldControls(window int) *HeldControls {
	if window < 1 {
		window = 1
	}
	return &HeldControls{
		window: uint64(window),
		until:  make(map[core.Action]uint64),
	}
}

// Press marks a flight control as held. Other actions are ignored.
func (h *HeldControls) Press(a core.Action) {
	if !a.IsFlightControl() {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.until[a] = h.now + h.window
}

// Release drops a control immediately, for sources that report releases.
func (h *HeldControls) Release(a core.Action) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.until, a)
}

// Reset releases every control.
func (h *HeldControls) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.until)
}

// Advance moves the tracker to the next tick.
func (h *HeldControls) Advance() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.now++
}

// Held reports whether the control is held at the current tick.
func (h *HeldControls) Held(a core.Action) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.held(a)
}

// held reports a control's state. Callers hold h.mu.
func (h *HeldControls) held(a core.Action) bool {
	return h.now < h.until[a]
}

// SnapshotControls returns the held flight controls for this tick.
// All three flags are read under one lock, so a concurrent press lands
// wholly before or after the sample.
func (h *HeldControls) SnapshotControls() lander.Controls {
	h.mu.Lock()
	defer h.mu.Unlock()
	return lander.Controls{
		Thrust:      h.held(core.ActionThrust),
		RotateLeft:  h.held(core.ActionRotateLeft),
		RotateRight: h.held(core.ActionRotateRight),
	}
}
