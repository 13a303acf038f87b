package core

// Action represents a semantic driver action, abstracted from physical key presses.
// Flight controls (thrust, rotation) are held; the rest are one-shot commands.
type Action int

const (
	ActionNone        Action = iota
	ActionThrust             // Up, W, Space - fire main engine
	ActionRotateLeft         // Left, A - rotate nose left
	ActionRotateRight        // Right, D - rotate nose right
	ActionStart              // Enter - launch from the title screen
	ActionRestart            // R - fly again after landing or crashing
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsFlightControl reports whether the action is a held flight control
// rather than a one-shot command.
func (a Action) IsFlightControl() bool {
	switch a {
	case ActionThrust, ActionRotateLeft, ActionRotateRight:
		return true
	}
	return false
}
