package core

// Action represents a semantic viewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionPause            // P, Space - freeze or resume the clock
	ActionStep             // . - advance one frame while paused
	ActionNextShape        // Tab - switch to the next registered shape
	ActionSnapshot         // Ctrl+S - store the current frame
	ActionReset            // R - rewind the clock to zero
	ActionBack             // B, Esc - return to the menu
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionNextShape:
		return "NextShape"
	case ActionSnapshot:
		return "Snapshot"
	case ActionReset:
		return "Reset"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
