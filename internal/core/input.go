package core

// Action represents a semantic game action, abstracted from physical key
// presses. The simulation consumes these as discrete events; it is agnostic
// to whether they came from a local keyboard or an SSH session.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow, H - shift one lane left
	ActionRight        // D, Right arrow, L - shift one lane right
	ActionStart        // Enter, Space - start or restart a run
	ActionPause        // P, Esc - pause/unpause
	ActionQuit         // Q, Ctrl+C - exit the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
