package core

// Action is a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - held movement
	ActionRight          // D, Right arrow - held movement
	ActionJump           // W, Space, Up - held jump
	ActionShoot          // J - edge triggered, one bullet per press
	ActionPause          // P - freeze the frame clock
	ActionRestart        // R - start a new run
	ActionQuit           // Q, Ctrl+C - end the session
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
	case ActionJump:
		return "Jump"
	case ActionShoot:
		return "Shoot"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsHeld reports whether the action is sampled as a held control each frame,
// as opposed to firing once per key event.
func (a Action) IsHeld() bool {
	return a == ActionLeft || a == ActionRight || a == ActionJump
}

// Intent is the set of movement controls held during one simulation step.
// The zero value means nothing is pressed.
type Intent struct {
	Left  bool
	Right bool
	Jump  bool
}

// Intent key names accepted by IntentFromKeys.
const (
	KeyLeft  = "left"
	KeyRight = "right"
	KeyJump  = "jump"
)

// IntentFromKeys builds an intent from a loosely populated key map.
// Missing keys and a nil map count as not pressed.
func IntentFromKeys(keys map[string]bool) Intent {
	return Intent{
		Left:  keys[KeyLeft],
		Right: keys[KeyRight],
		Jump:  keys[KeyJump],
	}
}

// IntentFromActions builds an intent from the held actions in a set.
func IntentFromActions(held map[Action]bool) Intent {
	return Intent{
		Left:  held[ActionLeft],
		Right: held[ActionRight],
		Jump:  held[ActionJump],
	}
}
