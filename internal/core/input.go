package core

// Action represents a semantic game action, abstracted from physical key presses.
// Actions are edge-triggered: they are set only on the tick the key was pressed.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump / double jump
	ActionAttack         // J, X - sword swing
	ActionRestart        // R key - restart the current level
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Tri is a three-state direction on one axis.
type Tri int8

const (
	TriNegative Tri = -1
	TriZero     Tri = 0
	TriPositive Tri = 1
)

// Int returns the direction as -1, 0 or 1.
func (t Tri) Int() int { return int(t) }

// String returns a human-readable name for the direction.
func (t Tri) String() string {
	switch t {
	case TriNegative:
		return "Negative"
	case TriPositive:
		return "Positive"
	default:
		return "Zero"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// X is the held horizontal direction (left negative). Y is the vertical
// direction pressed this tick (up negative); the platformer core reads only X
// and the actions. Actions holds the buttons that were just pressed this tick.
type InputFrame struct {
	X, Y Tri

	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame. Held directions are left alone;
// the platform decides when a direction is released.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
