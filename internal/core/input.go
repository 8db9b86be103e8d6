package core

// Action is a semantic input, abstracted from physical key presses.
// Hosts map keys to actions; games map actions to their own intents.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - shift one lane left
	ActionRight          // D, Right arrow - shift one lane right
	ActionJump           // Space, W, Up arrow
	ActionPause          // P
	ActionRestart        // R - new run after game over
	ActionBack           // Esc, B - leave the current screen
	ActionQuit           // Q, Ctrl+C
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
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one tick.
// Order of arrival is kept because the first lateral move of a tick wins.
type InputFrame struct {
	order []Action
	seen  map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{seen: make(map[Action]bool)}
}

// Set records an action. Repeats within a frame are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.seen == nil {
		f.seen = make(map[Action]bool)
	}
	if f.seen[a] {
		return
	}
	f.seen[a] = true
	f.order = append(f.order, a)
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.seen[a]
}

// Actions returns the triggered actions in arrival order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, len(f.order))
	copy(out, f.order)
	return out
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.order) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.seen {
		delete(f.seen, k)
	}
	f.order = f.order[:0]
}

// Clone creates an independent copy of this frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for _, a := range f.order {
		clone.Set(a)
	}
	return clone
}
