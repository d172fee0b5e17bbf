package core

// Action is a semantic input, abstracted from the physical key.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionPause          // P, Esc
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
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

// Directional reports whether a is one of the four movement actions.
func (a Action) Directional() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame collects the actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool

	// last is the most recent directional action of the frame. Several
	// arrow presses between two ticks collapse into the newest one.
	last Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if a.Directional() {
		f.last = a
	}
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// LastDirection returns the newest directional action, or ActionNone.
func (f InputFrame) LastDirection() Action {
	return f.last
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.last = ActionNone
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	c.last = f.last
	return c
}
