package core

// Action is a discrete control signal held during a simulation tick,
// abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionLeftUp           // W - move left paddle up
	ActionLeftDown         // S - move left paddle down
	ActionRightUp          // Up arrow - move right paddle up (human-vs-human)
	ActionRightDown        // Down arrow - move right paddle down
	ActionReset            // R - reset scores, effects, and ball
	ActionPause            // P, Esc - pause/unpause (host-level)
	ActionQuit             // Q, Ctrl+C - exit (host-level)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionReset:
		return "Reset"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Drag carries pointer control state for one paddle: whether a drag is in
// progress and the vertical delta (canvas units) since the last sample.
type Drag struct {
	Active bool
	DeltaY float64
}

// InputFrame represents the full input state for a single simulation tick:
// the set of currently held control signals plus per-side drag deltas.
type InputFrame struct {
	Actions   map[Action]bool
	LeftDrag  Drag
	RightDrag Drag
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and drag deltas for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.LeftDrag = Drag{}
	f.RightDrag = Drag{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.LeftDrag = f.LeftDrag
	clone.RightDrag = f.RightDrag
	return clone
}
