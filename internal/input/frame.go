package input

// Frame is the input consumed by one simulation step.
type Frame struct {
	// Presses are the edge events since the previous step, in arrival order.
	Presses []Action
	// Held is the level state of each action at the step.
	Held [numActions]bool
}

// Count returns how many times a was pressed in the frame.
func (f Frame) Count(a Action) int {
	n := 0
	for _, p := range f.Presses {
		if p == a {
			n++
		}
	}
	return n
}

// IsHeld reports whether a is held at the step.
func (f Frame) IsHeld(a Action) bool {
	if a < 0 || a >= numActions {
		return false
	}
	return f.Held[a]
}

// NewFrame builds a frame from presses and held actions.
func NewFrame(presses []Action, held ...Action) Frame {
	f := Frame{Presses: presses}
	for _, a := range held {
		if a >= 0 && a < numActions {
			f.Held[a] = true
		}
	}
	return f
}
