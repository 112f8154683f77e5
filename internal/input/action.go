// Package input turns raw key presses into per-step input frames.
package input

import (
	"github.com/mgnsk/orthocam/pkg/gfx"
)

// Action is a bindable camera action.
type Action int

// Actions.
const (
	Toggle Action = iota
	ScaleIncrease
	ScaleDecrease
	OpenOptions
	FixCamera
	RotateUp
	RotateDown
	RotateLeft
	RotateRight

	numActions
)

var actionNames = [numActions]string{
	Toggle:        "toggle",
	ScaleIncrease: "scale_increase",
	ScaleDecrease: "scale_decrease",
	OpenOptions:   "options",
	FixCamera:     "fix_camera",
	RotateUp:      "fixed_camera_rotate_up",
	RotateDown:    "fixed_camera_rotate_down",
	RotateLeft:    "fixed_camera_rotate_left",
	RotateRight:   "fixed_camera_rotate_right",
}

// Actions lists every action in binding order.
func Actions() []Action {
	actions := make([]Action, numActions)
	for i := range actions {
		actions[i] = Action(i)
	}
	return actions
}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return "unknown"
	}
	return actionNames[a]
}

// TranslationKey returns the key binding's translation key.
func (a Action) TranslationKey() string {
	return "orthocamera.key." + a.String()
}

// Rotation returns the rotation direction of a rotate action.
func (a Action) Rotation() (gfx.RotateDirection, bool) {
	switch a {
	case RotateUp:
		return gfx.RotateUp, true
	case RotateDown:
		return gfx.RotateDown, true
	case RotateLeft:
		return gfx.RotateLeft, true
	case RotateRight:
		return gfx.RotateRight, true
	}
	return 0, false
}

// Bindings maps key runes to actions.
type Bindings map[rune]Action

// DefaultBindings returns the stock key layout. The rotate keys sit on the number pad digits.
func DefaultBindings() Bindings {
	return Bindings{
		'z': Toggle,
		'=': ScaleIncrease,
		'-': ScaleDecrease,
		']': OpenOptions,
		'[': FixCamera,
		'8': RotateUp,
		'2': RotateDown,
		'4': RotateLeft,
		'6': RotateRight,
	}
}

// Lookup returns the action bound to r.
func (b Bindings) Lookup(r rune) (Action, bool) {
	a, ok := b[r]
	return a, ok
}

// Key returns the rune bound to a, if any.
func (b Bindings) Key(a Action) (rune, bool) {
	for r, bound := range b {
		if bound == a {
			return r, true
		}
	}
	return 0, false
}
