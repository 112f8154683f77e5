// Package notify delivers user facing notifications.
package notify

import (
	"fmt"
)

// Notification keys.
const (
	KeyEnabled  = "orthocamera.enabled"
	KeyDisabled = "orthocamera.disabled"
	KeyFixed    = "orthocamera.fixed"
	KeyUnfixed  = "orthocamera.unfixed"
	KeyScale    = "orthocamera.scale"
)

// Message is a translatable notification.
type Message struct {
	Key  string
	Args []string
}

// New creates a message for key with formatted arguments.
func New(key string, args ...string) Message {
	return Message{Key: key, Args: args}
}

// Scale creates the scale changed message. Scales are shown with one decimal.
func Scale(x, y float32) Message {
	return New(KeyScale, fmt.Sprintf("%.1f", x), fmt.Sprintf("%.1f", y))
}

// Enabled creates the enabled or disabled message.
func Enabled(enabled bool) Message {
	if enabled {
		return New(KeyEnabled)
	}
	return New(KeyDisabled)
}

// Fixed creates the fixed or unfixed message.
func Fixed(fixed bool) Message {
	if fixed {
		return New(KeyFixed)
	}
	return New(KeyUnfixed)
}
