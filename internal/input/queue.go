package input

import (
	"sync"
	"time"
)

// DefaultHoldWindow is how long a key counts as held after its last press or repeat.
// Terminals report no key release, so a held key is one whose auto repeat keeps arriving.
const DefaultHoldWindow = 600 * time.Millisecond

// Queue collects presses between steps. Presses may be recorded from any goroutine.
type Queue struct {
	mu       sync.Mutex
	window   time.Duration
	presses  []Action
	lastSeen [numActions]time.Time
}

// NewQueue creates a queue with the given hold window.
func NewQueue(window time.Duration) *Queue {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &Queue{window: window}
}

// Press records a press or auto repeat of a at time at.
func (q *Queue) Press(a Action, at time.Time) {
	if a < 0 || a >= numActions {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.presses = append(q.presses, a)
	q.lastSeen[a] = at
}

// Release marks a as released, for backends that report key releases.
func (q *Queue) Release(a Action) {
	if a < 0 || a >= numActions {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.lastSeen[a] = time.Time{}
}

// Drain consumes all pending presses and returns the frame for a step at time at.
func (q *Queue) Drain(at time.Time) Frame {
	q.mu.Lock()
	defer q.mu.Unlock()

	f := Frame{Presses: q.presses}
	q.presses = nil

	for a, seen := range q.lastSeen {
		if !seen.IsZero() && at.Sub(seen) <= q.window {
			f.Held[a] = true
		}
	}

	return f
}
