// Package dispatch applies per-step input to the camera configuration.
package dispatch

import (
	"github.com/mgnsk/orthocam/internal/config"
	"github.com/mgnsk/orthocam/internal/input"
	"github.com/mgnsk/orthocam/internal/notify"
)

// ScaleStep is the factor one scale key press multiplies or divides the scale by.
const ScaleStep float32 = 1.1

// rotations are the level triggered rotate actions in application order.
var rotations = []input.Action{
	input.RotateLeft,
	input.RotateRight,
	input.RotateUp,
	input.RotateDown,
}

// Outcome is what a step of input produced.
type Outcome struct {
	// Messages are the notifications surfaced this step.
	Messages []notify.Message
	// OpenOptions is set when the settings form was requested.
	OpenOptions bool
}

// Dispatcher turns input frames into camera mutations and notifications.
type Dispatcher struct {
	view   config.View
	sink   notify.Sink
	opener func()
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSink forwards surfaced notifications to sink.
func WithSink(sink notify.Sink) Option {
	return func(d *Dispatcher) {
		d.sink = sink
	}
}

// WithOpener calls open when the settings form is requested.
func WithOpener(open func()) Option {
	return func(d *Dispatcher) {
		d.opener = open
	}
}

// New creates a dispatcher driving the host view.
func New(view config.View, options ...Option) *Dispatcher {
	d := &Dispatcher{view: view}
	for _, option := range options {
		option(d)
	}
	return d
}

// Dispatch applies one step of input. It must run after the camera's Tick for the step.
//
// At most one kind of notification is surfaced per step, by priority:
// toggle, then scale, then fix. Rotation and the options request never notify.
func (d *Dispatcher) Dispatch(cam *config.Camera, f input.Frame) Outcome {
	var out Outcome

	for _, a := range f.Presses {
		if a == input.Toggle {
			cam.Toggle(d.view)
			out.Messages = append(out.Messages, notify.Enabled(cam.Enabled()))
		}
	}

	// Increases apply before decreases; the order matters once a bound is hit.
	ups, downs := f.Count(input.ScaleIncrease), f.Count(input.ScaleDecrease)
	scaled := cam.Enabled() && ups+downs > 0
	if scaled {
		for i := 0; i < ups; i++ {
			cam.SetScaleX(cam.CurrentScaleX() * ScaleStep)
			cam.SetScaleY(cam.CurrentScaleY() * ScaleStep)
		}
		for i := 0; i < downs; i++ {
			cam.SetScaleX(cam.CurrentScaleX() / ScaleStep)
			cam.SetScaleY(cam.CurrentScaleY() / ScaleStep)
		}
	}
	if scaled && len(out.Messages) == 0 {
		out.Messages = append(out.Messages, notify.Scale(cam.CurrentScaleX(), cam.CurrentScaleY()))
	}

	fixes := f.Count(input.FixCamera)
	for i := 0; i < fixes; i++ {
		cam.SetFixed(!cam.Fixed(), d.view)
	}
	if fixes > 0 && len(out.Messages) == 0 {
		out.Messages = append(out.Messages, notify.Fixed(cam.Fixed()))
	}

	for _, a := range rotations {
		if f.IsHeld(a) {
			dir, _ := a.Rotation()
			cam.Rotate(dir)
		}
	}

	out.OpenOptions = f.Count(input.OpenOptions) > 0

	if d.sink != nil {
		for _, m := range out.Messages {
			d.sink.Append(m)
		}
	}
	if out.OpenOptions && d.opener != nil {
		d.opener()
	}

	return out
}
