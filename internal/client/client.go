// Package client wires the camera configuration into the host's step, render and shutdown callbacks.
package client

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/orthocam/internal/config"
	"github.com/mgnsk/orthocam/internal/dispatch"
	"github.com/mgnsk/orthocam/internal/input"
	"github.com/mgnsk/orthocam/internal/notify"
	"github.com/mgnsk/orthocam/internal/store"
	"github.com/mgnsk/orthocam/pkg/gfx"
	"github.com/sirupsen/logrus"
)

// Client owns the camera configuration for one session.
type Client struct {
	store      *store.Store
	cam        *config.Camera
	view       config.View
	dispatcher *dispatch.Dispatcher
	log        logrus.FieldLogger
	minExtent  float32
	sinks      notify.MultiSink
	opener     func()
	closed     bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger. The default is the standard logrus logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithSink adds a notification sink.
func WithSink(sink notify.Sink) Option {
	return func(c *Client) {
		c.sinks = append(c.sinks, sink)
	}
}

// WithOpener calls open when the settings form is requested.
func WithOpener(open func()) Option {
	return func(c *Client) {
		c.opener = open
	}
}

// WithMinExtent sets the projection half extent floor. The default is config.MinScale.
func WithMinExtent(v float32) Option {
	return func(c *Client) {
		c.minExtent = v
	}
}

// New loads the camera configuration from s.
// The only error is an unusable bundled default document.
func New(s *store.Store, view config.View, options ...Option) (*Client, error) {
	c := &Client{
		store:     s,
		view:      view,
		log:       logrus.StandardLogger(),
		minExtent: config.MinScale,
	}
	for _, option := range options {
		option(c)
	}

	rec, err := s.Load()
	if err != nil {
		return nil, errorx.Decorate(err, "load camera config")
	}
	c.cam = config.FromRecord(rec)

	c.dispatcher = dispatch.New(view,
		dispatch.WithSink(c.sinks),
		dispatch.WithOpener(c.open),
	)

	c.log.WithFields(logrus.Fields{
		"enabled": c.cam.Enabled(),
		"fixed":   c.cam.Fixed(),
	}).Info("camera config loaded")

	return c, nil
}

// Camera returns the live configuration.
func (c *Client) Camera() *config.Camera {
	return c.cam
}

// PreStep runs before the step's input is applied.
func (c *Client) PreStep() {
	c.cam.Tick()
}

// PostStep applies the step's input.
func (c *Client) PostStep(f input.Frame) dispatch.Outcome {
	return c.dispatcher.Dispatch(c.cam, f)
}

// Render returns the orthographic projection for a frame.
// ok is false while the camera is disabled and the host projection applies.
func (c *Client) Render(fraction, width, height float32) (m mgl32.Mat4, ok bool) {
	if !c.cam.Enabled() {
		return mgl32.Mat4{}, false
	}
	return gfx.OrthoProjection(c.cam, fraction, width, height, c.minExtent), true
}

// FixedView returns the locked view rotation for a frame.
// ok is false unless the camera is both enabled and fixed.
func (c *Client) FixedView(fraction float32) (m mgl32.Mat4, ok bool) {
	if !c.cam.Enabled() || !c.cam.Fixed() {
		return mgl32.Mat4{}, false
	}
	return gfx.FixedView(c.cam.FixedYaw(fraction), c.cam.FixedPitch(fraction)), true
}

// Shutdown saves the configuration if it changed during the session.
// A failed save is logged and not retried. Calls after the first do nothing.
func (c *Client) Shutdown() {
	if c.closed {
		return
	}
	c.closed = true

	if !c.cam.ClearDirty() {
		c.log.Debug("camera config unchanged, not saving")
		return
	}

	if err := c.store.Save(c.cam.Record()); err != nil {
		c.log.WithError(err).Error("saving camera config")
	}
}

func (c *Client) open() {
	if c.opener != nil {
		c.opener()
	}
}
