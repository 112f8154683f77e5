// Package config holds the orthographic camera configuration record.
//
// Bounded fields are only reachable through setters that clamp or normalize
// their input, so the record is in range at every observable instant.
// A Camera is not safe for concurrent use; all mutation happens on the
// host's step timeline.
package config

import (
	"github.com/mgnsk/orthocam/internal/store"
	"github.com/mgnsk/orthocam/pkg/gfx"
)

// Camera is the live orthographic camera configuration.
type Camera struct {
	enabled             bool
	persistEnabledState bool
	scaleX, scaleY      float32
	minDistance         float32
	maxDistance         float32
	fixed               bool
	fixedYaw            float32
	fixedPitch          float32
	rotateSpeedYaw      float32
	rotateSpeedPitch    float32
	autoThirdPerson     bool

	// Previous step snapshot for interpolation.
	prevScaleX, prevScaleY       float32
	prevFixedYaw, prevFixedPitch float32

	prevPerspective remembered
	dirty           bool
}

// FromRecord creates a Camera from a persisted record.
// Out of range values are corrected, enabled is dropped unless the record
// asks for it to persist, and the interpolation baseline is the loaded state.
func FromRecord(rec *store.Record) *Camera {
	c := &Camera{
		enabled:             rec.Enabled && rec.SaveEnabledState,
		persistEnabledState: rec.SaveEnabledState,
		scaleX:              ClampScale(rec.ScaleX),
		scaleY:              ClampScale(rec.ScaleY),
		minDistance:         rec.MinDistance,
		maxDistance:         rec.MaxDistance,
		fixed:               rec.Fixed,
		fixedYaw:            NormalizeYaw(rec.FixedYaw),
		fixedPitch:          ClampPitch(rec.FixedPitch),
		rotateSpeedYaw:      rec.RotateSpeedYaw,
		rotateSpeedPitch:    rec.RotateSpeedPitch,
		autoThirdPerson:     rec.AutoThirdPerson,
	}
	c.Tick()
	return c
}

// Record returns the persisted form of the camera.
func (c *Camera) Record() *store.Record {
	return &store.Record{
		Enabled:          c.enabled,
		SaveEnabledState: c.persistEnabledState,
		ScaleX:           c.scaleX,
		ScaleY:           c.scaleY,
		MinDistance:      c.minDistance,
		MaxDistance:      c.maxDistance,
		Fixed:            c.fixed,
		FixedYaw:         c.fixedYaw,
		FixedPitch:       c.fixedPitch,
		RotateSpeedYaw:   c.rotateSpeedYaw,
		RotateSpeedPitch: c.rotateSpeedPitch,
		AutoThirdPerson:  c.autoThirdPerson,
	}
}

// Dirty reports whether the camera changed since load.
func (c *Camera) Dirty() bool {
	return c.dirty
}

// ClearDirty clears the dirty flag and returns its previous value.
func (c *Camera) ClearDirty() bool {
	dirty := c.dirty
	c.dirty = false
	return dirty
}

// MarkDirty forces the next shutdown to persist the camera.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// Tick snapshots the interpolated fields. It must run once per step,
// before any interpolated read for that step, whether or not the camera is enabled.
func (c *Camera) Tick() {
	c.prevScaleX = c.scaleX
	c.prevScaleY = c.scaleY
	c.prevFixedYaw = c.fixedYaw
	c.prevFixedPitch = c.fixedPitch
}

// ScaleX returns the horizontal scale interpolated between the last two steps.
func (c *Camera) ScaleX(fraction float32) float32 {
	return gfx.Lerp(c.prevScaleX, c.scaleX, fraction)
}

// ScaleY returns the vertical scale interpolated between the last two steps.
func (c *Camera) ScaleY(fraction float32) float32 {
	return gfx.Lerp(c.prevScaleY, c.scaleY, fraction)
}

// FixedYaw returns the fixed yaw interpolated along the shortest arc, in [0, 360).
func (c *Camera) FixedYaw(fraction float32) float32 {
	return NormalizeYaw(gfx.LerpAngle(c.prevFixedYaw, c.fixedYaw, fraction))
}

// FixedPitch returns the fixed pitch interpolated along the shortest arc.
func (c *Camera) FixedPitch(fraction float32) float32 {
	return gfx.LerpAngle(c.prevFixedPitch, c.fixedPitch, fraction)
}

// Enabled reports whether the orthographic projection is active.
func (c *Camera) Enabled() bool { return c.enabled }

// PersistEnabledState reports whether enabled survives a restart.
func (c *Camera) PersistEnabledState() bool { return c.persistEnabledState }

// CurrentScaleX returns the horizontal scale of this step.
func (c *Camera) CurrentScaleX() float32 { return c.scaleX }

// CurrentScaleY returns the vertical scale of this step.
func (c *Camera) CurrentScaleY() float32 { return c.scaleY }

// MinDistance returns the near plane distance.
func (c *Camera) MinDistance() float32 { return c.minDistance }

// MaxDistance returns the far plane distance.
func (c *Camera) MaxDistance() float32 { return c.maxDistance }

// Fixed reports whether the orientation is locked.
func (c *Camera) Fixed() bool { return c.fixed }

// CurrentFixedYaw returns the fixed yaw of this step.
func (c *Camera) CurrentFixedYaw() float32 { return c.fixedYaw }

// CurrentFixedPitch returns the fixed pitch of this step.
func (c *Camera) CurrentFixedPitch() float32 { return c.fixedPitch }

// RotateSpeedYaw returns the yaw change per step of held rotation.
func (c *Camera) RotateSpeedYaw() float32 { return c.rotateSpeedYaw }

// RotateSpeedPitch returns the pitch change per step of held rotation.
func (c *Camera) RotateSpeedPitch() float32 { return c.rotateSpeedPitch }

// AutoThirdPerson reports whether enabling switches the host to third person.
func (c *Camera) AutoThirdPerson() bool { return c.autoThirdPerson }

// RememberedPerspective returns the perspective recorded by the last enable.
// ok is false until the camera has been enabled with auto third person on.
func (c *Camera) RememberedPerspective() (p Perspective, ok bool) {
	return c.prevPerspective.mode, c.prevPerspective.set
}

// SetScaleX sets the horizontal scale, clamped to [MinScale, MaxScale].
func (c *Camera) SetScaleX(v float32) {
	c.setFloat(&c.scaleX, ClampScale(v))
}

// SetScaleY sets the vertical scale, clamped to [MinScale, MaxScale].
func (c *Camera) SetScaleY(v float32) {
	c.setFloat(&c.scaleY, ClampScale(v))
}

// SetFixedYaw sets the fixed yaw, normalized into [0, 360).
func (c *Camera) SetFixedYaw(v float32) {
	c.setFloat(&c.fixedYaw, NormalizeYaw(v))
}

// SetFixedPitch sets the fixed pitch, clamped to [MinPitch, MaxPitch].
func (c *Camera) SetFixedPitch(v float32) {
	c.setFloat(&c.fixedPitch, ClampPitch(v))
}

// SetMinDistance sets the near plane distance. Any value is accepted.
func (c *Camera) SetMinDistance(v float32) { c.setFloat(&c.minDistance, v) }

// SetMaxDistance sets the far plane distance. Any value is accepted.
func (c *Camera) SetMaxDistance(v float32) { c.setFloat(&c.maxDistance, v) }

// SetRotateSpeedYaw sets the yaw change per step of held rotation.
func (c *Camera) SetRotateSpeedYaw(v float32) { c.setFloat(&c.rotateSpeedYaw, v) }

// SetRotateSpeedPitch sets the pitch change per step of held rotation.
func (c *Camera) SetRotateSpeedPitch(v float32) { c.setFloat(&c.rotateSpeedPitch, v) }

// SetPersistEnabledState sets whether enabled survives a restart.
func (c *Camera) SetPersistEnabledState(v bool) { c.setBool(&c.persistEnabledState, v) }

// SetAutoThirdPerson sets whether enabling switches the host to third person.
func (c *Camera) SetAutoThirdPerson(v bool) { c.setBool(&c.autoThirdPerson, v) }

// SetFixed locks or unlocks the camera orientation. Locking snaps the fixed
// orientation to face the live camera and resets the interpolation baseline
// so the next frame does not sweep from the old orientation.
// The camera is always marked dirty.
func (c *Camera) SetFixed(fixed bool, view View) {
	c.fixed = fixed
	if fixed && view != nil {
		if yaw, pitch, ok := view.CameraRotation(); ok {
			c.SetFixedYaw(yaw + gfx.FullTurn/2)
			c.prevFixedYaw = c.fixedYaw
			c.SetFixedPitch(pitch)
			c.prevFixedPitch = c.fixedPitch
		}
	}
	c.dirty = true
}

// Toggle flips enabled. With auto third person on, enabling remembers the
// active perspective and switches to third person back; disabling restores
// the remembered perspective if there is one. The camera is always marked dirty.
func (c *Camera) Toggle(view View) {
	c.enabled = !c.enabled
	if c.autoThirdPerson && view != nil {
		if c.enabled {
			c.prevPerspective = remembered{mode: view.Perspective(), set: true}
			view.SetPerspective(ThirdPersonBack)
		} else if c.prevPerspective.set {
			view.SetPerspective(c.prevPerspective.mode)
		}
	}
	c.dirty = true
}

// Rotate turns the fixed orientation one rotation speed step in dir.
func (c *Camera) Rotate(dir gfx.RotateDirection) {
	switch dir {
	case gfx.RotateLeft:
		c.SetFixedYaw(c.fixedYaw + c.rotateSpeedYaw)
	case gfx.RotateRight:
		c.SetFixedYaw(c.fixedYaw - c.rotateSpeedYaw)
	case gfx.RotateUp:
		c.SetFixedPitch(c.fixedPitch + c.rotateSpeedPitch)
	case gfx.RotateDown:
		c.SetFixedPitch(c.fixedPitch - c.rotateSpeedPitch)
	}
}

func (c *Camera) setFloat(field *float32, v float32) {
	if *field != v {
		*field = v
		c.dirty = true
	}
}

func (c *Camera) setBool(field *bool, v bool) {
	if *field != v {
		*field = v
		c.dirty = true
	}
}
