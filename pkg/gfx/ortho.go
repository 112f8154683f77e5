package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RotateDirection specifies fixed camera rotation direction.
type RotateDirection int

// Rotate constants.
const (
	RotateUp RotateDirection = iota
	RotateDown
	RotateLeft
	RotateRight
)

// Projectable is the interpolated state an orthographic projection is built from.
type Projectable interface {
	ScaleX(fraction float32) float32
	ScaleY(fraction float32) float32
	MinDistance() float32
	MaxDistance() float32
}

// OrthoExtents returns the half extents of the projection volume.
// Both are floored at minExtent, independently of the source's own scale bounds.
func OrthoExtents(src Projectable, fraction, width, height, minExtent float32) (halfWidth, halfHeight float32) {
	halfWidth = src.ScaleX(fraction) * width / height
	// Also catches NaN from a zero height viewport.
	if !(halfWidth >= minExtent) {
		halfWidth = minExtent
	}
	halfHeight = src.ScaleY(fraction)
	if !(halfHeight >= minExtent) {
		halfHeight = minExtent
	}
	return halfWidth, halfHeight
}

// OrthoProjection returns the orthographic projection matrix for a viewport.
// The depth range is taken from src as is; an empty or inverted range is not corrected.
func OrthoProjection(src Projectable, fraction, width, height, minExtent float32) mgl32.Mat4 {
	hw, hh := OrthoExtents(src, fraction, width, height, minExtent)
	return mgl32.Ortho(-hw, hw, -hh, hh, src.MinDistance(), src.MaxDistance())
}

// FixedView returns the view rotation for a camera locked at yaw and pitch degrees.
// Yaw 0 looks along +Z, matching the host's entity convention.
func FixedView(yaw, pitch float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(mgl32.DegToRad(pitch)).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(yaw + FullTurn/2)))
}
