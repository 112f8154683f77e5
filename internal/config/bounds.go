package config

import (
	"github.com/chewxy/math32"
	"github.com/mgnsk/orthocam/pkg/gfx"
)

// Scale bounds.
const (
	MinScale float32 = 0.01
	MaxScale float32 = 10000
)

// Pitch bounds in degrees.
const (
	MinPitch float32 = -90
	MaxPitch float32 = 90
)

// ClampScale limits a scale to [MinScale, MaxScale].
func ClampScale(v float32) float32 {
	return gfx.Clamp(v, MinScale, MaxScale)
}

// NormalizeYaw maps a yaw into [0, 360).
func NormalizeYaw(v float32) float32 {
	return gfx.NormalizeDegrees(v)
}

// ClampPitch limits a pitch to [MinPitch, MaxPitch]. NaN becomes level.
func ClampPitch(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return gfx.Clamp(v, MinPitch, MaxPitch)
}
