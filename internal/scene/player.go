// Package scene is the small world the terminal host renders: a player entity and a cube.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mgnsk/orthocam/internal/config"
	"github.com/mgnsk/orthocam/pkg/gfx"
)

// Player is the entity the host camera follows. It implements config.View.
type Player struct {
	position    mgl32.Vec3
	yaw, pitch  float32
	perspective config.Perspective
	fovDegrees  float32
	distance    float32
}

// NewPlayer creates a player at position looking along yaw and pitch degrees.
func NewPlayer(position mgl32.Vec3, yaw, pitch float32) *Player {
	return &Player{
		position:   position,
		yaw:        gfx.NormalizeDegrees(yaw),
		pitch:      gfx.Clamp(pitch, -90, 90),
		fovDegrees: 70,
		distance:   4,
	}
}

// Perspective returns the active perspective mode.
func (p *Player) Perspective() config.Perspective {
	return p.perspective
}

// SetPerspective switches the perspective mode.
func (p *Player) SetPerspective(mode config.Perspective) {
	p.perspective = mode
}

// CyclePerspective switches to the next perspective mode.
func (p *Player) CyclePerspective() {
	p.perspective = p.perspective.Next()
}

// CameraRotation returns the camera yaw and pitch. In front third person the camera faces the player.
func (p *Player) CameraRotation() (yaw, pitch float32, ok bool) {
	if p.perspective == config.ThirdPersonFront {
		return gfx.NormalizeDegrees(p.yaw + gfx.FullTurn/2), -p.pitch, true
	}
	return p.yaw, p.pitch, true
}

// Look returns the player's own yaw and pitch.
func (p *Player) Look() (yaw, pitch float32) {
	return p.yaw, p.pitch
}

// Turn rotates the player's look by degrees.
func (p *Player) Turn(dYaw, dPitch float32) {
	p.yaw = gfx.NormalizeDegrees(p.yaw + dYaw)
	p.pitch = gfx.Clamp(p.pitch+dPitch, -90, 90)
}

// Eye returns the camera position for the active perspective.
func (p *Player) Eye() mgl32.Vec3 {
	if p.perspective == config.FirstPerson {
		return p.position
	}
	yaw, pitch, _ := p.CameraRotation()
	return p.position.Sub(Forward(yaw, pitch).Mul(p.distance))
}

// Projection returns the perspective projection for an aspect ratio.
func (p *Player) Projection(ratio float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.fovDegrees), ratio, 0.05, 1000)
}

// View returns the camera view matrix.
func (p *Player) View() mgl32.Mat4 {
	yaw, pitch, _ := p.CameraRotation()
	return p.ViewFrom(Rotation(yaw, pitch))
}

// ViewFrom returns the view matrix for the camera position under rotation.
func (p *Player) ViewFrom(rotation mgl32.Mat4) mgl32.Mat4 {
	eye := p.Eye()
	return rotation.Mul4(mgl32.Translate3D(-eye.X(), -eye.Y(), -eye.Z()))
}

// Rotation returns the view rotation of a camera at yaw and pitch degrees.
func Rotation(yaw, pitch float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(mgl32.DegToRad(pitch)).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(yaw)))
}

// Forward returns the world direction a camera at yaw and pitch degrees looks along.
func Forward(yaw, pitch float32) mgl32.Vec3 {
	return Rotation(yaw, pitch).Transpose().Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
}
