package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/orthocam/pkg/array"
)

// Errors is the namespace of scene errors.
var (
	Errors = errorx.NewNamespace("scene")

	// ErrUniforms means a uniform block has the wrong size.
	ErrUniforms = Errors.NewType("uniforms")
)

const uniformFloats = 3 * 16

// Uniforms are the per frame matrices of the cube pass.
type Uniforms struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Model      mgl32.Mat4
}

// Bytes packs the matrices into a uniform block, column major.
func (u Uniforms) Bytes() []byte {
	buf := make([]float32, 0, uniformFloats)
	buf = append(buf, u.Projection[:]...)
	buf = append(buf, u.View[:]...)
	buf = append(buf, u.Model[:]...)
	return array.Encode(buf)
}

// MVP returns the combined transform.
func (u Uniforms) MVP() mgl32.Mat4 {
	return u.Projection.Mul4(u.View).Mul4(u.Model)
}

// DecodeUniforms unpacks a uniform block written by Uniforms.Bytes.
func DecodeUniforms(b []byte) (Uniforms, error) {
	var f []float32
	array.Decode(&f, b)
	if len(f) != uniformFloats {
		return Uniforms{}, ErrUniforms.New("expected %d floats, got %d", uniformFloats, len(f))
	}

	var u Uniforms
	copy(u.Projection[:], f[0:16])
	copy(u.View[:], f[16:32])
	copy(u.Model[:], f[32:48])

	return u, nil
}
