package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var cubeVertices = [8]mgl32.Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Segment is a line between two viewport points, y pointing down.
type Segment struct {
	X0, Y0, X1, Y1 int
}

// CubeModel returns the model matrix of the cube after spinning for seconds.
func CubeModel(seconds float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(0.5 * seconds).
		Mul4(mgl32.HomogRotate3DY(0.3 * seconds)).
		Mul4(mgl32.HomogRotate3DZ(0.2 * seconds))
}

// ProjectCube returns the cube's visible edges in a width by height viewport.
// Edges with an end behind the camera or outside the depth range are dropped.
func ProjectCube(u Uniforms, width, height int) []Segment {
	mvp := u.MVP()

	var (
		points  [len(cubeVertices)][2]int
		visible [len(cubeVertices)]bool
	)
	for i, v := range cubeVertices {
		clip := mvp.Mul4x1(v.Vec4(1))
		w := clip.W()
		if w <= 0 {
			continue
		}
		ndc := clip.Vec3().Mul(1 / w)
		if ndc.Z() < -1 || ndc.Z() > 1 {
			continue
		}
		points[i] = [2]int{
			int(math32.Floor((ndc.X()+1)/2*float32(width-1) + 0.5)),
			int(math32.Floor((1-ndc.Y())/2*float32(height-1) + 0.5)),
		}
		visible[i] = true
	}

	segments := make([]Segment, 0, len(cubeEdges))
	for _, e := range cubeEdges {
		if !visible[e[0]] || !visible[e[1]] {
			continue
		}
		a, b := points[e[0]], points[e[1]]
		segments = append(segments, Segment{a[0], a[1], b[0], b[1]})
	}

	return segments
}

// Cells calls fn for every cell on the segment, from the first end to the second.
func (s Segment) Cells(fn func(x, y int)) {
	dx, sx := abs(s.X1-s.X0), sign(s.X1-s.X0)
	dy, sy := -abs(s.Y1-s.Y0), sign(s.Y1-s.Y0)
	err := dx + dy

	x, y := s.X0, s.Y0
	for {
		fn(x, y)
		if x == s.X1 && y == s.Y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
