package pipeline

import (
	mgl "github.com/go-gl/mathgl/mgl32"
)

// Transform is the per-draw uniform transform. It is shared read-only by
// every invocation of a draw call and maps homogeneous model-space positions
// to clip space.
type Transform interface {
	Apply(position mgl.Vec4) mgl.Vec4
}

// MVP carries separate model, view and projection matrices.
type MVP struct {
	Model mgl.Mat4
	View  mgl.Mat4
	Proj  mgl.Mat4
}

func (t MVP) Apply(position mgl.Vec4) mgl.Vec4 {
	return t.Proj.Mul4(t.View).Mul4(t.Model).Mul4x1(position)
}

// Combined precomposes the three matrices into a single-matrix transform.
func (t MVP) Combined() ViewProj {
	return ViewProj{Matrix: t.Proj.Mul4(t.View).Mul4(t.Model)}
}

// ViewProj carries one precombined matrix, applied exactly once.
type ViewProj struct {
	Matrix mgl.Mat4
}

func (t ViewProj) Apply(position mgl.Vec4) mgl.Vec4 {
	return t.Matrix.Mul4x1(position)
}

// Homogenize appends a w=1 component to a 3-component position so it can be
// multiplied by a 4x4 matrix.
func Homogenize(position mgl.Vec3) mgl.Vec4 {
	return position.Vec4(1)
}

// TransformVertex runs the vertex stage for a single vertex. It is a pure
// function: the clip-space position is the transform applied to the
// homogenized position, and the color passes through unchanged.
func TransformVertex(t Transform, v Vertex) VertexOutput {
	return VertexOutput{
		ClipPosition: t.Apply(Homogenize(v.Position)),
		Color:        v.Color,
	}
}
