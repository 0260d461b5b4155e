package pipeline

import (
	mgl "github.com/go-gl/mathgl/mgl32"
)

// Vertex is one record of the per-vertex attribute stream: a model-space
// position and an RGBA color. It is immutable during a transform.
type Vertex struct {
	Position mgl.Vec3
	Color    mgl.Vec4
}

// VertexOutput is what the vertex stage hands to rasterization: a clip-space
// position and the color attribute for the fragment stage.
type VertexOutput struct {
	ClipPosition mgl.Vec4
	Color        mgl.Vec4
}
