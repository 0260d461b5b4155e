package pipeline

import "unsafe"

// Attribute slots of the vertex stream, fixed by the shader interface.
const (
	PositionSlot = 0
	ColorSlot    = 1
)

// Interleaved vertex buffer layout.
var (
	VertexStride   = int32(unsafe.Sizeof(Vertex{}))
	PositionOffset = int(unsafe.Offsetof(Vertex{}.Position))
	ColorOffset    = int(unsafe.Offsetof(Vertex{}.Color))
)

// The vertex shader reads its transform from one uniform block bound at
// TransformBinding. Under std140 each mat4 occupies a 64-byte slot, so the
// block is three tightly packed matrices: model, view, proj.
const (
	TransformBinding = 0

	blockModelFloats = 0
	blockViewFloats  = 16
	blockProjFloats  = 32

	// TransformBlockSize is the byte size of the std140 block.
	TransformBlockSize = 48 * 4
)

// PackMVP lays t out in std140 order for a uniform buffer upload. Matrices
// stay column-major, which is what both mathgl and GLSL use.
func PackMVP(t MVP) [TransformBlockSize / 4]float32 {
	var block [TransformBlockSize / 4]float32
	copy(block[blockModelFloats:], t.Model[:])
	copy(block[blockViewFloats:], t.View[:])
	copy(block[blockProjFloats:], t.Proj[:])
	return block
}
