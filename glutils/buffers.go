package glutils

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"go-meshview/pipeline"
)

// MakeMeshVao uploads an interleaved vertex slice plus its index buffer and
// describes the two attribute slots the vertex shader expects: slot 0 is the
// vec3 position, slot 1 the vec4 color.
func MakeMeshVao(vertices []pipeline.Vertex, indices []uint32) uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(pipeline.VertexStride), gl.Ptr(vertices), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(pipeline.PositionSlot)
	gl.VertexAttribPointer(pipeline.PositionSlot, 3, gl.FLOAT, false, pipeline.VertexStride, gl.PtrOffset(pipeline.PositionOffset))
	gl.EnableVertexAttribArray(pipeline.ColorSlot)
	gl.VertexAttribPointer(pipeline.ColorSlot, 4, gl.FLOAT, false, pipeline.VertexStride, gl.PtrOffset(pipeline.ColorOffset))

	gl.BindVertexArray(0)
	return vao
}

// MakeUniformBuffer creates an empty uniform buffer of the given size and
// attaches it to a binding point.
func MakeUniformBuffer(size int, binding uint32) uint32 {
	var ubo uint32
	gl.GenBuffers(1, &ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return ubo
}

// UpdateTransform uploads the std140 image of t into ubo.
func UpdateTransform(ubo uint32, t pipeline.MVP) {
	block := pipeline.PackMVP(t)
	gl.BindBuffer(gl.UNIFORM_BUFFER, ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, pipeline.TransformBlockSize, gl.Ptr(block[:]))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}
