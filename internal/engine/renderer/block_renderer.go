// Package renderer draws chunk meshes with an instanced block shader.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/voxelgard/internal/engine/mesh"
	"github.com/Faultbox/voxelgard/internal/engine/shader"
	"github.com/Faultbox/voxelgard/pkg/math"
)

// DefaultMaxInstances bounds the per-mesh instance buffer. Chunk meshes
// bake block positions into their vertices and normally draw with a
// single identity instance, so the buffer stays small.
const DefaultMaxInstances = 256

const vertexStride = int32(unsafe.Sizeof(mesh.Vertex{}))

// BlockRenderer owns the block shader program and its uniforms.
type BlockRenderer struct {
	program     uint32
	locViewProj int32
	locLightDir int32
	locTexture  int32
}

// NewBlockRenderer compiles the block shader program. A compile or link
// failure is fatal to startup, so the error carries the driver log.
func NewBlockRenderer() (*BlockRenderer, error) {
	program, err := shader.CompileProgram(blockVertexShader, blockFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("block shader: %w", err)
	}

	return &BlockRenderer{
		program:     program,
		locViewProj: shader.GetUniform(program, "uViewProj"),
		locLightDir: shader.GetUniform(program, "uLightDir"),
		locTexture:  shader.GetUniform(program, "uTexture"),
	}, nil
}

// Begin activates the program and sets the per-frame uniforms.
// The atlas texture is expected to be bound to texture unit 0.
func (r *BlockRenderer) Begin(viewProj math.Mat4, lightDir math.Vec3) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform3f(r.locLightDir, lightDir.X, lightDir.Y, lightDir.Z)
	gl.Uniform1i(r.locTexture, 0)
}

// Destroy releases the shader program.
func (r *BlockRenderer) Destroy() {
	gl.DeleteProgram(r.program)
}

// ChunkMesh is a chunk's geometry uploaded to the GPU together with a
// fixed-capacity instance buffer of model matrices.
type ChunkMesh struct {
	vao         uint32
	vbo         uint32
	ebo         uint32
	instanceVBO uint32

	indexCount    int32
	instances     []math.Mat4
	maxInstances  int
	instancesSent bool
}

// UploadMesh creates GPU buffers for the mesh data. maxInstances <= 0
// falls back to DefaultMaxInstances.
func UploadMesh(data *mesh.Data, maxInstances int) *ChunkMesh {
	if maxInstances <= 0 {
		maxInstances = DefaultMaxInstances
	}

	m := &ChunkMesh{
		indexCount:   int32(len(data.Indices)),
		instances:    make([]math.Mat4, 0, maxInstances),
		maxInstances: maxInstances,
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)
	gl.GenBuffers(1, &m.instanceVBO)

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(data.Vertices)*int(vertexStride),
		gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(data.Indices)*4,
		gl.Ptr(data.Indices), gl.STATIC_DRAW)

	// Vertex layout: position, normal, texcoord, texture bounds
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride,
		unsafe.Offsetof(mesh.Vertex{}.Position))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride,
		unsafe.Offsetof(mesh.Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride,
		unsafe.Offsetof(mesh.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(2)

	gl.VertexAttribPointerWithOffset(3, 4, gl.FLOAT, false, vertexStride,
		unsafe.Offsetof(mesh.Vertex{}.TextureBounds))
	gl.EnableVertexAttribArray(3)

	// Instance model matrices occupy four attribute slots
	gl.BindBuffer(gl.ARRAY_BUFFER, m.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, maxInstances*64, nil, gl.DYNAMIC_DRAW)

	for i := uint32(0); i < 4; i++ {
		gl.VertexAttribPointerWithOffset(4+i, 4, gl.FLOAT, false, 64, uintptr(i*16))
		gl.EnableVertexAttribArray(4 + i)
		gl.VertexAttribDivisor(4+i, 1)
	}

	gl.BindVertexArray(0)

	return m
}

// AddInstance queues a model matrix for the next draw.
// Exceeding the fixed capacity is an error rather than a silent drop.
func (m *ChunkMesh) AddInstance(model math.Mat4) error {
	if len(m.instances) >= m.maxInstances {
		return fmt.Errorf("instance buffer full: capacity %d", m.maxInstances)
	}
	m.instances = append(m.instances, model)
	m.instancesSent = false
	return nil
}

// ClearInstances drops all queued instances.
func (m *ChunkMesh) ClearInstances() {
	m.instances = m.instances[:0]
	m.instancesSent = false
}

// InstanceCount returns the number of queued instances.
func (m *ChunkMesh) InstanceCount() int {
	return len(m.instances)
}

// updateInstanceBuffer uploads queued model matrices to the GPU.
func (m *ChunkMesh) updateInstanceBuffer() {
	if m.instancesSent || len(m.instances) == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, m.instanceVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(m.instances)*64, gl.Ptr(m.instances))
	m.instancesSent = true
}

// Draw renders all queued instances of the mesh.
func (m *ChunkMesh) Draw() {
	if m.indexCount == 0 || len(m.instances) == 0 {
		return
	}

	m.updateInstanceBuffer()

	gl.BindVertexArray(m.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, m.indexCount,
		gl.UNSIGNED_INT, gl.PtrOffset(0), int32(len(m.instances)))
	gl.BindVertexArray(0)
}

// Destroy releases the GPU buffers.
func (m *ChunkMesh) Destroy() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(1, &m.instanceVBO)
}
