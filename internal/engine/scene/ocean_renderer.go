// Package scene renders the ocean surface and the caustic-lit seabed.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/wavetank/caustica/internal/engine/ocean"
	"github.com/wavetank/caustica/internal/engine/scene/shaders"
	"github.com/wavetank/caustica/internal/engine/shader"
)

// OceanRenderer draws the sampled water surface as triangle strips, one draw
// per row pair.
type OceanRenderer struct {
	program uint32

	locModel      int32
	locView       int32
	locProjection int32
	locCameraPos  int32

	vao uint32
	vbo uint32
	ebo uint32

	stripCount  int
	stripStride int
	vertexCount int
}

// NewOceanRenderer compiles the water shader. Upload must be called before
// the first Render.
func NewOceanRenderer() (*OceanRenderer, error) {
	program, err := shader.CompileProgram(shaders.OceanVertexShader, shaders.OceanFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("ocean shader: %w", err)
	}

	return &OceanRenderer{
		program:       program,
		locModel:      shader.GetUniform(program, "uModel"),
		locView:       shader.GetUniform(program, "uView"),
		locProjection: shader.GetUniform(program, "uProjection"),
		locCameraPos:  shader.GetUniform(program, "uCameraPos"),
	}, nil
}

// Upload creates the GPU buffers from the mesh. DYNAMIC_DRAW since animated
// fields refresh the vertex buffer every update.
func (or *OceanRenderer) Upload(m *ocean.SurfaceMesh) {
	or.stripCount = m.StripCount()
	or.stripStride = m.StripStride()
	or.vertexCount = len(m.Vertices)

	gl.GenVertexArrays(1, &or.vao)
	gl.BindVertexArray(or.vao)

	gl.GenBuffers(1, &or.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, or.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(unsafe.Sizeof(ocean.Vertex{})),
		unsafe.Pointer(&m.Vertices[0]), gl.DYNAMIC_DRAW)

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)

	// Normal attribute
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &or.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, or.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4,
		unsafe.Pointer(&m.Indices[0]), gl.DYNAMIC_DRAW)

	gl.BindVertexArray(0)
}

// Refresh re-uploads the vertex buffer after a mesh rebuild. The index
// topology never changes, so only vertices are written.
func (or *OceanRenderer) Refresh(m *ocean.SurfaceMesh) {
	gl.BindBuffer(gl.ARRAY_BUFFER, or.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(m.Vertices)*int(unsafe.Sizeof(ocean.Vertex{})),
		unsafe.Pointer(&m.Vertices[0]))
}

// Render draws the surface strip by strip, each row at a time.
func (or *OceanRenderer) Render(model, view, projection mgl32.Mat4, cameraPos mgl32.Vec3) {
	if or.vao == 0 {
		return
	}

	gl.UseProgram(or.program)
	gl.UniformMatrix4fv(or.locModel, 1, false, &model[0])
	gl.UniformMatrix4fv(or.locView, 1, false, &view[0])
	gl.UniformMatrix4fv(or.locProjection, 1, false, &projection[0])
	gl.Uniform3f(or.locCameraPos, cameraPos.X(), cameraPos.Y(), cameraPos.Z())

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BindVertexArray(or.vao)
	for strip := 0; strip < or.stripCount; strip++ {
		gl.DrawElementsWithOffset(gl.TRIANGLE_STRIP, int32(or.stripStride), gl.UNSIGNED_INT,
			uintptr(4*or.stripStride*strip))
	}
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

// Close releases GPU resources.
func (or *OceanRenderer) Close() {
	if or.vao != 0 {
		gl.DeleteVertexArrays(1, &or.vao)
	}
	if or.vbo != 0 {
		gl.DeleteBuffers(1, &or.vbo)
	}
	if or.ebo != 0 {
		gl.DeleteBuffers(1, &or.ebo)
	}
	if or.program != 0 {
		gl.DeleteProgram(or.program)
	}
}
