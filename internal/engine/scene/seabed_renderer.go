package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/wavetank/caustica/internal/engine/caustics"
	"github.com/wavetank/caustica/internal/engine/scene/shaders"
	"github.com/wavetank/caustica/internal/engine/shader"
)

// SeabedDepth is how far below the water surface the floor quad sits.
const SeabedDepth = 20.0

// SeabedRenderer draws a flat floor quad beneath the water, lit by the two
// baked caustic textures.
type SeabedRenderer struct {
	program uint32

	locModel      int32
	locView       int32
	locProjection int32
	locNormalMap  int32
	locRefraction int32

	vao uint32
	vbo uint32

	normalTex     uint32
	refractionTex uint32
}

// NewSeabedRenderer compiles the seabed shader, builds the floor quad over
// the given water patch bounds and uploads the baked textures.
func NewSeabedRenderer(centerX, centerZ, width, length float32, normalMap, refraction *caustics.Image) (*SeabedRenderer, error) {
	program, err := shader.CompileProgram(shaders.SeabedVertexShader, shaders.SeabedFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("seabed shader: %w", err)
	}

	sr := &SeabedRenderer{
		program:       program,
		locModel:      shader.GetUniform(program, "uModel"),
		locView:       shader.GetUniform(program, "uView"),
		locProjection: shader.GetUniform(program, "uProjection"),
		locNormalMap:  shader.GetUniform(program, "uNormalMap"),
		locRefraction: shader.GetUniform(program, "uRefractionMap"),
	}

	sr.buildQuad(centerX, centerZ, width, length)
	sr.normalTex = uploadCausticTexture(normalMap)
	sr.refractionTex = uploadCausticTexture(refraction)

	return sr, nil
}

func (sr *SeabedRenderer) buildQuad(centerX, centerZ, width, length float32) {
	minX, maxX := centerX-width/2, centerX+width/2
	minZ, maxZ := centerZ-length/2, centerZ+length/2
	y := float32(-SeabedDepth)

	// Two triangles, position + texcoord
	vertices := []float32{
		minX, y, minZ, 0, 0,
		maxX, y, minZ, 1, 0,
		maxX, y, maxZ, 1, 1,
		minX, y, minZ, 0, 0,
		maxX, y, maxZ, 1, 1,
		minX, y, maxZ, 0, 1,
	}

	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)

	gl.GenBuffers(1, &sr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 5*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 5*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// Render draws the floor with the baked textures bound.
func (sr *SeabedRenderer) Render(model, view, projection mgl32.Mat4) {
	gl.UseProgram(sr.program)
	gl.UniformMatrix4fv(sr.locModel, 1, false, &model[0])
	gl.UniformMatrix4fv(sr.locView, 1, false, &view[0])
	gl.UniformMatrix4fv(sr.locProjection, 1, false, &projection[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, sr.normalTex)
	gl.Uniform1i(sr.locNormalMap, 0)

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, sr.refractionTex)
	gl.Uniform1i(sr.locRefraction, 1)

	gl.BindVertexArray(sr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// Close releases GPU resources.
func (sr *SeabedRenderer) Close() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
	}
	if sr.vbo != 0 {
		gl.DeleteBuffers(1, &sr.vbo)
	}
	if sr.normalTex != 0 {
		gl.DeleteTextures(1, &sr.normalTex)
	}
	if sr.refractionTex != 0 {
		gl.DeleteTextures(1, &sr.refractionTex)
	}
	if sr.program != 0 {
		gl.DeleteProgram(sr.program)
	}
}

// uploadCausticTexture uploads a baked RGB image with repeat wrapping and
// nearest filtering.
func uploadCausticTexture(img *caustics.Image) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(img.Width), int32(img.Height), 0,
		gl.RGB, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	return texID
}
