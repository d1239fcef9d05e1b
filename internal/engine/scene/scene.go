package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/wavetank/caustica/internal/engine/caustics"
	"github.com/wavetank/caustica/internal/engine/ocean"
)

// Scene owns the GPU-side representation of the demo: the water surface and
// the caustic-lit seabed beneath it.
type Scene struct {
	oceanR  *OceanRenderer
	seabedR *SeabedRenderer
}

// New builds the scene from a sampled mesh and the two baked textures.
// Requires a current OpenGL context.
func New(field *ocean.WaveField, mesh *ocean.SurfaceMesh, normalMap, refraction *caustics.Image) (*Scene, error) {
	oceanR, err := NewOceanRenderer()
	if err != nil {
		return nil, err
	}
	oceanR.Upload(mesh)

	centerX, centerZ, width, length := field.Bounds()
	seabedR, err := NewSeabedRenderer(centerX, centerZ, width, length, normalMap, refraction)
	if err != nil {
		oceanR.Close()
		return nil, err
	}

	return &Scene{oceanR: oceanR, seabedR: seabedR}, nil
}

// RefreshOcean pushes rebuilt mesh vertices to the GPU.
func (s *Scene) RefreshOcean(mesh *ocean.SurfaceMesh) {
	s.oceanR.Refresh(mesh)
}

// Render draws the seabed first, then the translucent water above it.
// Wireframe applies to the water surface only.
func (s *Scene) Render(view, projection mgl32.Mat4, cameraPos mgl32.Vec3, wireframe bool) {
	model := mgl32.Ident4()
	s.seabedR.Render(model, view, projection)

	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	s.oceanR.Render(model, view, projection, cameraPos)
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Close releases all GPU resources.
func (s *Scene) Close() {
	if s.oceanR != nil {
		s.oceanR.Close()
	}
	if s.seabedR != nil {
		s.seabedR.Close()
	}
}
