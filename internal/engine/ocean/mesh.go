package ocean

// Vertex is one ocean surface sample ready for GPU upload. Normal carries the
// raw surface-normal candidate from WaveField.Normal, not a unit vector.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// SurfaceMesh holds the sampled ocean geometry: a Cols x Rows vertex grid in
// row-major order and a triangle-strip index sequence, one strip per pair of
// adjacent rows.
type SurfaceMesh struct {
	Cols, Rows int
	Vertices   []Vertex
	Indices    []uint32
}

// BuildSurfaceMesh samples the wave field over its own bounds and grid
// resolution at its current clock value.
func BuildSurfaceMesh(f *WaveField) *SurfaceMesh {
	cols, rows := f.GridSize()
	m := &SurfaceMesh{
		Cols:     cols,
		Rows:     rows,
		Vertices: make([]Vertex, 0, cols*rows),
		Indices:  make([]uint32, 0, cols*2*(rows-1)),
	}
	m.sample(f)
	m.buildIndices()
	return m
}

// Rebuild resamples every vertex at the field's current clock. The index
// buffer never changes, and the vertex backing array is reused so per-frame
// rebuilds do not reallocate.
func (m *SurfaceMesh) Rebuild(f *WaveField) {
	m.Vertices = m.Vertices[:0]
	m.sample(f)
}

// StripCount returns the number of triangle strips (one per row pair).
func (m *SurfaceMesh) StripCount() int {
	return m.Rows - 1
}

// StripStride returns the index-buffer distance between strip starts.
func (m *SurfaceMesh) StripStride() int {
	return m.Cols
}

func (m *SurfaceMesh) sample(f *WaveField) {
	centerX, centerZ, width, length := f.Bounds()
	t := f.Time()

	for row := 0; row < m.Rows; row++ {
		z := centerZ - length/2 + float32(row)*length/float32(m.Rows)
		for col := 0; col < m.Cols; col++ {
			x := centerX - width/2 + float32(col)*width/float32(m.Cols)
			n := f.Normal(x, z, t)
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{x, f.Height(x, z, t), z},
				Normal:   [3]float32{n.X(), n.Y(), n.Z()},
			})
		}
	}
}

func (m *SurfaceMesh) buildIndices() {
	for row := 0; row < m.Rows-1; row++ {
		for col := 0; col < m.Cols; col++ {
			m.Indices = append(m.Indices,
				uint32(col+m.Cols*row),
				uint32(col+m.Cols*(row+1)),
			)
		}
	}
}
