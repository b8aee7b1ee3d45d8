package assembly

// MeshData is the assembly flattened into GPU-ready arrays with the
// scene lights baked into per-vertex colors. Three consecutive vertices
// form one triangle.
type MeshData struct {
	Vertices []float32
	Normals  []float32
	Colors   []uint8
}

// VertexCount returns the number of vertices
func (m MeshData) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles
func (m MeshData) TriangleCount() int {
	return m.VertexCount() / 3
}

// Bake tessellates the visible boxes and shades every face with the
// assembly's lights.
func (a *Assembly) Bake() MeshData {
	visible := a.Visible()
	vertexCount := len(visible) * 12 * 3
	m := MeshData{
		Vertices: make([]float32, 0, vertexCount*3),
		Normals:  make([]float32, 0, vertexCount*3),
		Colors:   make([]uint8, 0, vertexCount*4),
	}

	for _, box := range visible {
		for _, tri := range box.Triangles() {
			lit := Lit(a.Lights, tri.Normal, box.Color)
			for _, v := range tri.Vertices() {
				m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
				m.Normals = append(m.Normals, float32(tri.Normal.X), float32(tri.Normal.Y), float32(tri.Normal.Z))
				m.Colors = append(m.Colors, lit.R, lit.G, lit.B, 255)
			}
		}
	}
	return m
}
