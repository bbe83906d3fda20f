package gyroid

// IndexedMesh is the internal working representation threaded through the
// pipeline: flat xyz positions, one triple per unique vertex, plus
// triangle indices. Normals are populated last, by the normal estimator.
type IndexedMesh struct {
	Positions []float32
	Indices   []uint32
	Normals   []float32
}

// VertexCount returns the number of unique vertices.
func (m *IndexedMesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *IndexedMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh has no geometry.
func (m *IndexedMesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// MeshData is the exported API surface result of Generate, per spec.md §6.
type MeshData struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
}
