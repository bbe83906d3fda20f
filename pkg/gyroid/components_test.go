package gyroid

import "testing"

// twoDisjointTriangles builds a mesh with two unconnected components of
// different sizes: a pair of triangles sharing an edge (4 unique vertices,
// 2 faces) and a single isolated triangle (3 unique vertices, 1 face).
func twoDisjointTriangles() *IndexedMesh {
	positions := []float32{
		// component A: two triangles sharing edge (1,2)
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		1, 1, 0,
		// component B: one isolated triangle, far away
		10, 10, 10,
		11, 10, 10,
		10, 11, 10,
	}
	indices := []uint32{
		0, 1, 2,
		1, 3, 2,
		4, 5, 6,
	}
	return &IndexedMesh{Positions: positions, Indices: indices}
}

func TestExtractLargestComponentKeepsBiggest(t *testing.T) {
	m := twoDisjointTriangles()
	out := extractLargestComponent(m)
	if out.TriangleCount() != 2 {
		t.Fatalf("triangle count = %d, want 2", out.TriangleCount())
	}
	if out.VertexCount() != 4 {
		t.Fatalf("vertex count = %d, want 4", out.VertexCount())
	}
}

func TestExtractLargestComponentPreservesWinding(t *testing.T) {
	m := twoDisjointTriangles()
	out := extractLargestComponent(m)
	// The surviving component's first face must still read (0,1,2) in the
	// remapped index space, since component A's triangles were emitted
	// first and its vertices visited in index order.
	if out.Indices[0] != 0 || out.Indices[1] != 1 || out.Indices[2] != 2 {
		t.Fatalf("winding not preserved: got %v", out.Indices[:3])
	}
}

func TestExtractLargestComponentSingleComponentIsNoop(t *testing.T) {
	m := &IndexedMesh{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:   []uint32{0, 1, 2},
	}
	out := extractLargestComponent(m)
	if out.TriangleCount() != 1 || out.VertexCount() != 3 {
		t.Fatalf("expected single-component mesh unchanged, got %d tris / %d verts", out.TriangleCount(), out.VertexCount())
	}
}

func TestExtractLargestComponentEmptyMesh(t *testing.T) {
	m := &IndexedMesh{}
	out := extractLargestComponent(m)
	if !out.IsEmpty() {
		t.Fatalf("expected empty mesh to remain empty")
	}
}
