package gyroid

import "testing"

func TestMeshDataBoundingBox(t *testing.T) {
	m := MeshData{Positions: []float32{-1, 2, -3, 4, -5, 6, 0, 0, 0}}
	min, max := m.BoundingBox()
	if min.X != -1 || min.Y != -5 || min.Z != -3 {
		t.Fatalf("min = %v, want (-1,-5,-3)", min)
	}
	if max.X != 4 || max.Y != 2 || max.Z != 6 {
		t.Fatalf("max = %v, want (4,2,6)", max)
	}
}

func TestMeshDataBoundingBoxEmpty(t *testing.T) {
	m := MeshData{}
	min, max := m.BoundingBox()
	if min.X != 0 || max.X != 0 {
		t.Fatalf("expected zero box for empty mesh, got min=%v max=%v", min, max)
	}
}
