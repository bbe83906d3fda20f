package gyroid

import "testing"

// planarGridMesh builds a triangulated (rows x cols) grid of vertices
// lying in the z=0 plane.
func planarGridMesh(rows, cols int) *IndexedMesh {
	positions := make([]float32, 0, rows*cols*3)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			positions = append(positions, float32(c), float32(r), 0)
		}
	}
	var indices []uint32
	idx := func(r, c int) uint32 { return uint32(r*cols + c) }
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			a, b, cc, dd := idx(r, c), idx(r, c+1), idx(r+1, c), idx(r+1, c+1)
			indices = append(indices, a, b, cc, b, dd, cc)
		}
	}
	return &IndexedMesh{Positions: positions, Indices: indices}
}

// TestTaubinSmoothPreservesPlanarity is testable property 5: smoothing a
// perfectly flat mesh never introduces out-of-plane displacement, since
// every neighbor average stays within the plane its inputs occupy.
func TestTaubinSmoothPreservesPlanarity(t *testing.T) {
	m := planarGridMesh(6, 6)
	out := taubinSmooth(m, 5)
	for v := 0; v < out.VertexCount(); v++ {
		z := out.Positions[v*3+2]
		if z != 0 {
			t.Fatalf("vertex %d drifted out of plane: z=%v", v, z)
		}
	}
}

func TestTaubinSmoothZeroIterationsIsNoop(t *testing.T) {
	m := planarGridMesh(4, 4)
	before := append([]float32(nil), m.Positions...)
	out := taubinSmooth(m, 0)
	for i, v := range out.Positions {
		if v != before[i] {
			t.Fatalf("zero iterations should not move vertices, position[%d] changed %v -> %v", i, before[i], v)
		}
	}
}

func TestTaubinSmoothLeavesIsolatedVertexUnchanged(t *testing.T) {
	// A vertex with no triangle incidence has no one-ring neighbours and
	// must be left exactly where it started.
	m := &IndexedMesh{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 5, 5, 5},
		Indices:   []uint32{0, 1, 2},
	}
	out := taubinSmooth(m, 3)
	if out.Positions[9] != 5 || out.Positions[10] != 5 || out.Positions[11] != 5 {
		t.Fatalf("isolated vertex moved: got (%v,%v,%v)", out.Positions[9], out.Positions[10], out.Positions[11])
	}
}

func TestBuildOneRingSymmetric(t *testing.T) {
	m := &IndexedMesh{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:   []uint32{0, 1, 2},
	}
	neighbors := buildOneRing(m)
	for v, ns := range neighbors {
		if len(ns) != 2 {
			t.Fatalf("vertex %d has %d neighbours, want 2", v, len(ns))
		}
	}
}
