package gyroid

import "testing"

// solidSphere builds a Field whose solid voxels approximate a sphere, for
// exercising marching cubes independent of the gyroid classifier.
func solidSphere(res int, radiusFrac float64) *Field {
	size := 20.0
	step := size / float64(res)
	half := size / 2
	d := res + 1
	f := &Field{R: res, Size: size, Step: step, Solid: make([]uint8, d*d*d)}
	r := radiusFrac * half
	for zi := 0; zi < d; zi++ {
		z := -half + float64(zi)*step
		for yi := 0; yi < d; yi++ {
			y := -half + float64(yi)*step
			for xi := 0; xi < d; xi++ {
				x := -half + float64(xi)*step
				if x*x+y*y+z*z <= r*r {
					f.Solid[f.index(xi, yi, zi)] = 1
				}
			}
		}
	}
	voidBoundary(f)
	return f
}

// TestMarchingCubesIndicesInRange is testable property 1: every emitted
// triangle index refers to a vertex that was actually appended.
func TestMarchingCubesIndicesInRange(t *testing.T) {
	f := solidSphere(20, 0.6)
	m := marchingCubes(f, nil)
	n := int32(m.VertexCount())
	for i, idx := range m.Indices {
		if int32(idx) < 0 || int32(idx) >= n {
			t.Fatalf("index[%d] = %d out of range [0,%d)", i, idx, n)
		}
	}
	if m.TriangleCount() == 0 {
		t.Fatalf("expected a non-empty mesh from a solid sphere")
	}
}

// TestMarchingCubesDedupesSharedEdges is testable property 2: two
// adjacent cubes sharing a cube-face never allocate distinct vertices
// for the edge they hold in common. We check indirectly: the number of
// unique positions must be far smaller than 3x the triangle count for a
// smooth closed surface (exact equality would only hold for a
// triangle-soup mesh with zero sharing).
func TestMarchingCubesDedupesSharedEdges(t *testing.T) {
	f := solidSphere(24, 0.6)
	m := marchingCubes(f, nil)
	if m.TriangleCount() == 0 {
		t.Fatalf("expected a non-empty mesh")
	}
	maxUnshared := m.TriangleCount() * 3
	if m.VertexCount() >= maxUnshared {
		t.Fatalf("vertex count %d should be well below unshared bound %d for a closed sphere mesh", m.VertexCount(), maxUnshared)
	}
}

// TestMarchingCubesWithinBounds is testable property 3: every emitted
// vertex lies within the sampled grid's bounding box.
func TestMarchingCubesWithinBounds(t *testing.T) {
	f := solidSphere(20, 0.6)
	m := marchingCubes(f, nil)
	half := f.Size / 2
	const eps = 1e-3
	for v := 0; v < m.VertexCount(); v++ {
		x, y, z := m.Positions[v*3], m.Positions[v*3+1], m.Positions[v*3+2]
		if float64(x) < -half-eps || float64(x) > half+eps ||
			float64(y) < -half-eps || float64(y) > half+eps ||
			float64(z) < -half-eps || float64(z) > half+eps {
			t.Fatalf("vertex %d = (%v,%v,%v) escapes bounding box +/-%v", v, x, y, z, half)
		}
	}
}

func TestMarchingCubesEmptyFieldProducesEmptyMesh(t *testing.T) {
	res := 8
	d := res + 1
	f := &Field{R: res, Size: 20, Step: 20.0 / float64(res), Solid: make([]uint8, d*d*d)}
	m := marchingCubes(f, nil)
	if !m.IsEmpty() {
		t.Fatalf("expected empty mesh for all-void field, got %d triangles", m.TriangleCount())
	}
}
