package gyroid

import (
	"encoding/binary"
	"math"
	"testing"
)

// TestExportSTLFileSize is testable property 10: the binary STL file size
// is exactly 80 + 4 + 50*triangleCount bytes.
func TestExportSTLFileSize(t *testing.T) {
	mesh := MeshData{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 0},
		Indices:   []uint32{0, 1, 2, 1, 3, 2},
	}
	buf := ExportSTL(mesh)
	triCount := len(mesh.Indices) / 3
	want := stlHeaderSize + 4 + stlRecordSize*triCount
	if len(buf) != want {
		t.Fatalf("STL size = %d, want %d", len(buf), want)
	}
}

func TestExportSTLTriangleCountHeader(t *testing.T) {
	mesh := MeshData{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:   []uint32{0, 1, 2},
	}
	buf := ExportSTL(mesh)
	count := binary.LittleEndian.Uint32(buf[stlHeaderSize : stlHeaderSize+4])
	if count != 1 {
		t.Fatalf("triangle count header = %d, want 1", count)
	}
}

func TestExportSTLVertexRoundTrip(t *testing.T) {
	mesh := MeshData{
		Positions: []float32{1.5, -2.25, 3.0, 4.0, 5.0, 6.0, -1.0, 0.0, 2.5},
		Indices:   []uint32{0, 1, 2},
	}
	buf := ExportSTL(mesh)
	off := stlHeaderSize + 4 + 12 // skip normal
	for i := 0; i < 9; i++ {
		bits := binary.LittleEndian.Uint32(buf[off+i*4 : off+i*4+4])
		got := math.Float32frombits(bits)
		if got != mesh.Positions[i] {
			t.Fatalf("vertex component %d = %v, want %v", i, got, mesh.Positions[i])
		}
	}
}

func TestExportSTLEmptyMesh(t *testing.T) {
	buf := ExportSTL(MeshData{})
	if len(buf) != stlHeaderSize+4 {
		t.Fatalf("empty mesh STL size = %d, want %d", len(buf), stlHeaderSize+4)
	}
	count := binary.LittleEndian.Uint32(buf[stlHeaderSize : stlHeaderSize+4])
	if count != 0 {
		t.Fatalf("triangle count = %d, want 0", count)
	}
}

func TestTriangleNormalDegenerate(t *testing.T) {
	nx, ny, nz := triangleNormal(0, 0, 0, 1, 0, 0, 2, 0, 0)
	if nx != 0 || ny != 0 || nz != 0 {
		t.Fatalf("degenerate triangle normal = (%v,%v,%v), want zero", nx, ny, nz)
	}
}
