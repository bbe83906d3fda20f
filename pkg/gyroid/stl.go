package gyroid

import (
	"encoding/binary"
	"math"
)

// stlHeaderSize is the zeroed ASCII header preceding the triangle count,
// stlRecordSize is the per-triangle record size, per spec.md §4.7.
const (
	stlHeaderSize = 80
	stlRecordSize = 50
)

// ExportSTL de-indexes mesh into a binary STL triangle soup, following the
// same little-endian encoding/binary conventions the pack's STL reader
// (philipparndt-gostl's pkg/stl) uses for the binary format. The face
// normal is recomputed from the triangle's own positions, not carried
// over from the mesh's per-vertex normals; a degenerate (zero-area)
// triangle emits a zero normal.
func ExportSTL(mesh MeshData) []byte {
	triCount := len(mesh.Indices) / 3
	buf := make([]byte, stlHeaderSize+4+stlRecordSize*triCount)

	binary.LittleEndian.PutUint32(buf[stlHeaderSize:stlHeaderSize+4], uint32(triCount))

	offset := stlHeaderSize + 4
	for t := 0; t < triCount; t++ {
		i0, i1, i2 := mesh.Indices[t*3], mesh.Indices[t*3+1], mesh.Indices[t*3+2]
		ax, ay, az := mesh.Positions[i0*3], mesh.Positions[i0*3+1], mesh.Positions[i0*3+2]
		bx, by, bz := mesh.Positions[i1*3], mesh.Positions[i1*3+1], mesh.Positions[i1*3+2]
		cx, cy, cz := mesh.Positions[i2*3], mesh.Positions[i2*3+1], mesh.Positions[i2*3+2]

		nx, ny, nz := triangleNormal(ax, ay, az, bx, by, bz, cx, cy, cz)

		offset = putFloat32(buf, offset, nx)
		offset = putFloat32(buf, offset, ny)
		offset = putFloat32(buf, offset, nz)

		offset = putFloat32(buf, offset, ax)
		offset = putFloat32(buf, offset, ay)
		offset = putFloat32(buf, offset, az)

		offset = putFloat32(buf, offset, bx)
		offset = putFloat32(buf, offset, by)
		offset = putFloat32(buf, offset, bz)

		offset = putFloat32(buf, offset, cx)
		offset = putFloat32(buf, offset, cy)
		offset = putFloat32(buf, offset, cz)

		// Attribute byte count: left zeroed.
		offset += 2
	}

	return buf
}

// triangleNormal computes the normalized face normal from three vertex
// positions; a zero-area triangle returns (0,0,0).
func triangleNormal(ax, ay, az, bx, by, bz, cx, cy, cz float32) (float32, float32, float32) {
	e1x, e1y, e1z := float64(bx-ax), float64(by-ay), float64(bz-az)
	e2x, e2y, e2z := float64(cx-ax), float64(cy-ay), float64(cz-az)

	nx := e1y*e2z - e1z*e2y
	ny := e1z*e2x - e1x*e2z
	nz := e1x*e2y - e1y*e2x

	length := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if length < 1e-12 {
		return 0, 0, 0
	}
	return float32(nx / length), float32(ny / length), float32(nz / length)
}

// putFloat32 writes a little-endian float32 at offset and returns the next
// offset.
func putFloat32(buf []byte, offset int, v float32) int {
	binary.LittleEndian.PutUint32(buf[offset:offset+4], math.Float32bits(v))
	return offset + 4
}
