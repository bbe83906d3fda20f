package gyroid

import (
	"math"
	"runtime"
	"sync"
)

// estimateNormals computes per-vertex area-weighted normals, per spec.md
// §4.6. Triangle normal contributions scatter into shared vertex
// accumulators, so that pass runs sequentially; the final per-vertex
// normalize is embarrassingly parallel and is split across workers.
func estimateNormals(m *IndexedMesh) []float32 {
	n := m.VertexCount()
	accum := make([]float64, n*3)

	tris := m.TriangleCount()
	for t := 0; t < tris; t++ {
		ia, ib, ic := m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]
		ax, ay, az := float64(m.Positions[ia*3]), float64(m.Positions[ia*3+1]), float64(m.Positions[ia*3+2])
		bx, by, bz := float64(m.Positions[ib*3]), float64(m.Positions[ib*3+1]), float64(m.Positions[ib*3+2])
		cx, cy, cz := float64(m.Positions[ic*3]), float64(m.Positions[ic*3+1]), float64(m.Positions[ic*3+2])

		e1x, e1y, e1z := bx-ax, by-ay, bz-az
		e2x, e2y, e2z := cx-ax, cy-ay, cz-az

		nx := e1y*e2z - e1z*e2y
		ny := e1z*e2x - e1x*e2z
		nz := e1x*e2y - e1y*e2x

		for _, idx := range [3]uint32{ia, ib, ic} {
			accum[idx*3] += nx
			accum[idx*3+1] += ny
			accum[idx*3+2] += nz
		}
	}

	normals := make([]float32, n*3)
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > n {
		numWorkers = n
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	var wg sync.WaitGroup
	chunk := (n + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for v := lo; v < hi; v++ {
				nx, ny, nz := accum[v*3], accum[v*3+1], accum[v*3+2]
				length := math.Sqrt(nx*nx + ny*ny + nz*nz)
				if length < 1e-8 {
					continue
				}
				normals[v*3] = float32(nx / length)
				normals[v*3+1] = float32(ny / length)
				normals[v*3+2] = float32(nz / length)
			}
		}(lo, hi)
	}
	wg.Wait()

	return normals
}
