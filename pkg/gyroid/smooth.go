package gyroid

import (
	"runtime"
	"sort"
	"sync"
)

// taubinLambda and taubinMu are the conventional non-shrinking Laplacian
// coefficients (spec.md §4.5, §9): the lambda half-step shrinks, the mu
// half-step re-expands, leaving a volume-preserving low-pass filter. These
// are not parameters exposed by the pipeline.
const (
	taubinLambda = 0.5
	taubinMu     = -0.53
)

// buildOneRing returns, for each vertex, its unique one-ring neighbours
// derived from the triangle indices, sorted ascending so taubinHalfStep's
// summation order is a deterministic function of the mesh rather than of
// Go's randomized map iteration order.
func buildOneRing(m *IndexedMesh) [][]int32 {
	n := m.VertexCount()
	sets := make([]map[int32]struct{}, n)
	for i := range sets {
		sets[i] = make(map[int32]struct{})
	}

	link := func(a, b uint32) {
		if a == b {
			return
		}
		sets[a][int32(b)] = struct{}{}
		sets[b][int32(a)] = struct{}{}
	}

	tris := m.TriangleCount()
	for t := 0; t < tris; t++ {
		a, b, c := m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]
		link(a, b)
		link(b, c)
		link(c, a)
	}

	neighbors := make([][]int32, n)
	for i, set := range sets {
		ns := make([]int32, 0, len(set))
		for k := range set {
			ns = append(ns, k)
		}
		sort.Slice(ns, func(a, b int) bool { return ns[a] < ns[b] })
		neighbors[i] = ns
	}
	return neighbors
}

// taubinSmooth runs the two-step non-shrinking Laplacian filter described
// in spec.md §4.5 for the given number of iterations. It operates on
// positions only; indices and connectivity are unaffected. Vertices with
// no neighbours are left unchanged.
func taubinSmooth(m *IndexedMesh, iterations int) *IndexedMesh {
	if iterations <= 0 || m.VertexCount() == 0 {
		return m
	}

	neighbors := buildOneRing(m)
	positions := append([]float32(nil), m.Positions...)

	for i := 0; i < iterations; i++ {
		positions = taubinHalfStep(positions, neighbors, taubinLambda)
		positions = taubinHalfStep(positions, neighbors, taubinMu)
	}

	return &IndexedMesh{Positions: positions, Indices: m.Indices}
}

// taubinHalfStep applies p'[v] = p[v] + k*(mean(p[n]) - p[v]) to every
// vertex, parallelized over disjoint vertex ranges per spec.md §5.
func taubinHalfStep(positions []float32, neighbors [][]int32, k float64) []float32 {
	n := len(positions) / 3
	out := make([]float32, len(positions))

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
				nb := neighbors[v]
				px, py, pz := positions[v*3], positions[v*3+1], positions[v*3+2]
				if len(nb) == 0 {
					out[v*3], out[v*3+1], out[v*3+2] = px, py, pz
					continue
				}
				var sx, sy, sz float64
				for _, ni := range nb {
					sx += float64(positions[ni*3])
					sy += float64(positions[ni*3+1])
					sz += float64(positions[ni*3+2])
				}
				cnt := float64(len(nb))
				mx, my, mz := sx/cnt, sy/cnt, sz/cnt
				out[v*3] = float32(float64(px) + k*(mx-float64(px)))
				out[v*3+1] = float32(float64(py) + k*(my-float64(py)))
				out[v*3+2] = float32(float64(pz) + k*(mz-float64(pz)))
			}
		}(lo, hi)
	}
	wg.Wait()

	return out
}
