package gyroid

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"
)

// Field is a binary solid/void sample of the (R+1)^3 grid described in
// spec.md §3. Solid[i] is 1 for solid voxels, 0 for void. The grid spans
// [-size/2, +size/2] on each axis at step = size/R.
type Field struct {
	R     int
	Size  float64
	Step  float64
	Solid []uint8
}

// dim returns R+1, the number of samples per axis.
func (f *Field) dim() int {
	return f.R + 1
}

// index converts grid coordinates to a flat Solid offset, per spec.md §3's
// i = x + y*(R+1) + z*(R+1)^2 convention.
func (f *Field) index(x, y, z int) int {
	d := f.dim()
	return x + y*d + z*d*d
}

// at returns the voxel value at (x,y,z).
func (f *Field) at(x, y, z int) uint8 {
	return f.Solid[f.index(x, y, z)]
}

// buildField samples the (R+1)^3 grid and classifies each voxel as solid or
// void by fusing the gyroid wall with the structural enclosure, carving
// port openings per spec.md §4.1. Classification is independent per voxel,
// so the grid is partitioned into contiguous Z-slabs and classified by a
// worker pool (spec.md §5's thread-parallel option), with progress sampled
// from a shared atomic counter.
func buildField(p Parameters, snap SnapReport, progress ProgressFunc) *Field {
	d := p.Resolution + 1
	half := p.Size / 2
	step := p.Size / float64(p.Resolution)

	f := &Field{R: p.Resolution, Size: p.Size, Step: step, Solid: make([]uint8, d*d*d)}

	// Precompute per-axis mm / rad / sin / cos tables (spec.md §4.1).
	mm := make([]float64, d)
	sinTab := make([]float64, d)
	cosTab := make([]float64, d)
	twoPiOverCell := 2 * math.Pi / snap.SnappedCellSize
	for i := 0; i < d; i++ {
		m := -half + float64(i)*step
		mm[i] = m
		rad := m * twoPiOverCell
		sinTab[i] = math.Sin(rad)
		cosTab[i] = math.Cos(rad)
	}

	totalVoxels := int64(d) * int64(d) * int64(d)
	var processed atomic.Int64
	var reportedBucket atomic.Int64
	const progressStep = 300000

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > d {
		numWorkers = d
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	var wg sync.WaitGroup
	slabsPerWorker := (d + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		zStart := w * slabsPerWorker
		zEnd := zStart + slabsPerWorker
		if zEnd > d {
			zEnd = d
		}
		if zStart >= zEnd {
			continue
		}
		wg.Add(1)
		go func(zStart, zEnd int) {
			defer wg.Done()
			for zi := zStart; zi < zEnd; zi++ {
				for yi := 0; yi < d; yi++ {
					base := yi*d + zi*d*d
					for xi := 0; xi < d; xi++ {
						f.Solid[base+xi] = classifyVoxel(p, half, step, mm, sinTab, cosTab, xi, yi, zi)
					}
				}
				n := processed.Add(int64(d) * int64(d))
				bucket := n / progressStep
				for {
					prev := reportedBucket.Load()
					if bucket <= prev {
						break
					}
					if reportedBucket.CompareAndSwap(prev, bucket) {
						pct := 5 + int(float64(n)/float64(totalVoxels)*23)
						if pct > 28 {
							pct = 28
						}
						progress.report(pct, "field")
						break
					}
				}
			}
		}(zStart, zEnd)
	}
	wg.Wait()

	progress.report(28, "field")
	return f
}

// voxelClassification exposes the intermediate predicates behind a single
// classification decision, so tests can check spec.md §8's properties
// against the same logic the pipeline runs, rather than against a
// reimplementation of it.
type voxelClassification struct {
	ChannelA, ChannelB, Wall bool
	StructuralPreCarve       bool
	StructuralPostCarve      bool
	Solid                    bool
}

// classifyVoxelDetail evaluates every predicate in spec.md §4.1's
// classification for the voxel at grid coordinates (xi,yi,zi).
func classifyVoxelDetail(p Parameters, half, step float64, mm, sinTab, cosTab []float64, xi, yi, zi int) voxelClassification {
	g := sinTab[xi]*cosTab[yi] + sinTab[yi]*cosTab[zi] + sinTab[zi]*cosTab[xi]
	tau := p.WallThreshold
	c := voxelClassification{
		ChannelA: g > tau,
		ChannelB: g < -tau,
		Wall:     math.Abs(g) <= tau,
	}

	x, y, z := mm[xi], mm[yi], mm[zi]

	switch p.Mode {
	case Frame:
		bw := p.FrameBeamWidth
		nearX := math.Abs(x) >= half-bw
		nearY := math.Abs(y) >= half-bw
		nearZ := math.Abs(z) >= half-bw
		c.StructuralPreCarve = (nearX && nearY) || (nearX && nearZ) || (nearY && nearZ)
		c.StructuralPostCarve = c.StructuralPreCarve
	default: // Shell
		th := p.ShellThickness
		inInner := math.Abs(x) <= half-th && math.Abs(y) <= half-th && math.Abs(z) <= half-th
		c.StructuralPreCarve = !inInner
		c.StructuralPostCarve = c.StructuralPreCarve

		if !p.MakeManifold {
			faceDepth := th + 2*step
			edgeMargin := th + step
			zFace := z < -half+faceDepth || z > half-faceDepth
			xFace := x < -half+faceDepth || x > half-faceDepth
			nearYEdge := y < -half+edgeMargin || y > half-edgeMargin

			openA := zFace && !xFace && !nearYEdge && c.ChannelA
			openB := xFace && !zFace && !nearYEdge && c.ChannelB
			if openA || openB {
				c.StructuralPostCarve = false
			}
		}
	}

	c.Solid = c.StructuralPostCarve || c.Wall
	return c
}

// classifyVoxel determines whether the voxel at grid coordinates (xi,yi,zi)
// is solid, by combining the gyroid wall test with the structural
// enclosure test for the given mode, per spec.md §4.1.
func classifyVoxel(p Parameters, half, step float64, mm, sinTab, cosTab []float64, xi, yi, zi int) uint8 {
	if classifyVoxelDetail(p, half, step, mm, sinTab, cosTab, xi, yi, zi).Solid {
		return 1
	}
	return 0
}

// voidBoundary forces the outermost grid shell to void, per spec.md §4.2,
// so marching cubes can close every external face of the enclosure.
func voidBoundary(f *Field) {
	d := f.dim()
	last := f.R
	for z := 0; z < d; z++ {
		for y := 0; y < d; y++ {
			for x := 0; x < d; x++ {
				if x == 0 || x == last || y == 0 || y == last || z == 0 || z == last {
					f.Solid[f.index(x, y, z)] = 0
				}
			}
		}
	}
}
