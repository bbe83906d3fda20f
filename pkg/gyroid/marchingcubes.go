package gyroid

import "math"

// mcBuilder accumulates the indexed mesh produced by marching cubes. Each
// of the three per-axis edge caches maps a grid-point flat index to the
// mesh vertex index resolved for the edge leaving that point along the
// cache's axis, or -1 if unresolved, per spec.md §4.3.
type mcBuilder struct {
	f         *Field
	cache     [3][]int32
	positions []float32
	half      float64
	step      float64
}

func newMCBuilder(f *Field) *mcBuilder {
	size := f.dim() * f.dim() * f.dim()
	b := &mcBuilder{f: f, half: f.Size / 2, step: f.Step}
	for axis := 0; axis < 3; axis++ {
		c := make([]int32, size)
		for i := range c {
			c[i] = -1
		}
		b.cache[axis] = c
	}
	return b
}

// worldAt converts a grid index along any axis to its world-space
// coordinate.
func (b *mcBuilder) worldAt(i int) float64 {
	return -b.half + float64(i)*b.step
}

// sampleValue maps a binary field voxel to the signed sample spec.md §4.3
// requires: -1 for solid (inside), +1 for void (outside).
func sampleValue(v uint8) float64 {
	if v != 0 {
		return -1
	}
	return 1
}

// resolveEdge returns the mesh vertex index for edge e of the cube anchored
// at grid point (xi,yi,zi), creating and caching a new vertex if this edge
// has not been visited by a neighbouring cube yet.
func (b *mcBuilder) resolveEdge(xi, yi, zi, e int) int32 {
	corner := edgeBaseCorner[e]
	off := cornerOffset[corner]
	bx, by, bz := xi+off[0], yi+off[1], zi+off[2]
	axis := edgeAxis[e]
	baseIdx := b.f.index(bx, by, bz)

	if v := b.cache[axis][baseIdx]; v >= 0 {
		return v
	}

	ax, ay, az := bx, by, bz
	switch axis {
	case axisX:
		ax++
	case axisY:
		ay++
	case axisZ:
		az++
	}

	fA := sampleValue(b.f.at(bx, by, bz))
	fB := sampleValue(b.f.at(ax, ay, az))

	mu := 0.5
	denom := fB - fA
	if math.Abs(denom) >= 1e-6 {
		mu = clamp01(-fA / denom)
	}

	wx, wy, wz := b.worldAt(bx), b.worldAt(by), b.worldAt(bz)
	switch axis {
	case axisX:
		wx = b.worldAt(bx) + mu*b.step
	case axisY:
		wy = b.worldAt(by) + mu*b.step
	case axisZ:
		wz = b.worldAt(bz) + mu*b.step
	}

	idx := int32(len(b.positions) / 3)
	b.positions = append(b.positions, float32(wx), float32(wy), float32(wz))
	b.cache[axis][baseIdx] = idx
	return idx
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// marchingCubes converts a binary Field into an indexed triangle mesh,
// per spec.md §4.3. Iteration is z-outer, y-middle, x-inner so the three
// edge caches carry only the current and preceding slabs' working set.
func marchingCubes(f *Field, progress ProgressFunc) *IndexedMesh {
	b := newMCBuilder(f)
	R := f.R

	var indices []uint32
	totalCubes := int64(R) * int64(R) * int64(R)
	if totalCubes == 0 {
		return &IndexedMesh{}
	}
	var processed int64

	for zi := 0; zi < R; zi++ {
		for yi := 0; yi < R; yi++ {
			for xi := 0; xi < R; xi++ {
				cubeIndex := 0
				for c := 0; c < 8; c++ {
					off := cornerOffset[c]
					v := f.at(xi+off[0], yi+off[1], zi+off[2])
					if v == 0 {
						cubeIndex |= 1 << c
					}
				}

				mask := edgeTable[cubeIndex]
				if mask == 0 {
					continue
				}

				var edgeVert [12]int32
				for e := 0; e < 12; e++ {
					if mask&(1<<uint(e)) == 0 {
						continue
					}
					edgeVert[e] = b.resolveEdge(xi, yi, zi, e)
				}

				tris := triTable[cubeIndex]
				for k := 0; k < 16; k += 3 {
					if tris[k] == -1 {
						break
					}
					indices = append(indices,
						uint32(edgeVert[tris[k]]),
						uint32(edgeVert[tris[k+1]]),
						uint32(edgeVert[tris[k+2]]),
					)
				}
			}
		}
		processed += int64(R) * int64(R)
		pct := 30 + int(float64(processed)/float64(totalCubes)*45)
		if pct > 75 {
			pct = 75
		}
		progress.report(pct, "marching-cubes")
	}

	progress.report(75, "marching-cubes")
	return &IndexedMesh{Positions: b.positions, Indices: indices}
}
