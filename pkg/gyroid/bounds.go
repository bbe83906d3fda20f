package gyroid

import v3 "github.com/deadsy/sdfx/vec/v3"

// BoundingBox returns the mesh's axis-aligned bounding box as min/max
// corners, following the same v3.Vec min/max convention the kernel's sdfx
// backend uses for solids (sdf.SDF3.BoundingBox). An empty mesh returns
// the zero box.
func (m MeshData) BoundingBox() (min, max v3.Vec) {
	if len(m.Positions) == 0 {
		return v3.Vec{}, v3.Vec{}
	}
	min = v3.Vec{X: float64(m.Positions[0]), Y: float64(m.Positions[1]), Z: float64(m.Positions[2])}
	max = min
	for i := 0; i < len(m.Positions); i += 3 {
		x, y, z := float64(m.Positions[i]), float64(m.Positions[i+1]), float64(m.Positions[i+2])
		if x < min.X {
			min.X = x
		}
		if y < min.Y {
			min.Y = y
		}
		if z < min.Z {
			min.Z = z
		}
		if x > max.X {
			max.X = x
		}
		if y > max.Y {
			max.Y = y
		}
		if z > max.Z {
			max.Z = z
		}
	}
	return min, max
}
