package gyroid

// extractLargestComponent flood-fills the triangle adjacency graph (two
// triangles are neighbours iff they share a vertex) and keeps only the
// component with the most faces, per spec.md §4.4. Vertices are compacted
// through a remap array; triangle winding is preserved.
func extractLargestComponent(m *IndexedMesh) *IndexedMesh {
	triCount := m.TriangleCount()
	if triCount == 0 {
		return m
	}

	vertexFaces := make([][]int32, m.VertexCount())
	for t := 0; t < triCount; t++ {
		for k := 0; k < 3; k++ {
			v := m.Indices[t*3+k]
			vertexFaces[v] = append(vertexFaces[v], int32(t))
		}
	}

	faceComponent := make([]int32, triCount)
	for i := range faceComponent {
		faceComponent[i] = -1
	}

	var componentSizes []int
	for start := 0; start < triCount; start++ {
		if faceComponent[start] != -1 {
			continue
		}
		compID := int32(len(componentSizes))
		queue := []int32{int32(start)}
		faceComponent[start] = compID
		size := 0
		for len(queue) > 0 {
			face := queue[0]
			queue = queue[1:]
			size++
			for k := 0; k < 3; k++ {
				v := m.Indices[int(face)*3+k]
				for _, nf := range vertexFaces[v] {
					if faceComponent[nf] == -1 {
						faceComponent[nf] = compID
						queue = append(queue, nf)
					}
				}
			}
		}
		componentSizes = append(componentSizes, size)
	}

	if len(componentSizes) <= 1 {
		return m
	}

	best := 0
	for i, s := range componentSizes {
		if s > componentSizes[best] {
			best = i
		}
	}

	remap := make([]int32, m.VertexCount())
	for i := range remap {
		remap[i] = -1
	}
	positions := make([]float32, 0, len(m.Positions))
	indices := make([]uint32, 0, len(m.Indices))
	for t := 0; t < triCount; t++ {
		if int(faceComponent[t]) != best {
			continue
		}
		for k := 0; k < 3; k++ {
			v := m.Indices[t*3+k]
			if remap[v] == -1 {
				remap[v] = int32(len(positions) / 3)
				positions = append(positions, m.Positions[v*3], m.Positions[v*3+1], m.Positions[v*3+2])
			}
			indices = append(indices, uint32(remap[v]))
		}
	}
	return &IndexedMesh{Positions: positions, Indices: indices}
}
