package gyroid

// minComponentExtractionFaces is the face-count floor below which component
// extraction is skipped, per spec.md §4.4.
const minComponentExtractionFaces = 100

// Generate runs the full geometry pipeline described in spec.md §2: field
// construction, boundary voiding, marching cubes, conditional largest-
// component extraction, Taubin smoothing, and normal estimation. It
// returns the resulting mesh buffers and a report of how CellSize was
// snapped to tile Size evenly (spec.md §9's Open Question, resolved by
// surfacing the snapped value here instead of only logging it).
//
// Generate does not catch internal errors; they propagate to the caller,
// per spec.md §4.8 and §7.
func Generate(params Parameters, progress ProgressFunc) (MeshData, SnapReport, error) {
	if err := params.Validate(); err != nil {
		return MeshData{}, SnapReport{}, err
	}

	snap := snapCellSize(params.Size, params.CellSize)
	adjusted := params
	adjusted.CellSize = snap.SnappedCellSize

	progress.report(5, "field")
	field := buildField(adjusted, snap, progress)
	voidBoundary(field)

	progress.report(30, "marching-cubes")
	mesh := marchingCubes(field, progress)

	if adjusted.Mode == Shell && mesh.TriangleCount() >= minComponentExtractionFaces {
		mesh = extractLargestComponent(mesh)
	}
	progress.report(80, "component-extraction")

	mesh = taubinSmooth(mesh, adjusted.SmoothingIterations)
	progress.report(90, "smoothing")

	mesh.Normals = estimateNormals(mesh)
	progress.report(100, "done")

	return MeshData{
		Positions: mesh.Positions,
		Normals:   mesh.Normals,
		Indices:   mesh.Indices,
	}, snap, nil
}
