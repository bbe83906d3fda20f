// Package gyroid implements the geometry pipeline for the dual-channel
// gyroid heat-exchanger core: field construction, marching cubes, largest
// component extraction, Taubin smoothing, normal estimation, and binary
// STL export.
package gyroid

import "fmt"

// Mode selects the structural enclosure style.
type Mode int

const (
	// Shell is a hollow box enclosure with selectively carved ports.
	Shell Mode = iota
	// Frame is 12 edge beams and 8 corner blocks, leaving all faces open.
	Frame
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case Shell:
		return "shell"
	case Frame:
		return "frame"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Parameters is the immutable input record for Generate.
type Parameters struct {
	// Size is the cube edge length in mm.
	Size float64
	// CellSize is the target gyroid period in mm; snapped to evenly tile Size.
	CellSize float64
	// WallThreshold is the gyroid isovalue tau, typically 0.10-0.80.
	WallThreshold float64
	// Mode selects Shell or Frame enclosure.
	Mode Mode
	// ShellThickness is the wall thickness in mm (Shell only).
	ShellThickness float64
	// FrameBeamWidth is the beam/corner-block width in mm (Frame only).
	FrameBeamWidth float64
	// Resolution is the number of voxels per axis.
	Resolution int
	// SmoothingIterations is the number of Taubin smoothing passes.
	SmoothingIterations int
	// MakeManifold seals all ports (Shell only), producing a watertight shell.
	MakeManifold bool
}

// DefaultParameters returns the documented default parameter set.
func DefaultParameters() Parameters {
	return Parameters{
		Size:                100,
		CellSize:            25,
		WallThreshold:       0.35,
		Mode:                Shell,
		ShellThickness:      3.0,
		FrameBeamWidth:      10,
		Resolution:          60,
		SmoothingIterations: 8,
		MakeManifold:        false,
	}
}

// Validate checks the parameter constraints that gate generation.
// It returns an InvalidParameter error naming the first violation found.
func (p Parameters) Validate() error {
	if p.Size <= 0 {
		return &Error{Kind: InvalidParameter, Message: fmt.Sprintf("size must be > 0, got %g", p.Size)}
	}
	if p.CellSize <= 0 {
		return &Error{Kind: InvalidParameter, Message: fmt.Sprintf("cellSize must be > 0, got %g", p.CellSize)}
	}
	if p.Resolution <= 0 {
		return &Error{Kind: InvalidParameter, Message: fmt.Sprintf("resolution must be > 0, got %d", p.Resolution)}
	}
	if p.ShellThickness < 0 {
		return &Error{Kind: InvalidParameter, Message: fmt.Sprintf("shellThickness must be >= 0, got %g", p.ShellThickness)}
	}
	if p.Mode == Frame {
		if p.FrameBeamWidth <= 0 {
			return &Error{Kind: InvalidParameter, Message: fmt.Sprintf("frameBeamWidth must be > 0, got %g", p.FrameBeamWidth)}
		}
		if p.FrameBeamWidth >= p.Size/2 {
			return &Error{Kind: InvalidParameter, Message: fmt.Sprintf("frameBeamWidth must be < size/2 (%g), got %g", p.Size/2, p.FrameBeamWidth)}
		}
	}
	if p.SmoothingIterations < 0 {
		return &Error{Kind: InvalidParameter, Message: fmt.Sprintf("smoothingIterations must be >= 0, got %d", p.SmoothingIterations)}
	}
	return nil
}

// SnapReport describes how CellSize was adjusted so the gyroid tiles evenly
// across Size. See DESIGN.md for the Open Question this resolves.
type SnapReport struct {
	RequestedCellSize float64
	SnappedCellSize   float64
	CellCount         int
}

// snapCellSize computes cellCount = max(1, round(size/cellSize)) and the
// resulting snapped cell size, per spec.md §4.1.
func snapCellSize(size, cellSize float64) SnapReport {
	cellCount := roundToInt(size / cellSize)
	if cellCount < 1 {
		cellCount = 1
	}
	return SnapReport{
		RequestedCellSize: cellSize,
		SnappedCellSize:   size / float64(cellCount),
		CellCount:         cellCount,
	}
}

// roundToInt rounds a float to the nearest int, halves away from zero.
func roundToInt(f float64) int {
	if f >= 0 {
		return int(f + 0.5)
	}
	return int(f - 0.5)
}
