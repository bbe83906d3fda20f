package gyroid

import "testing"

func TestDefaultParametersValid(t *testing.T) {
	p := DefaultParameters()
	if err := p.Validate(); err != nil {
		t.Fatalf("default parameters should validate, got: %v", err)
	}
}

func TestValidateRejectsNonPositiveSize(t *testing.T) {
	p := DefaultParameters()
	p.Size = 0
	err := p.Validate()
	if !IsKind(err, InvalidParameter) {
		t.Fatalf("expected InvalidParameter, got %v", err)
	}
}

func TestValidateRejectsNonPositiveCellSize(t *testing.T) {
	p := DefaultParameters()
	p.CellSize = -1
	if !IsKind(p.Validate(), InvalidParameter) {
		t.Fatalf("expected InvalidParameter for cellSize")
	}
}

func TestValidateRejectsNonPositiveResolution(t *testing.T) {
	p := DefaultParameters()
	p.Resolution = 0
	if !IsKind(p.Validate(), InvalidParameter) {
		t.Fatalf("expected InvalidParameter for resolution")
	}
}

func TestValidateRejectsOversizedFrameBeam(t *testing.T) {
	p := DefaultParameters()
	p.Mode = Frame
	p.FrameBeamWidth = p.Size / 2
	if !IsKind(p.Validate(), InvalidParameter) {
		t.Fatalf("expected InvalidParameter for frameBeamWidth >= size/2")
	}
}

func TestValidateRejectsNonPositiveFrameBeam(t *testing.T) {
	p := DefaultParameters()
	p.Mode = Frame
	p.FrameBeamWidth = 0
	if !IsKind(p.Validate(), InvalidParameter) {
		t.Fatalf("expected InvalidParameter for frameBeamWidth <= 0")
	}
}

// TestCellSnapping is testable property 6: with size=100, cellSize=30, the
// effective cell size equals 100/round(100/30) = 33.33...mm, independent of
// other parameters.
func TestCellSnapping(t *testing.T) {
	snap := snapCellSize(100, 30)
	if snap.CellCount != 3 {
		t.Fatalf("cellCount = %d, want 3", snap.CellCount)
	}
	want := 100.0 / 3.0
	const tol = 1e-9
	if abs(snap.SnappedCellSize-want) > tol {
		t.Fatalf("snappedCellSize = %v, want %v", snap.SnappedCellSize, want)
	}
}

func TestCellSnappingSingleCell(t *testing.T) {
	// size=60, cellSize=60 -> cellCount=1 (scenario S4).
	snap := snapCellSize(60, 60)
	if snap.CellCount != 1 {
		t.Fatalf("cellCount = %d, want 1", snap.CellCount)
	}
	if abs(snap.SnappedCellSize-60) > 1e-9 {
		t.Fatalf("snappedCellSize = %v, want 60", snap.SnappedCellSize)
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
