package main

import (
	"testing"

	"github.com/chazu/lignin/pkg/gyroid"
)

func TestEmitProgressNoopBeforeStartup(t *testing.T) {
	app := NewApp()
	app.emitProgress(gyroid.Progress{Percent: 50, Phase: "field"})
}

func TestGenerateDefaultRequest(t *testing.T) {
	app := NewApp()
	resp := app.Generate(GenerateRequest{
		Size:                100,
		CellSize:            25,
		WallThreshold:       0.35,
		Mode:                "shell",
		ShellThickness:      3,
		Resolution:          20,
		SmoothingIterations: 2,
	})

	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if len(resp.Positions) == 0 {
		t.Fatalf("expected a non-empty mesh")
	}
	if resp.CellCount == 0 {
		t.Fatalf("expected a non-zero cellCount")
	}
}

func TestGenerateInvalidParameterSurfacesError(t *testing.T) {
	app := NewApp()
	resp := app.Generate(GenerateRequest{Size: 0, Resolution: 20})
	if resp.Error == "" {
		t.Fatalf("expected an error for size=0")
	}
	if len(resp.Positions) != 0 {
		t.Fatalf("expected no mesh alongside an error")
	}
}

func TestGenerateUnknownModeSurfacesError(t *testing.T) {
	app := NewApp()
	resp := app.Generate(GenerateRequest{Size: 100, CellSize: 25, Resolution: 20, Mode: "bogus"})
	if resp.Error == "" {
		t.Fatalf("expected an error for an unknown mode")
	}
}

func TestExportSTLRoundTrip(t *testing.T) {
	app := NewApp()
	gen := app.Generate(GenerateRequest{
		Size:       60,
		CellSize:   30,
		Mode:       "shell",
		Resolution: 16,
	})
	if gen.Error != "" {
		t.Fatalf("Generate: %s", gen.Error)
	}

	exp := app.ExportSTL(ExportRequest{Positions: gen.Positions, Normals: gen.Normals, Indices: gen.Indices})
	if exp.Error != "" {
		t.Fatalf("ExportSTL: %s", exp.Error)
	}
	if len(exp.Data) == 0 {
		t.Fatalf("expected non-empty STL bytes")
	}
}

func TestExportSTLEmptyRequest(t *testing.T) {
	app := NewApp()
	exp := app.ExportSTL(ExportRequest{})
	if exp.Error != "" {
		t.Fatalf("unexpected error for empty mesh export: %s", exp.Error)
	}
	if len(exp.Data) != 84 {
		t.Fatalf("expected 84-byte header-only STL for empty mesh, got %d", len(exp.Data))
	}
}
