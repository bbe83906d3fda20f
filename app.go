package main

import (
	"context"
	"fmt"
	"log"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/chazu/lignin/pkg/gyroid"
)

// App is the Wails backend. It exposes Generate and ExportSTL to the
// frontend via bindings, the same binding-boundary contract the editor's
// Evaluate method used: no panic ever crosses into the frontend.
type App struct {
	ctx context.Context
}

// NewApp creates a new App.
func NewApp() *App {
	return &App{}
}

// startup is called by Wails on app startup. The context is saved so
// Generate can emit progress events back to the frontend through the
// Wails runtime.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// emitProgress forwards a pipeline progress report to the frontend as a
// Wails event, named the way the editor's binding methods named their own
// frontend-facing data. It is a no-op before startup has run (e.g. in
// tests that call Generate directly on a bare *App).
func (a *App) emitProgress(p gyroid.Progress) {
	if a.ctx == nil {
		return
	}
	wailsruntime.EventsEmit(a.ctx, "generate:progress", p)
}

// GenerateRequest carries the gyroid core's parameter set across the
// binding boundary.
type GenerateRequest struct {
	Size                float64 `json:"size"`
	CellSize            float64 `json:"cellSize"`
	WallThreshold       float64 `json:"wallThreshold"`
	Mode                string  `json:"mode"`
	ShellThickness      float64 `json:"shellThickness"`
	FrameBeamWidth      float64 `json:"frameBeamWidth"`
	Resolution          int     `json:"resolution"`
	SmoothingIterations int     `json:"smoothingIterations"`
	MakeManifold        bool    `json:"makeManifold"`
}

// GenerateResponse carries the generated mesh, or an error, back across
// the binding boundary.
type GenerateResponse struct {
	Positions       []float32 `json:"positions"`
	Normals         []float32 `json:"normals"`
	Indices         []uint32  `json:"indices"`
	SnappedCellSize float64   `json:"snappedCellSize"`
	CellCount       int       `json:"cellCount"`
	Error           string    `json:"error,omitempty"`
}

// ExportRequest carries a previously generated mesh back in for STL
// encoding, since the frontend holds the mesh after Generate returns.
type ExportRequest struct {
	Positions []float32 `json:"positions"`
	Normals   []float32 `json:"normals"`
	Indices   []uint32  `json:"indices"`
}

// ExportResponse carries the binary STL bytes, or an error.
type ExportResponse struct {
	Data  []byte `json:"data"`
	Error string `json:"error,omitempty"`
}

func parseMode(s string) (gyroid.Mode, error) {
	switch s {
	case "", "shell":
		return gyroid.Shell, nil
	case "frame":
		return gyroid.Frame, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

// Generate runs the gyroid pipeline for the given request and returns the
// resulting mesh buffers. This is the primary binding called by the
// frontend's parameter panel. Internal panics are recovered and reported
// through Error rather than propagating across the binding boundary.
func (a *App) Generate(req GenerateRequest) (resp GenerateResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Generate panic: %v", r)
			resp = GenerateResponse{Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	mode, err := parseMode(req.Mode)
	if err != nil {
		return GenerateResponse{Error: err.Error()}
	}

	params := gyroid.Parameters{
		Size:                req.Size,
		CellSize:            req.CellSize,
		WallThreshold:       req.WallThreshold,
		Mode:                mode,
		ShellThickness:      req.ShellThickness,
		FrameBeamWidth:      req.FrameBeamWidth,
		Resolution:          req.Resolution,
		SmoothingIterations: req.SmoothingIterations,
		MakeManifold:        req.MakeManifold,
	}

	mesh, snap, err := gyroid.Generate(params, a.emitProgress)
	if err != nil {
		log.Printf("Generate error: %v", err)
		return GenerateResponse{Error: err.Error()}
	}

	return GenerateResponse{
		Positions:       mesh.Positions,
		Normals:         mesh.Normals,
		Indices:         mesh.Indices,
		SnappedCellSize: snap.SnappedCellSize,
		CellCount:       snap.CellCount,
	}
}

// ExportSTL encodes a previously generated mesh as a binary STL file,
// handed back to the frontend for download.
func (a *App) ExportSTL(req ExportRequest) (resp ExportResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ExportSTL panic: %v", r)
			resp = ExportResponse{Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	data := gyroid.ExportSTL(gyroid.MeshData{
		Positions: req.Positions,
		Normals:   req.Normals,
		Indices:   req.Indices,
	})
	return ExportResponse{Data: data}
}
