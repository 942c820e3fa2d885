package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gohalfedge/pkg/halfedge"
	"github.com/philipparndt/gohalfedge/pkg/openscad"
	"github.com/philipparndt/gohalfedge/pkg/stl"
	"go.uber.org/zap"
)

// loadModel parses an STL file, rendering OpenSCAD sources to a temporary
// STL first
func loadModel(ctx context.Context, filePath string) (*stl.Model, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".stl":
		model, err := stl.Parse(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STL file: %w", err)
		}
		return model, nil

	case ".scad":
		source, err := filepath.Abs(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", filePath, err)
		}

		tempFile, err := os.CreateTemp("", "gohalfedge_*.stl")
		if err != nil {
			return nil, fmt.Errorf("failed to create temporary file: %w", err)
		}
		tempFile.Close()
		defer os.Remove(tempFile.Name())

		logger.Info("rendering OpenSCAD file", zap.String("file", filePath))
		renderer := openscad.NewRenderer(filepath.Dir(source))
		if err := renderer.RenderToSTL(ctx, source, tempFile.Name()); err != nil {
			return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
		}

		model, err := stl.Parse(tempFile.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
		}
		return model, nil

	default:
		return nil, fmt.Errorf("unsupported file type: %s (expected .stl or .scad)", ext)
	}
}

// loadMesh loads a file and builds its half-edge mesh using the global flags
func loadMesh(ctx context.Context, filePath string) (*halfedge.Mesh, *stl.BuildReport, error) {
	model, err := loadModel(ctx, filePath)
	if err != nil {
		return nil, nil, err
	}

	mesh, report, err := stl.BuildMesh(model, winding, lenient, halfedge.WithLogger(logger))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build mesh: %w", err)
	}

	logger.Debug("mesh built",
		zap.String("file", filePath),
		zap.Int("triangles", report.Triangles),
		zap.Int("faces", report.Added),
		zap.Int("degenerate", report.Degenerate),
		zap.Int("nonManifold", report.NonManifold),
		zap.Int("flipped", report.Flipped),
	)
	if report.Added > 0 && report.Flipped*2 > report.Added {
		logger.Warn("most stored normals disagree with the winding; try the other --winding",
			zap.String("file", filePath),
			zap.Stringer("winding", winding),
			zap.Int("flipped", report.Flipped),
		)
	}
	if report.Degenerate > 0 || report.NonManifold > 0 {
		logger.Warn("triangles skipped",
			zap.String("file", filePath),
			zap.Int("degenerate", report.Degenerate),
			zap.Int("nonManifold", report.NonManifold),
		)
	}

	return mesh, report, nil
}

// watchList returns the files whose changes affect the mesh built from filePath
func watchList(filePath string) ([]string, error) {
	if strings.ToLower(filepath.Ext(filePath)) != ".scad" {
		return []string{filePath}, nil
	}

	source, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", filePath, err)
	}

	renderer := openscad.NewRenderer(filepath.Dir(source))
	deps, err := renderer.ResolveDependencies(source)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}
	return deps, nil
}
