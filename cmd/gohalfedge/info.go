package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gohalfedge/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display mesh topology and dimensions",
	Long:  "Show vertex, edge and face counts, closedness, dimensions, surface area, volume and edge statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	mesh, report, err := loadMesh(cmd.Context(), filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	result, err := analysis.AnalyzeMesh(mesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing mesh: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Mesh Information")
	fmt.Println("================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Winding: %s\n\n", mesh.Winding())

	fmt.Println("Source:")
	fmt.Printf("  Triangles: %d\n", report.Triangles)
	fmt.Printf("  Skipped (degenerate): %d\n", report.Degenerate)
	fmt.Printf("  Skipped (non-manifold): %d\n", report.NonManifold)
	fmt.Printf("  Stored normals against winding: %d\n\n", report.Flipped)

	fmt.Println("Topology:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Faces: %d\n", result.FaceCount)
	fmt.Printf("  Boundary edges: %d\n", result.BoundaryEdges)
	fmt.Printf("  Euler characteristic: %d\n", result.Euler)
	fmt.Printf("  Closed: %t\n\n", result.Closed)

	fmt.Println("Bounding Box:")
	if result.BoundingBox.IsEmpty() {
		fmt.Printf("  none (no vertices)\n\n")
	} else {
		fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))
	}

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Surface Area: %.6f square units\n", result.SurfaceArea)
	if result.Closed {
		fmt.Printf("  Volume: %.6f cubic units\n\n", result.Volume)
	} else {
		fmt.Printf("  Volume: n/a (mesh is open)\n\n")
	}

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)

	loops, err := analysis.AnalyzeBoundary(mesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing boundary: %v\n", err)
		os.Exit(1)
	}
	if len(loops) > 0 {
		fmt.Printf("\nBoundary Loops: %d\n", len(loops))
		for i, loop := range loops {
			state := "closed"
			if !loop.Closed {
				state = "open"
			}
			fmt.Printf("  #%d: %d edges, %s, perimeter %.6f units", i+1, len(loop.Points), state, loop.Perimeter)
			if loop.Round() {
				fmt.Printf(", round (radius %.6f at %s)", loop.Circle.Radius, analysis.FormatVector(loop.Circle.Center))
			}
			fmt.Println()
		}
	}

	if err := mesh.Validate(); err != nil {
		fmt.Printf("\nWarning: %v\n", err)
	}
}
