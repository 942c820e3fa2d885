package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gohalfedge/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	faceCount    int
	faceLargest  bool
	faceSmallest bool
	faceThinnest bool
)

var facesCmd = &cobra.Command{
	Use:   "faces [file]",
	Short: "Analyze mesh faces",
	Long:  "Display information about faces including area, perimeter, normal, corner angles and vertex positions.",
	Args:  cobra.ExactArgs(1),
	Run:   runFaces,
}

func init() {
	rootCmd.AddCommand(facesCmd)

	facesCmd.Flags().IntVarP(&faceCount, "count", "n", 10, "Number of faces to display")
	facesCmd.Flags().BoolVarP(&faceLargest, "largest", "l", false, "Show largest faces by area")
	facesCmd.Flags().BoolVarP(&faceSmallest, "smallest", "s", false, "Show smallest faces by area")
	facesCmd.Flags().BoolVarP(&faceThinnest, "thinnest", "t", false, "Show faces with the sharpest corners first")

	facesCmd.MarkFlagsMutuallyExclusive("largest", "smallest", "thinnest")
}

func runFaces(cmd *cobra.Command, args []string) {
	filename := args[0]

	mesh, _, err := loadMesh(cmd.Context(), filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	if err := mesh.CalculateFaceNormals(planar); err != nil {
		fmt.Fprintf(os.Stderr, "Error calculating face normals: %v\n", err)
		os.Exit(1)
	}

	faces, err := analysis.AnalyzeFaces(mesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing faces: %v\n", err)
		os.Exit(1)
	}

	totalArea := 0.0
	minArea := math.MaxFloat64
	maxArea := 0.0
	for _, f := range faces {
		totalArea += f.Area
		minArea = math.Min(minArea, f.Area)
		maxArea = math.Max(maxArea, f.Area)
	}
	if len(faces) == 0 {
		minArea = 0
	}

	var title string
	switch {
	case faceLargest:
		sort.SliceStable(faces, func(i, j int) bool { return faces[i].Area > faces[j].Area })
		title = "Largest Faces"
	case faceSmallest:
		sort.SliceStable(faces, func(i, j int) bool { return faces[i].Area < faces[j].Area })
		title = "Smallest Faces"
	case faceThinnest:
		sort.SliceStable(faces, func(i, j int) bool { return faces[i].MinAngle < faces[j].MinAngle })
		title = "Thinnest Faces"
	default:
		title = "Faces"
	}

	shown := min(faceCount, len(faces))
	fmt.Printf("%s (showing %d of %d)\n", title, shown, len(faces))
	fmt.Println("====================")
	fmt.Printf("Total surface area: %.6f square units\n", totalArea)
	fmt.Printf("Min face area: %.6f square units\n", minArea)
	fmt.Printf("Max face area: %.6f square units\n", maxArea)
	if len(faces) > 0 {
		fmt.Printf("Avg face area: %.6f square units\n", totalArea/float64(len(faces)))
	}
	fmt.Println()

	for _, f := range faces[:shown] {
		corners := make([]string, len(f.Vertices))
		for i, p := range f.Vertices {
			corners[i] = analysis.FormatVector(p)
		}

		fmt.Printf("Face %v:\n", f.ID)
		fmt.Printf("  Area: %.6f square units\n", f.Area)
		fmt.Printf("  Perimeter: %.6f units\n", f.Perimeter)
		fmt.Printf("  Normal: %s\n", analysis.FormatVector(f.Normal))
		fmt.Printf("  Center: %s\n", analysis.FormatVector(f.Center))
		fmt.Printf("  Corner angles: %.2f° to %.2f°\n", mgl64.RadToDeg(f.MinAngle), mgl64.RadToDeg(f.MaxAngle))
		fmt.Printf("  Vertices: %s\n\n", strings.Join(corners, ", "))
	}
}
