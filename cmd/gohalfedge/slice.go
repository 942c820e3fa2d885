package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/gohalfedge/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	sliceAxis   string
	slicePos    float64
	slicePoints bool
)

var sliceCmd = &cobra.Command{
	Use:   "slice [file]",
	Short: "Cut the mesh with an axis-aligned plane",
	Long: `Intersect the mesh with the plane where the chosen axis equals --at and report
the resulting contours with their length and, when closed, their area.`,
	Args: cobra.ExactArgs(1),
	Run:  runSlice,
}

func init() {
	rootCmd.AddCommand(sliceCmd)

	sliceCmd.Flags().StringVar(&sliceAxis, "axis", "z", "Axis perpendicular to the cutting plane (x, y or z)")
	sliceCmd.Flags().Float64Var(&slicePos, "at", 0.0, "Position of the cutting plane along the axis")
	sliceCmd.Flags().BoolVarP(&slicePoints, "points", "p", false, "List the points of every contour")
}

func runSlice(cmd *cobra.Command, args []string) {
	filename := args[0]

	axis := strings.Index("xyz", strings.ToLower(sliceAxis))
	if len(sliceAxis) != 1 || axis < 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid axis %q (expected x, y or z)\n", sliceAxis)
		os.Exit(1)
	}

	mesh, _, err := loadMesh(cmd.Context(), filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	contours, err := analysis.Section(mesh, axis, slicePos)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error slicing mesh: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Cross-section at %s = %.6f\n", strings.ToUpper(sliceAxis), slicePos)
	fmt.Println("====================")
	if len(contours) == 0 {
		lo, hi := mesh.Bounds().Span(axis)
		fmt.Printf("The plane does not intersect the mesh (%s spans %.6f to %.6f).\n", strings.ToUpper(sliceAxis), lo, hi)
		return
	}

	totalArea := 0.0
	for i, c := range contours {
		if c.Closed {
			fmt.Printf("Contour #%d: closed, %d points, length %.6f units, area %.6f square units\n", i+1, len(c.Points), c.Length, c.Area)
			totalArea += c.Area
		} else {
			fmt.Printf("Contour #%d: open, %d points, length %.6f units\n", i+1, len(c.Points), c.Length)
		}
		if slicePoints {
			for _, p := range c.Points {
				fmt.Printf("  %s\n", analysis.FormatVector(p))
			}
		}
	}
	fmt.Printf("\nSum of closed contour areas: %.6f square units\n", totalArea)
}
