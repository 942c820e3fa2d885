package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gohalfedge/pkg/halfedge"
	"github.com/philipparndt/gohalfedge/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose     bool
	windingFlag string
	planar      bool
	lenient     bool

	winding halfedge.Winding
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gohalfedge",
	Short: "Build and inspect half-edge meshes from STL and OpenSCAD files",
	Long: `gohalfedge loads STL (ASCII or binary) and OpenSCAD files into a half-edge
mesh with shared vertices and paired edges. It reports topology, edge and face
measurements, and face and vertex normals.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&windingFlag, "winding", "ccw", "Winding of the input facets (ccw or cw)")
	rootCmd.PersistentFlags().BoolVar(&planar, "planar", false, "Assume planar faces when computing normals")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "Skip non-manifold triangles instead of failing")
}

func setup(cmd *cobra.Command, args []string) error {
	w, err := halfedge.ParseWinding(windingFlag)
	if err != nil {
		return err
	}
	winding = w

	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	return nil
}

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
