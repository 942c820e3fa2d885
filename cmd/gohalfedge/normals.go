package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gohalfedge/pkg/analysis"
	"github.com/philipparndt/gohalfedge/pkg/pack"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	normalsCount int
	normalsPack  bool
)

var normalsCmd = &cobra.Command{
	Use:   "normals [file]",
	Short: "Compute face and vertex normals",
	Long: `Compute the normal of every face, then average the normals of the faces around
each vertex. With --pack the mesh is also flattened into interleaved
position/normal buffers and a triangle index list.`,
	Args: cobra.ExactArgs(1),
	Run:  runNormals,
}

func init() {
	rootCmd.AddCommand(normalsCmd)

	normalsCmd.Flags().IntVarP(&normalsCount, "count", "n", 10, "Number of vertices to display")
	normalsCmd.Flags().BoolVar(&normalsPack, "pack", false, "Pack the mesh into vertex and index buffers")
}

func runNormals(cmd *cobra.Command, args []string) {
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
	if err := mesh.CalculateVertexNormals(); err != nil {
		fmt.Fprintf(os.Stderr, "Error calculating vertex normals: %v\n", err)
		os.Exit(1)
	}

	method := "Newell"
	if planar {
		method = "planar"
	}

	fmt.Println("Vertex Normals")
	fmt.Println("====================")
	fmt.Printf("Faces: %d (%s normals, %s winding)\n", mesh.NumFaces(), method, mesh.Winding())
	fmt.Printf("Vertices: %d\n\n", mesh.NumVertices())

	fmt.Printf("%-6s %-35s %-35s %-6s\n", "Index", "Position", "Normal", "Faces")
	fmt.Println("------------------------------------------------------------------------------------")
	shown := 0
	for v := range mesh.Vertices() {
		if shown == normalsCount {
			break
		}
		shown++

		faces, err := mesh.VertexFaces(v.ID())
		if err != nil {
			logger.Warn("vertex star walk failed", zap.Stringer("vertex", v.ID()), zap.Error(err))
		}

		normal := "none"
		if n, ok := v.Normal(); ok {
			normal = analysis.FormatVector(n)
		}
		fmt.Printf("%-6d %-35s %-35s %-6d\n", v.Index(), analysis.FormatVector(v.Location()), normal, len(faces))
	}

	if !normalsPack {
		return
	}

	buffers, err := pack.Pack(mesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error packing mesh: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Packed Buffers")
	fmt.Println("====================")
	fmt.Printf("Vertices: %d (%d floats, stride %d)\n", buffers.VertexCount(), len(buffers.Vertices), pack.Stride)
	fmt.Printf("Triangles: %d (%d indices)\n", buffers.TriangleCount(), len(buffers.Indices))
	fmt.Printf("Size: %d bytes\n", 4*(len(buffers.Vertices)+len(buffers.Indices)))
}
