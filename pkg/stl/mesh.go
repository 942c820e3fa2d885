package stl

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gohalfedge/pkg/halfedge"
)

// BuildReport summarises how the triangles of a model were added to a mesh
type BuildReport struct {
	Triangles   int // triangles in the model
	Added       int // faces created
	Degenerate  int // skipped: repeated corner or non-finite coordinate
	NonManifold int // skipped in lenient mode: edge already owned by a face
	Flipped     int // added faces whose stored normal points against the winding
}

// BuildMesh adds every triangle of the model to a new half-edge mesh. STL
// facets are counter-clockwise by convention; pass CW for files authored the
// other way round so face normals come out pointing outward.
//
// Degenerate triangles are always skipped and counted. A triangle that
// would make the mesh non-manifold fails the build unless lenient is set,
// in which case it is skipped and counted too. Faces whose stored facet
// normal contradicts the winding are counted in Flipped; a file where most
// faces are flipped was probably written with the other winding.
func BuildMesh(model *Model, winding halfedge.Winding, lenient bool, opts ...halfedge.Option) (*halfedge.Mesh, *BuildReport, error) {
	mesh := halfedge.NewMesh(winding, opts...)
	report := &BuildReport{Triangles: model.TriangleCount()}

	for i, tri := range model.Triangles {
		_, err := mesh.AddPolygon(tri.Corners())
		switch {
		case err == nil:
			report.Added++
			if !tri.NormalAgrees(winding == halfedge.CW) {
				report.Flipped++
			}
		case errors.Is(err, halfedge.ErrMalformedPolygon):
			report.Degenerate++
		case lenient && errors.Is(err, halfedge.ErrNonManifold):
			report.NonManifold++
		default:
			return nil, report, fmt.Errorf("triangle %d: %w", i, err)
		}
	}

	return mesh, report, nil
}
