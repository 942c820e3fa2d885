package stl

import (
	"testing"

	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/philipparndt/gohalfedge/pkg/halfedge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMeshTetrahedron(t *testing.T) {
	model, err := ParseBytes([]byte(tetrahedronASCII))
	require.NoError(t, err)

	mesh, report, err := BuildMesh(model, halfedge.CCW, false)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Added)
	assert.Equal(t, 0, report.Flipped)
	assert.Equal(t, 4, mesh.NumVertices())
	assert.Equal(t, 6, mesh.NumEdges())
	assert.Equal(t, 4, mesh.NumFaces())
	assert.True(t, mesh.IsClosed())
	assert.NoError(t, mesh.Validate())

	require.NoError(t, mesh.CalculateFaceNormals(true))
	f, err := mesh.Face(1)
	require.NoError(t, err)
	n, _ := f.Normal()
	assert.InDelta(t, -1.0, n.Z, 1e-10)
}

func TestBuildMeshSkipsDegenerate(t *testing.T) {
	model := NewModel("degenerate")
	p := geometry.NewVector3(1, 1, 1)
	model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, p, p, geometry.NewVector3(0, 0, 0)))
	model.AddTriangle(geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))

	mesh, report, err := BuildMesh(model, halfedge.CCW, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Degenerate)
	assert.Equal(t, 1, report.Added)
	assert.Equal(t, 1, mesh.NumFaces())
}

func TestBuildMeshNonManifold(t *testing.T) {
	model := NewModel("twice")
	tri := geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	)
	model.AddTriangle(tri)
	model.AddTriangle(tri)

	_, _, err := BuildMesh(model, halfedge.CCW, false)
	assert.ErrorIs(t, err, halfedge.ErrNonManifold)
	assert.ErrorContains(t, err, "triangle 1")

	mesh, report, err := BuildMesh(model, halfedge.CCW, true)
	require.NoError(t, err)
	assert.Equal(t, 1, report.NonManifold)
	assert.Equal(t, 1, mesh.NumFaces())
}

func TestModelVolume(t *testing.T) {
	model, err := ParseBytes([]byte(tetrahedronASCII))
	require.NoError(t, err)

	assert.InDelta(t, 1.0/6.0, model.Volume(), 1e-10)
}

func TestBuildMeshClockwise(t *testing.T) {
	model, err := ParseBytes([]byte(tetrahedronASCII))
	require.NoError(t, err)

	mesh, report, err := BuildMesh(model, halfedge.CW, false)
	require.NoError(t, err)
	assert.Equal(t, halfedge.CW, mesh.Winding())
	// every stored normal in the file points outward for counter-clockwise corners
	assert.Equal(t, 4, report.Flipped)

	require.NoError(t, mesh.CalculateFaceNormals(true))
	f, err := mesh.Face(1)
	require.NoError(t, err)
	n, _ := f.Normal()
	assert.InDelta(t, 1.0, n.Z, 1e-10)
}
