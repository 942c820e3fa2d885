package halfedge

import (
	"testing"

	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepCopyMatchesSource(t *testing.T) {
	m := buildMesh(t, CW, quadA, quadB)
	clone := m.DeepCopy()

	assert.Equal(t, m.NumVertices(), clone.NumVertices())
	assert.Equal(t, m.NumEdges(), clone.NumEdges())
	assert.Equal(t, m.NumFaces(), clone.NumFaces())
	assert.Equal(t, m.Winding(), clone.Winding())
	assert.NoError(t, clone.Validate())

	for vert := range m.Vertices() {
		other, err := clone.Vertex(vert.ID())
		require.NoError(t, err)
		assert.NotSame(t, vert, other)
		assert.Equal(t, vert.Location(), other.Location())
		assert.Equal(t, vert.Index(), other.Index())
		assert.Equal(t, vert.Outbound(), other.Outbound())
	}
	for e := range m.Edges() {
		other, err := clone.Edge(e.ID())
		require.NoError(t, err)
		assert.NotSame(t, e, other)
		assert.Equal(t, *e, *other)
	}
	for f := range m.Faces() {
		other, err := clone.Face(f.ID())
		require.NoError(t, err)
		assert.NotSame(t, f, other)
		assert.Equal(t, *f, *other)
	}
}

func TestDeepCopyIsIndependent(t *testing.T) {
	m := buildMesh(t, CW, quadA, quadB)
	clone := m.DeepCopy()

	require.NoError(t, clone.RemoveFace(2))
	require.NoError(t, clone.CalculateFaceNormals(true))
	_, err := clone.AddPolygon([]geometry.Vector3{v(2, 3, 0), v(5, 1, 0), v(0, 0, 0)})
	require.NoError(t, err)

	assert.Equal(t, 6, m.NumVertices())
	assert.Equal(t, 7, m.NumEdges())
	assert.Equal(t, 2, m.NumFaces())
	assert.NoError(t, m.Validate())

	shared, err := m.HalfEdgeBetween(v(9, 3, 0), v(6, 6, 0))
	require.NoError(t, err)
	assert.Equal(t, FaceID(2), shared.Face())

	for f := range m.Faces() {
		_, ok := f.Normal()
		assert.False(t, ok)
	}

	_, err = m.VertexAt(v(0, 0, 0))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeepCopyKeepsCounters(t *testing.T) {
	m := buildMesh(t, CW, quadA, quadB)
	require.NoError(t, m.RemoveFace(2))
	clone := m.DeepCopy()

	id, err := clone.AddPolygon([]geometry.Vector3{v(2, 3, 0), v(5, 1, 0), v(0, 0, 0)})
	require.NoError(t, err)
	assert.Equal(t, FaceID(3), id)

	vert, err := clone.VertexAt(v(0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 6, vert.Index())
}

func TestRemoveFace(t *testing.T) {
	m := buildMesh(t, CW, quadA, quadB)

	edges, err := m.FaceEdges(2)
	require.NoError(t, err)
	require.NoError(t, m.RemoveFace(2))

	assert.Equal(t, 1, m.NumFaces())
	assert.Equal(t, 7, m.NumEdges())
	assert.Equal(t, 6, m.NumVertices())
	for _, e := range edges {
		assert.True(t, e.IsBoundary())
	}

	_, err = m.Face(2)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.TraverseEdges(2)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.RemoveFace(2), ErrNotFound)
	assert.NoError(t, m.Validate())

	// the detached edges can be claimed again
	id, err := m.AddPolygon(quadB)
	require.NoError(t, err)
	assert.Equal(t, FaceID(3), id)
	assert.Equal(t, 2, m.NumFaces())
	assert.Equal(t, 7, m.NumEdges())
	assert.NoError(t, m.Validate())
	assert.Len(t, m.BoundaryEdges(), 6)
}
