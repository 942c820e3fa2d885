package halfedge

import (
	"math"
	"testing"

	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSingleQuad(t *testing.T) {
	m := buildMesh(t, CW, quadA)

	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 1, m.NumFaces())
	assert.Equal(t, 4, m.NumEdges())
	assert.Equal(t, 8, m.NumHalfEdges())
	assert.NoError(t, m.Validate())
}

func TestTwoQuadsShareEdge(t *testing.T) {
	m := buildMesh(t, CW, quadA, quadB)

	assert.Equal(t, 6, m.NumVertices())
	assert.Equal(t, 2, m.NumFaces())
	assert.Equal(t, 7, m.NumEdges())
	assert.NoError(t, m.Validate())

	shared, err := m.HalfEdgeBetween(v(9, 3, 0), v(6, 6, 0))
	require.NoError(t, err)
	assert.Equal(t, FaceID(2), shared.Face())

	twin, err := m.Edge(shared.Pair())
	require.NoError(t, err)
	assert.Equal(t, FaceID(1), twin.Face())
}

func TestCube(t *testing.T) {
	m := buildCube(t)

	assert.Equal(t, 8, m.NumVertices())
	assert.Equal(t, 12, m.NumEdges())
	assert.Equal(t, 6, m.NumFaces())
	assert.True(t, m.IsClosed())
	assert.Empty(t, m.BoundaryEdges())
	assert.NoError(t, m.Validate())
}

func TestSharedCoordinateHasOneVertex(t *testing.T) {
	m := buildMesh(t, CW, quadA, quadB)

	count := 0
	for vert := range m.Vertices() {
		if vert.Location() == v(6, 6, 0) {
			count++
		}
	}
	assert.Equal(t, 1, count)

	vert, err := m.VertexAt(v(6, 6, 0))
	require.NoError(t, err)
	assert.Equal(t, VertexIDOf(v(6, 6, 0)), vert.ID())
	assert.Equal(t, 1, vert.Index())
	assert.Equal(t, 3, vert.Degree())
}

func TestNegativeZeroSharesVertex(t *testing.T) {
	negZero := math.Copysign(0, -1)
	m := buildMesh(t, CCW,
		[]geometry.Vector3{v(0, 0, 0), v(1, 0, 0), v(0, 1, 0)},
		[]geometry.Vector3{v(1, 0, 0), v(negZero, 0, 0), v(0, -1, 0)},
	)

	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 5, m.NumEdges())
}

func TestPairOfPairIsSelf(t *testing.T) {
	m := buildCube(t)

	for e := range m.Edges() {
		pair, err := m.Edge(e.Pair())
		require.NoError(t, err)
		back, err := m.Edge(pair.Pair())
		require.NoError(t, err)
		assert.Same(t, e, back)
		assert.NotEqual(t, e.Origin(), pair.Origin())
	}
}

func TestAddPolygonRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		points []geometry.Vector3
	}{
		{"empty", nil},
		{"two points", []geometry.Vector3{v(0, 0, 0), v(1, 0, 0)}},
		{"duplicate", []geometry.Vector3{v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(1, 0, 0)}},
		{"NaN", []geometry.Vector3{v(0, 0, 0), v(1, 0, 0), v(math.NaN(), 1, 0)}},
		{"Inf", []geometry.Vector3{v(0, 0, 0), v(math.Inf(1), 0, 0), v(0, 1, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMesh(CCW)
			id, err := m.AddPolygon(tt.points)
			assert.True(t, errors.Is(err, ErrMalformedPolygon), "got %v", err)
			assert.Equal(t, NoFace, id)
			assert.Equal(t, 0, m.NumVertices())
			assert.Equal(t, 0, m.NumEdges())
		})
	}
}

func TestAddPolygonRejectsNonManifold(t *testing.T) {
	m := buildMesh(t, CW, quadA)

	// same directed edge (6,6,0) -> (9,3,0) as quadA
	_, err := m.AddPolygon([]geometry.Vector3{v(6, 6, 0), v(9, 3, 0), v(8, 8, 1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonManifold), "got %v", err)

	// rejected without mutation
	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 4, m.NumEdges())
	assert.Equal(t, 1, m.NumFaces())
	assert.NoError(t, m.Validate())

	id, err := m.AddPolygon(quadB)
	require.NoError(t, err)
	assert.Equal(t, FaceID(2), id)
}

func TestBoundaryChainAfterSharedEdge(t *testing.T) {
	m := buildMesh(t, CW, quadA, quadB)

	boundary := m.BoundaryEdges()
	require.Len(t, boundary, 6)

	start := boundary[0]
	id := start.ID()
	steps := 0
	for {
		e, err := m.Edge(id)
		require.NoError(t, err)
		assert.True(t, e.IsBoundary())

		next, err := m.Edge(e.Next())
		require.NoError(t, err)
		assert.Equal(t, e.ID(), next.Prev())

		dest, err := m.Destination(e.ID())
		require.NoError(t, err)
		assert.Equal(t, dest.ID(), next.Origin())

		steps++
		id = e.Next()
		if id == start.ID() || steps > 10 {
			break
		}
	}
	assert.Equal(t, 6, steps)
}

func TestTouchingAtSingleVertex(t *testing.T) {
	// two triangles in different planes sharing only the origin
	m := buildMesh(t, CCW,
		[]geometry.Vector3{v(0, 0, 0), v(1, 0, 0), v(0, 1, 0)},
		[]geometry.Vector3{v(0, 0, 0), v(-1, 0, 0), v(0, 0, -1)},
	)

	assert.Equal(t, 5, m.NumVertices())
	assert.Equal(t, 6, m.NumEdges())
	assert.NoError(t, m.Validate())

	// the external chains stay separate at the origin, so its star walk only
	// covers the fan of its first edge
	origin, err := m.VertexAt(v(0, 0, 0))
	require.NoError(t, err)
	faces, err := m.VertexFaces(origin.ID())
	require.NoError(t, err)
	require.Len(t, faces, 1)
	assert.Equal(t, FaceID(1), faces[0].ID())

	require.NoError(t, m.CalculateFaceNormals(true))
	second, err := m.Face(2)
	require.NoError(t, err)
	n, _ := second.Normal()
	assertVectorClose(t, v(0, -1, 0), n)

	require.NoError(t, m.CalculateVertexNormals())
	n, ok := origin.Normal()
	require.True(t, ok)
	assertVectorClose(t, v(0, 0, 1), n)
}

func TestAddPolygonRejectsEdgeCollision(t *testing.T) {
	m := buildMesh(t, CCW, []geometry.Vector3{v(0, 0, 0), v(1, 0, 0), v(0, 1, 0)})

	// file the external half-edge (0,0,0) -> (0,1,0) under the id of
	// (0,0,0) -> (5,5,5): same origin, different destination
	external, err := m.HalfEdgeBetween(v(0, 0, 0), v(0, 1, 0))
	require.NoError(t, err)
	require.True(t, external.IsBoundary())
	m.edges[EdgeIDOf(v(0, 0, 0), v(5, 5, 5))] = external

	_, err = m.AddPolygon([]geometry.Vector3{v(0, 0, 0), v(5, 5, 5), v(0, 5, 5)})
	assert.ErrorIs(t, err, ErrIDCollision)

	assert.Equal(t, 3, m.NumVertices())
	assert.Equal(t, 1, m.NumFaces())
	assert.True(t, external.IsBoundary())
}

func TestAddPolygonLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := NewMesh(CW, WithLogger(zap.New(core)))

	_, err := m.AddPolygon(quadA)
	require.NoError(t, err)

	entries := logs.FilterMessage("polygon added").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(4), entries[0].ContextMap()["vertices"])
}

func TestParseWinding(t *testing.T) {
	w, err := ParseWinding("cw")
	require.NoError(t, err)
	assert.Equal(t, CW, w)

	w, err = ParseWinding("CCW")
	require.NoError(t, err)
	assert.Equal(t, CCW, w)
	assert.Equal(t, "ccw", w.String())

	_, err = ParseWinding("sideways")
	assert.Error(t, err)
}

func TestIDsAreContentDerived(t *testing.T) {
	a := buildMesh(t, CW, quadA)
	b := buildMesh(t, CW, quadB, quadA)

	for vert := range a.Vertices() {
		other, err := b.Vertex(vert.ID())
		require.NoError(t, err)
		assert.Equal(t, vert.Location(), other.Location())
	}

	e, err := a.HalfEdgeBetween(v(2, 3, 0), v(6, 6, 0))
	require.NoError(t, err)
	assert.Equal(t, EdgeIDOf(v(2, 3, 0), v(6, 6, 0)), e.ID())
	assert.NotEqual(t, EdgeIDOf(v(6, 6, 0), v(2, 3, 0)), e.ID())
}
