package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/philipparndt/gohalfedge/pkg/halfedge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v(x, y, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, y, z)
}

func cube(t *testing.T, size float64) *halfedge.Mesh {
	t.Helper()
	s := size
	faces := [][]geometry.Vector3{
		{v(0, 0, 0), v(0, s, 0), v(s, s, 0), v(s, 0, 0)},
		{v(0, 0, s), v(s, 0, s), v(s, s, s), v(0, s, s)},
		{v(0, 0, 0), v(s, 0, 0), v(s, 0, s), v(0, 0, s)},
		{v(0, s, 0), v(0, s, s), v(s, s, s), v(s, s, 0)},
		{v(0, 0, 0), v(0, 0, s), v(0, s, s), v(0, s, 0)},
		{v(s, 0, 0), v(s, s, 0), v(s, s, s), v(s, 0, s)},
	}
	m := halfedge.NewMesh(halfedge.CCW)
	for _, f := range faces {
		_, err := m.AddPolygon(f)
		require.NoError(t, err)
	}
	return m
}

func TestAnalyzeCube(t *testing.T) {
	result, err := AnalyzeMesh(cube(t, 2))
	require.NoError(t, err)

	assert.Equal(t, 8, result.VertexCount)
	assert.Equal(t, 12, result.EdgeCount)
	assert.Equal(t, 6, result.FaceCount)
	assert.Equal(t, 2, result.Euler)
	assert.True(t, result.Closed)
	assert.Equal(t, 0, result.BoundaryEdges)
	assert.Len(t, result.AllEdges, 12)

	assert.InDelta(t, 24.0, result.SurfaceArea, 1e-10)
	assert.InDelta(t, 8.0, result.Volume, 1e-10)
	assert.Equal(t, v(2, 2, 2), result.Dimensions)
	assert.InDelta(t, 2.0, result.MinEdgeLength, 1e-10)
	assert.InDelta(t, 2.0, result.MaxEdgeLength, 1e-10)
	assert.InDelta(t, 2.0, result.AvgEdgeLength, 1e-10)
}

func TestAnalyzeOpenSheet(t *testing.T) {
	m := halfedge.NewMesh(halfedge.CCW)
	_, err := m.AddPolygon([]geometry.Vector3{v(0, 0, 0), v(3, 0, 0), v(3, 4, 0)})
	require.NoError(t, err)
	_, err = m.AddPolygon([]geometry.Vector3{v(0, 0, 0), v(3, 4, 0), v(0, 4, 0)})
	require.NoError(t, err)

	result, err := AnalyzeMesh(m)
	require.NoError(t, err)

	assert.False(t, result.Closed)
	assert.Equal(t, 0.0, result.Volume)
	assert.Equal(t, 5, result.EdgeCount)
	assert.Equal(t, 4, result.BoundaryEdges)
	assert.Len(t, FindBoundaryEdges(result), 4)
	assert.InDelta(t, 12.0, result.SurfaceArea, 1e-10)

	longest := FindLongestEdges(result, 1)
	require.Len(t, longest, 1)
	assert.InDelta(t, 5.0, longest[0].Length, 1e-10)
	assert.Equal(t, 2, longest[0].Faces)

	shortest := FindShortestEdges(result, 2)
	require.Len(t, shortest, 2)
	assert.InDelta(t, 3.0, shortest[0].Length, 1e-10)

	assert.Len(t, FindEdgesByLength(result, 3.5, 4.5), 2)
	assert.Len(t, FindLongestEdges(result, 50), 5)
}

func TestAnalyzeEmptyMesh(t *testing.T) {
	result, err := AnalyzeMesh(halfedge.NewMesh(halfedge.CCW))
	require.NoError(t, err)

	assert.Equal(t, 0, result.EdgeCount)
	assert.True(t, result.BoundingBox.IsEmpty())
	assert.Equal(t, 0.0, result.MinEdgeLength)
	assert.Equal(t, geometry.Vector3{}, result.Dimensions)
}

func TestAnalyzeFaces(t *testing.T) {
	faces, err := AnalyzeFaces(cube(t, 1))
	require.NoError(t, err)
	require.Len(t, faces, 6)

	for _, f := range faces {
		assert.Len(t, f.Vertices, 4)
		assert.InDelta(t, 1.0, f.Area, 1e-10)
		assert.InDelta(t, 4.0, f.Perimeter, 1e-10)
		assert.InDelta(t, 1.0, f.Normal.Length(), 1e-10)
		assert.InDelta(t, math.Pi/2, f.MinAngle, 1e-10)
		assert.InDelta(t, math.Pi/2, f.MaxAngle, 1e-10)
	}
	assert.InDelta(t, -1.0, faces[0].Normal.Z, 1e-10)
	assert.Equal(t, v(0.5, 0.5, 0), faces[0].Center)
}

func TestAnalyzeFacesSliver(t *testing.T) {
	m := halfedge.NewMesh(halfedge.CCW)
	_, err := m.AddPolygon([]geometry.Vector3{v(0, 0, 0), v(10, 0, 0), v(5, 0.1, 0)})
	require.NoError(t, err)

	faces, err := AnalyzeFaces(m)
	require.NoError(t, err)
	require.Len(t, faces, 1)

	assert.InDelta(t, math.Atan2(0.1, 5), faces[0].MinAngle, 1e-10)
	assert.InDelta(t, math.Pi-2*math.Atan2(0.1, 5), faces[0].MaxAngle, 1e-10)
}

func TestFindNearestVertex(t *testing.T) {
	m := cube(t, 1)

	nearest, distance := FindNearestVertex(m, v(0.9, 1.2, 0.1))
	require.NotNil(t, nearest)
	assert.Equal(t, v(1, 1, 0), nearest.Location())
	assert.InDelta(t, math.Sqrt(0.01+0.04+0.01), distance, 1e-10)

	none, _ := FindNearestVertex(halfedge.NewMesh(halfedge.CCW), v(0, 0, 0))
	assert.Nil(t, none)
}

func TestFormatVector(t *testing.T) {
	assert.Equal(t, "(1.000000, -2.500000, 0.000000)", FormatVector(v(1, -2.5, 0)))
	assert.Equal(t, "1.500000 mm", FormatMeasurement(1.5, "mm"))
	assert.Equal(t, "1.500000 units", FormatMeasurement(1.5, ""))
}

func TestAnalyzeBoundaryRoundHole(t *testing.T) {
	// an octagonal washer: each segment is a quad between the inner and
	// outer rim
	const segments = 8
	inner, outer := 1.0, 3.0
	rim := func(r float64, i int) geometry.Vector3 {
		a := 2 * math.Pi * float64(i%segments) / segments
		return v(r*math.Cos(a), r*math.Sin(a), 0)
	}

	m := halfedge.NewMesh(halfedge.CCW)
	for i := 0; i < segments; i++ {
		_, err := m.AddPolygon([]geometry.Vector3{rim(inner, i), rim(outer, i), rim(outer, i+1), rim(inner, i+1)})
		require.NoError(t, err)
	}

	loops, err := AnalyzeBoundary(m)
	require.NoError(t, err)
	require.Len(t, loops, 2)

	radii := []float64{}
	for _, loop := range loops {
		assert.True(t, loop.Closed)
		assert.Len(t, loop.Points, segments)
		require.NotNil(t, loop.Circle)
		assert.True(t, loop.Round())
		assert.InDelta(t, 0, loop.Circle.Center.Length(), 1e-9)
		radii = append(radii, loop.Circle.Radius)
	}
	assert.ElementsMatch(t, []float64{inner, outer}, roundAll(radii))
}

func TestAnalyzeBoundaryClosedMesh(t *testing.T) {
	loops, err := AnalyzeBoundary(cube(t, 1))
	require.NoError(t, err)
	assert.Empty(t, loops)
}

func roundAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, x := range values {
		out[i] = math.Round(x*1e9) / 1e9
	}
	return out
}
