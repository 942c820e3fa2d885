package halfedge

import (
	"testing"

	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/stretchr/testify/require"
)

func v(x, y, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, y, z)
}

var (
	quadA = []geometry.Vector3{v(2, 3, 0), v(6, 6, 0), v(9, 3, 0), v(5, 1, 0)}
	// shares the edge (9,3,0)-(6,6,0) with quadA, same winding
	quadB = []geometry.Vector3{v(9, 3, 0), v(6, 6, 0), v(10, 9, 0), v(13, 6, 0)}
)

// cubeFaces returns the six faces of the unit cube, counter-clockwise seen
// from outside
func cubeFaces() [][]geometry.Vector3 {
	return [][]geometry.Vector3{
		{v(0, 0, 0), v(0, 1, 0), v(1, 1, 0), v(1, 0, 0)}, // z = 0
		{v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)}, // z = 1
		{v(0, 0, 0), v(1, 0, 0), v(1, 0, 1), v(0, 0, 1)}, // y = 0
		{v(0, 1, 0), v(0, 1, 1), v(1, 1, 1), v(1, 1, 0)}, // y = 1
		{v(0, 0, 0), v(0, 0, 1), v(0, 1, 1), v(0, 1, 0)}, // x = 0
		{v(1, 0, 0), v(1, 1, 0), v(1, 1, 1), v(1, 0, 1)}, // x = 1
	}
}

func buildMesh(t *testing.T, winding Winding, polygons ...[]geometry.Vector3) *Mesh {
	t.Helper()
	m := NewMesh(winding)
	for _, p := range polygons {
		_, err := m.AddPolygon(p)
		require.NoError(t, err)
	}
	return m
}

func buildCube(t *testing.T) *Mesh {
	t.Helper()
	return buildMesh(t, CCW, cubeFaces()...)
}

func assertVectorClose(t *testing.T, expected, actual geometry.Vector3) {
	t.Helper()
	require.InDeltaf(t, 0, expected.Sub(actual).Length(), 1e-10, "expected %v, got %v", expected, actual)
}
