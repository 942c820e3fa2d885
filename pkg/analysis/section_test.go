package analysis

import (
	"testing"

	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/philipparndt/gohalfedge/pkg/halfedge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionCube(t *testing.T) {
	for axis := 0; axis < 3; axis++ {
		contours, err := Section(cube(t, 2), axis, 0.5)
		require.NoError(t, err)
		require.Len(t, contours, 1, "axis %d", axis)

		c := contours[0]
		assert.True(t, c.Closed)
		assert.Len(t, c.Points, 4)
		assert.InDelta(t, 8.0, c.Length, 1e-10)
		assert.InDelta(t, 4.0, c.Area, 1e-10)
		for _, p := range c.Points {
			assert.InDelta(t, 0.5, [3]float64{p.X, p.Y, p.Z}[axis], 1e-10)
		}
	}
}

func TestSectionOpenSheet(t *testing.T) {
	m := halfedge.NewMesh(halfedge.CCW)
	_, err := m.AddPolygon([]geometry.Vector3{v(0, 0, 0), v(1, 0, 0), v(1, 1, 0)})
	require.NoError(t, err)
	_, err = m.AddPolygon([]geometry.Vector3{v(0, 0, 0), v(1, 1, 0), v(0, 1, 0)})
	require.NoError(t, err)

	contours, err := Section(m, 1, 0.25)
	require.NoError(t, err)
	require.Len(t, contours, 1)

	c := contours[0]
	assert.False(t, c.Closed)
	assert.Len(t, c.Points, 3)
	assert.InDelta(t, 1.0, c.Length, 1e-10)
	assert.Equal(t, 0.0, c.Area)

	// the chain runs from one rim to the other through the diagonal
	xs := []float64{c.Points[0].X, c.Points[2].X}
	assert.ElementsMatch(t, []float64{0, 1}, xs)
	assert.InDelta(t, 0.25, c.Points[1].X, 1e-10)
}

func TestSectionMisses(t *testing.T) {
	contours, err := Section(cube(t, 1), 2, 5)
	require.NoError(t, err)
	assert.Empty(t, contours)
}

func TestSectionInvalidAxis(t *testing.T) {
	_, err := Section(cube(t, 1), 3, 0)
	assert.ErrorContains(t, err, "invalid axis")
}
