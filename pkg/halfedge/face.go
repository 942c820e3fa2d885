package halfedge

import "github.com/philipparndt/gohalfedge/pkg/geometry"

// Face is a polygon bounded by a ring of half-edges
type Face struct {
	id        FaceID
	edge      EdgeID
	direction float64
	normal    geometry.Vector3
	hasNormal bool
}

// ID returns the face id
func (f *Face) ID() FaceID { return f.id }

// Edge returns the first half-edge of the face ring
func (f *Face) Edge() EdgeID { return f.edge }

// Direction returns +1 or -1; the computed normal is scaled by it
func (f *Face) Direction() float64 { return f.direction }

// Normal returns the face normal and whether it has been calculated
func (f *Face) Normal() (geometry.Vector3, bool) { return f.normal, f.hasNormal }

func (f *Face) clone() *Face {
	c := *f
	return &c
}
