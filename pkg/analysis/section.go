package analysis

import (
	"fmt"

	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/philipparndt/gohalfedge/pkg/halfedge"
)

// Contour is one connected piece of a planar cross-section
type Contour struct {
	Points []geometry.Vector3
	Closed bool
	Length float64
	Area   float64 // enclosed area; zero for open contours
}

// cut is the segment a face contributes to a section. Its ends lie on the
// undirected edges ka and kb, so neighbouring faces meet at equal keys.
type cut struct {
	a, b   geometry.Vector3
	ka, kb halfedge.EdgeID
}

// Section intersects the mesh with the plane where coordinate axis (0=X,
// 1=Y, 2=Z) equals position. Segments are chained through shared edges
// rather than by comparing coordinates, so contours are exact even where
// they pass close to each other.
func Section(mesh *halfedge.Mesh, axis int, position float64) ([]Contour, error) {
	if axis < 0 || axis > 2 {
		return nil, fmt.Errorf("invalid axis: %d (must be 0, 1, or 2)", axis)
	}
	side := func(p geometry.Vector3) float64 {
		return p.Component(axis) - position
	}

	var cuts []cut
	for f := range mesh.Faces() {
		faceCuts, err := sectionFace(mesh, f.ID(), side)
		if err != nil {
			return nil, err
		}
		cuts = append(cuts, faceCuts...)
	}

	return chainCuts(cuts), nil
}

// sectionFace returns the segments where the plane crosses one face,
// pairing crossings in ring order
func sectionFace(mesh *halfedge.Mesh, face halfedge.FaceID, side func(geometry.Vector3) float64) ([]cut, error) {
	ring, err := mesh.FaceEdges(face)
	if err != nil {
		return nil, err
	}

	var points []geometry.Vector3
	var keys []halfedge.EdgeID
	for _, e := range ring {
		pair, err := mesh.Edge(e.Pair())
		if err != nil {
			return nil, err
		}
		// measure along the half-edge created first, so both faces sharing
		// the edge compute the same point
		key := e
		if pair.Index() < e.Index() {
			key = pair
		}

		from, err := mesh.Vertex(key.Origin())
		if err != nil {
			return nil, err
		}
		to, err := mesh.Destination(key.ID())
		if err != nil {
			return nil, err
		}

		s0, s1 := side(from.Location()), side(to.Location())
		if (s0 >= 0) == (s1 >= 0) {
			continue
		}
		t := s0 / (s0 - s1)
		points = append(points, from.Location().Lerp(to.Location(), t))
		keys = append(keys, key.ID())
	}

	cuts := make([]cut, 0, len(points)/2)
	for i := 0; i+1 < len(points); i += 2 {
		cuts = append(cuts, cut{a: points[i], b: points[i+1], ka: keys[i], kb: keys[i+1]})
	}
	return cuts, nil
}

// chainCuts joins segments that meet on the same edge. Open chains are
// started from their loose ends so they come out whole.
func chainCuts(cuts []cut) []Contour {
	byKey := make(map[halfedge.EdgeID][]int)
	for i, c := range cuts {
		byKey[c.ka] = append(byKey[c.ka], i)
		byKey[c.kb] = append(byKey[c.kb], i)
	}

	used := make([]bool, len(cuts))
	var contours []Contour

	follow := func(start int, reverse bool) {
		c := cuts[start]
		if reverse {
			c = cut{a: c.b, b: c.a, ka: c.kb, kb: c.ka}
		}
		used[start] = true
		points := []geometry.Vector3{c.a, c.b}
		first, key := c.ka, c.kb
		closed := false

		for {
			if key == first {
				closed = true
				points = points[:len(points)-1]
				break
			}
			next := -1
			for _, j := range byKey[key] {
				if !used[j] {
					next = j
					break
				}
			}
			if next < 0 {
				break
			}
			used[next] = true
			if cuts[next].ka == key {
				points = append(points, cuts[next].b)
				key = cuts[next].kb
			} else {
				points = append(points, cuts[next].a)
				key = cuts[next].ka
			}
		}

		contours = append(contours, newContour(points, closed))
	}

	for i, c := range cuts {
		if used[i] {
			continue
		}
		switch {
		case len(byKey[c.ka]) == 1:
			follow(i, false)
		case len(byKey[c.kb]) == 1:
			follow(i, true)
		}
	}
	for i := range cuts {
		if !used[i] {
			follow(i, false)
		}
	}

	return contours
}

func newContour(points []geometry.Vector3, closed bool) Contour {
	c := Contour{Points: points, Closed: closed}
	for i := 0; i+1 < len(points); i++ {
		c.Length += points[i].Distance(points[i+1])
	}
	if closed {
		c.Length += points[len(points)-1].Distance(points[0])
		c.Area = geometry.PolygonArea(points)
	}
	return c
}
