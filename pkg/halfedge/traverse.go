package halfedge

import (
	"iter"

	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/pkg/errors"
)

// MaxTraversal bounds every ring walk. A walk that has not returned to its
// start after this many steps is treated as structural corruption.
const MaxTraversal = 1000

// TraverseEdges walks the ring of face from its boundary edge, calling every
// action for each half-edge, and returns the number of half-edges visited.
//
// If the ring does not close within MaxTraversal steps the walk stops with
// ErrTraversalRunaway; the actions will have run MaxTraversal times and the
// returned count is MaxTraversal+1.
func (m *Mesh) TraverseEdges(face FaceID, actions ...func(*HalfEdge)) (int, error) {
	f, ok := m.faces[face]
	if !ok {
		return 0, errors.Wrapf(ErrNotFound, "face %v", face)
	}

	start := f.edge
	id := start
	count := 0
	for {
		count++
		if count > MaxTraversal {
			return count, errors.Wrapf(ErrTraversalRunaway, "face %v: ring longer than %d edges", face, MaxTraversal)
		}

		e, ok := m.edges[id]
		if !ok {
			return count, errors.Wrapf(ErrNotFound, "face %v: edge %v", face, id)
		}
		for _, action := range actions {
			action(e)
		}

		id = e.next
		if id == start {
			return count, nil
		}
	}
}

// FaceEdges returns the half-edges of a face in ring order
func (m *Mesh) FaceEdges(face FaceID) ([]*HalfEdge, error) {
	var edges []*HalfEdge
	if _, err := m.TraverseEdges(face, func(e *HalfEdge) {
		edges = append(edges, e)
	}); err != nil {
		return nil, err
	}
	return edges, nil
}

// FaceVertices returns the distinct origin vertices of a face in ring order
func (m *Mesh) FaceVertices(face FaceID) ([]*Vertex, error) {
	var verts []*Vertex
	seen := make(map[VertexID]bool)
	var missing VertexID
	var hasMissing bool

	_, err := m.TraverseEdges(face, func(e *HalfEdge) {
		if seen[e.origin] {
			return
		}
		seen[e.origin] = true
		v, ok := m.vertices[e.origin]
		if !ok {
			missing, hasMissing = e.origin, true
			return
		}
		verts = append(verts, v)
	})
	if err != nil {
		return nil, err
	}
	if hasMissing {
		return nil, errors.Wrapf(ErrNotFound, "face %v: vertex %v", face, missing)
	}
	return verts, nil
}

// FacePoints returns the locations of a face's vertices in ring order
func (m *Mesh) FacePoints(face FaceID) ([]geometry.Vector3, error) {
	verts, err := m.FaceVertices(face)
	if err != nil {
		return nil, err
	}
	points := make([]geometry.Vector3, len(verts))
	for i, v := range verts {
		points[i] = v.location
	}
	return points, nil
}

// CountVertices returns the number of distinct vertices on a face
func (m *Mesh) CountVertices(face FaceID) (int, error) {
	verts, err := m.FaceVertices(face)
	if err != nil {
		return 0, err
	}
	return len(verts), nil
}

// TraverseFaces walks the star of vertex, alternating pair and next from
// its representative edge, and calls every action once per adjacent face.
// It returns the number of faces visited.
//
// The walk ends when it returns to its start, or when the external chain
// at the vertex is open. A vertex without edges yields ErrNoEdge.
func (m *Mesh) TraverseFaces(vertex VertexID, actions ...func(*Face)) (int, error) {
	v, ok := m.vertices[vertex]
	if !ok {
		return 0, errors.Wrapf(ErrNotFound, "vertex %v", vertex)
	}
	if v.edge == NoEdge {
		return 0, errors.Wrapf(ErrNoEdge, "vertex %v at %v", vertex, v.location)
	}

	start := v.edge
	id := start
	count := 0
	for steps := 1; ; steps++ {
		if steps > MaxTraversal {
			return count, errors.Wrapf(ErrTraversalRunaway, "vertex %v at %v: star larger than %d edges", vertex, v.location, MaxTraversal)
		}

		e, ok := m.edges[id]
		if !ok {
			return count, errors.Wrapf(ErrNotFound, "vertex %v: edge %v", vertex, id)
		}
		if e.face != NoFace {
			f, ok := m.faces[e.face]
			if !ok {
				return count, errors.Wrapf(ErrNotFound, "vertex %v: face %v", vertex, e.face)
			}
			count++
			for _, action := range actions {
				action(f)
			}
		}

		pair, ok := m.edges[e.pair]
		if !ok {
			return count, errors.Wrapf(ErrNotFound, "vertex %v: edge %v", vertex, e.pair)
		}
		id = pair.next
		if id == NoEdge || id == start {
			return count, nil
		}
	}
}

// VertexFaces returns the faces around a vertex in star order
func (m *Mesh) VertexFaces(vertex VertexID) ([]*Face, error) {
	var faces []*Face
	if _, err := m.TraverseFaces(vertex, func(f *Face) {
		faces = append(faces, f)
	}); err != nil {
		return nil, err
	}
	return faces, nil
}

// Vertices yields every vertex in creation order
func (m *Mesh) Vertices() iter.Seq[*Vertex] {
	return func(yield func(*Vertex) bool) {
		for _, id := range m.vertexOrder {
			if !yield(m.vertices[id]) {
				return
			}
		}
	}
}

// Edges yields every half-edge in creation order
func (m *Mesh) Edges() iter.Seq[*HalfEdge] {
	return func(yield func(*HalfEdge) bool) {
		for _, id := range m.edgeOrder {
			if !yield(m.edges[id]) {
				return
			}
		}
	}
}

// Faces yields every live face in creation order
func (m *Mesh) Faces() iter.Seq[*Face] {
	return func(yield func(*Face) bool) {
		for _, id := range m.faceOrder {
			if !yield(m.faces[id]) {
				return
			}
		}
	}
}

// BoundaryLoop is a chain of external half-edges linked by next
type BoundaryLoop struct {
	Edges  []*HalfEdge
	Closed bool // the last edge links back to the first
}

// BoundaryLoops groups the external half-edges into the rims of the
// surface's holes and outer borders. A rim normally closes into a loop; at
// a vertex where more than two boundary edges meet the chain is not
// spliced, and the pieces come back open.
func (m *Mesh) BoundaryLoops() ([]BoundaryLoop, error) {
	visited := make(map[EdgeID]bool)
	var loops []BoundaryLoop

	for _, e := range m.BoundaryEdges() {
		if visited[e.id] {
			continue
		}
		loop, err := m.walkBoundary(m.chainStart(e), visited)
		if err != nil {
			return nil, err
		}
		loops = append(loops, loop)
	}

	return loops, nil
}

// boundaryNext follows next from an external edge while the link is intact
// in both directions
func (m *Mesh) boundaryNext(e *HalfEdge) (*HalfEdge, bool) {
	n, ok := m.edges[e.next]
	if !ok || n.face != NoFace || n.prev != e.id {
		return nil, false
	}
	return n, true
}

func (m *Mesh) boundaryPrev(e *HalfEdge) (*HalfEdge, bool) {
	p, ok := m.edges[e.prev]
	if !ok || p.face != NoFace || p.next != e.id {
		return nil, false
	}
	return p, true
}

// chainStart walks back from e to the first edge of an open chain. For a
// closed loop it returns e.
func (m *Mesh) chainStart(e *HalfEdge) *HalfEdge {
	cur := e
	for range m.edgeOrder {
		p, ok := m.boundaryPrev(cur)
		if !ok {
			return cur
		}
		if p == e {
			return e
		}
		cur = p
	}
	return cur
}

func (m *Mesh) walkBoundary(start *HalfEdge, visited map[EdgeID]bool) (BoundaryLoop, error) {
	var loop BoundaryLoop
	cur := start
	for {
		if visited[cur.id] {
			return loop, errors.Wrapf(ErrTraversalRunaway, "boundary chain from %v revisits edge %v", start.id, cur.id)
		}
		visited[cur.id] = true
		loop.Edges = append(loop.Edges, cur)

		next, ok := m.boundaryNext(cur)
		if !ok {
			return loop, nil
		}
		if next == start {
			loop.Closed = true
			return loop, nil
		}
		cur = next
	}
}
