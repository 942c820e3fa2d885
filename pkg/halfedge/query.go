package halfedge

import (
	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/pkg/errors"
)

// NumVertices returns the number of vertices
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumFaces returns the number of live faces
func (m *Mesh) NumFaces() int { return len(m.faces) }

// NumEdges returns the number of undirected edges (half-edge pairs)
func (m *Mesh) NumEdges() int { return len(m.edges) / 2 }

// NumHalfEdges returns the number of half-edges
func (m *Mesh) NumHalfEdges() int { return len(m.edges) }

// Bounds returns the box around every vertex location, including vertices
// whose faces have been removed
func (m *Mesh) Bounds() geometry.BoundingBox {
	return geometry.BoundsOf(func(yield func(geometry.Vector3) bool) {
		for v := range m.Vertices() {
			if !yield(v.location) {
				return
			}
		}
	})
}

// VertexAt returns the vertex registered at exactly loc
func (m *Mesh) VertexAt(loc geometry.Vector3) (*Vertex, error) {
	v, ok := m.vertices[VertexIDOf(loc)]
	if !ok || v.location != loc {
		return nil, errors.Wrapf(ErrNotFound, "vertex at %v", loc)
	}
	return v, nil
}

// HalfEdgeBetween returns the half-edge running from a to b
func (m *Mesh) HalfEdgeBetween(a, b geometry.Vector3) (*HalfEdge, error) {
	e, ok := m.edges[EdgeIDOf(a, b)]
	if !ok || e.origin != VertexIDOf(a) {
		return nil, errors.Wrapf(ErrNotFound, "half-edge %v -> %v", a, b)
	}
	return e, nil
}

// Vertex returns the vertex with the given id
func (m *Mesh) Vertex(id VertexID) (*Vertex, error) {
	v, ok := m.vertices[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "vertex %v", id)
	}
	return v, nil
}

// Edge returns the half-edge with the given id. Asking for NoEdge is a
// caller error reported as ErrUnsetEdge.
func (m *Mesh) Edge(id EdgeID) (*HalfEdge, error) {
	if id == NoEdge {
		return nil, errors.WithStack(ErrUnsetEdge)
	}
	e, ok := m.edges[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "edge %v", id)
	}
	return e, nil
}

// Face returns the face with the given id
func (m *Mesh) Face(id FaceID) (*Face, error) {
	f, ok := m.faces[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "face %v", id)
	}
	return f, nil
}

// Destination returns the vertex a half-edge points to
func (m *Mesh) Destination(id EdgeID) (*Vertex, error) {
	e, err := m.Edge(id)
	if err != nil {
		return nil, err
	}
	pair, err := m.Edge(e.pair)
	if err != nil {
		return nil, err
	}
	return m.Vertex(pair.origin)
}

// FetchVertices returns the vertices for ids in the same order
func (m *Mesh) FetchVertices(ids ...VertexID) ([]*Vertex, error) {
	verts := make([]*Vertex, len(ids))
	for i, id := range ids {
		v, err := m.Vertex(id)
		if err != nil {
			return nil, err
		}
		verts[i] = v
	}
	return verts, nil
}

// FetchEdges returns the half-edges for ids in the same order
func (m *Mesh) FetchEdges(ids ...EdgeID) ([]*HalfEdge, error) {
	edges := make([]*HalfEdge, len(ids))
	for i, id := range ids {
		e, err := m.Edge(id)
		if err != nil {
			return nil, err
		}
		edges[i] = e
	}
	return edges, nil
}

// BoundaryEdges returns the half-edges without a face, in creation order
func (m *Mesh) BoundaryEdges() []*HalfEdge {
	var edges []*HalfEdge
	for e := range m.Edges() {
		if e.face == NoFace {
			edges = append(edges, e)
		}
	}
	return edges
}

// IsClosed reports whether every half-edge belongs to a face
func (m *Mesh) IsClosed() bool {
	for e := range m.Edges() {
		if e.face == NoFace {
			return false
		}
	}
	return true
}
