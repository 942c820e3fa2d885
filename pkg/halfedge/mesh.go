// Package halfedge implements a doubly-connected edge list for polygonal
// surfaces.
//
// A Mesh is an arena: vertices, half-edges and faces are stored in maps keyed
// by ids, and every relation between them is an id rather than a pointer.
// Vertex and half-edge ids are derived from coordinates, so they are stable
// across meshes built from the same geometry and survive DeepCopy unchanged.
//
// A mesh is built by sequential AddPolygon calls and is then read by any
// number of consumers. It has no internal locking; concurrent mutation is
// not supported.
package halfedge

import (
	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Mesh owns every vertex, half-edge and face it creates
type Mesh struct {
	winding Winding

	vertices map[VertexID]*Vertex
	edges    map[EdgeID]*HalfEdge
	faces    map[FaceID]*Face

	// creation order; vertices and edges are never removed
	vertexOrder []VertexID
	edgeOrder   []EdgeID
	faceOrder   []FaceID

	lastFace FaceID

	log *zap.Logger
}

// Option configures a Mesh
type Option func(*Mesh)

// WithLogger sets the logger used for debug output
func WithLogger(log *zap.Logger) Option {
	return func(m *Mesh) {
		if log != nil {
			m.log = log
		}
	}
}

// NewMesh creates an empty mesh whose polygons all use the given winding
func NewMesh(winding Winding, opts ...Option) *Mesh {
	m := &Mesh{
		winding:  winding,
		vertices: make(map[VertexID]*Vertex),
		edges:    make(map[EdgeID]*HalfEdge),
		faces:    make(map[FaceID]*Face),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Winding returns the winding convention fixed at construction
func (m *Mesh) Winding() Winding {
	return m.winding
}

// AddPolygon adds a face bounded by points, given in the mesh's winding
// order. Points equal to already registered vertices are shared, and so are
// edges already present as the boundary of a neighbouring face.
//
// The polygon is rejected without modifying the mesh when it has fewer than
// three points, repeats a point, has a non-finite coordinate, or would claim
// a directed edge that already belongs to another face.
func (m *Mesh) AddPolygon(points []geometry.Vector3) (FaceID, error) {
	if err := m.checkPolygon(points); err != nil {
		return NoFace, err
	}

	n := len(points)
	m.lastFace++
	face := &Face{
		id:        m.lastFace,
		direction: m.winding.sign(),
	}

	verts := make([]*Vertex, n)
	var shared []*Vertex
	for i, p := range points {
		v, reused := m.registerVertex(p)
		verts[i] = v
		if reused {
			shared = append(shared, v)
		}
	}

	ring := make([]*HalfEdge, n)
	created := make([]bool, n)
	for i := range verts {
		ring[i], created[i] = m.claimEdge(verts[i], verts[(i+1)%n], face.id)
	}

	m.closeFaceRing(ring)
	m.closeExternalRing(ring, created)
	for _, v := range shared {
		m.spliceBoundary(v)
	}

	face.edge = ring[0].id
	m.faces[face.id] = face
	m.faceOrder = append(m.faceOrder, face.id)

	m.log.Debug("polygon added",
		zap.Stringer("face", face.id),
		zap.Int("vertices", n),
		zap.Int("shared", len(shared)),
	)

	return face.id, nil
}

// checkPolygon validates points against the current mesh without mutating it
func (m *Mesh) checkPolygon(points []geometry.Vector3) error {
	if len(points) < 3 {
		return errors.Wrapf(ErrMalformedPolygon, "need at least 3 vertices, got %d", len(points))
	}

	seen := make(map[geometry.Vector3]int, len(points))
	for i, p := range points {
		if !p.IsFinite() {
			return errors.Wrapf(ErrMalformedPolygon, "vertex %d has non-finite coordinate %v", i, p)
		}
		if j, dup := seen[p]; dup {
			return errors.Wrapf(ErrMalformedPolygon, "vertex %d duplicates vertex %d at %v", i, j, p)
		}
		seen[p] = i

		if v, ok := m.vertices[VertexIDOf(p)]; ok && v.location != p {
			return errors.Wrapf(ErrIDCollision, "%v and %v share id %v", p, v.location, v.id)
		}
	}

	n := len(points)
	for i := range points {
		a, b := points[i], points[(i+1)%n]
		e, ok := m.edges[EdgeIDOf(a, b)]
		if !ok {
			continue
		}
		if e.origin != VertexIDOf(a) || m.edges[e.pair].origin != VertexIDOf(b) {
			return errors.Wrapf(ErrIDCollision, "edge %v -> %v", a, b)
		}
		if e.face != NoFace {
			return errors.Wrapf(ErrNonManifold, "edge %v -> %v already belongs to face %v", a, b, e.face)
		}
	}

	return nil
}

// registerVertex returns the vertex at loc, creating it if needed. The bool
// reports whether the vertex already existed.
func (m *Mesh) registerVertex(loc geometry.Vector3) (*Vertex, bool) {
	id := VertexIDOf(loc)
	if v, ok := m.vertices[id]; ok {
		return v, true
	}

	v := &Vertex{
		id:       id,
		location: loc,
		index:    len(m.vertexOrder),
		edge:     NoEdge,
	}
	m.vertices[id] = v
	m.vertexOrder = append(m.vertexOrder, id)
	return v, false
}

// claimEdge assigns the half-edge from -> to to face. When no such edge
// exists, it is created together with its external twin; the bool reports
// whether that happened.
func (m *Mesh) claimEdge(from, to *Vertex, face FaceID) (*HalfEdge, bool) {
	id := EdgeIDOf(from.location, to.location)
	if e, ok := m.edges[id]; ok {
		e.face = face
		return e, false
	}

	e := m.newHalfEdge(id, from.id, face)
	twin := m.newHalfEdge(EdgeIDOf(to.location, from.location), to.id, NoFace)
	e.pair = twin.id
	twin.pair = e.id

	from.addOutbound(e.id)
	to.addOutbound(twin.id)

	return e, true
}

func (m *Mesh) newHalfEdge(id EdgeID, origin VertexID, face FaceID) *HalfEdge {
	e := &HalfEdge{
		id:     id,
		index:  len(m.edgeOrder),
		origin: origin,
		face:   face,
		next:   NoEdge,
		prev:   NoEdge,
	}
	m.edges[id] = e
	m.edgeOrder = append(m.edgeOrder, id)
	return e
}

// closeFaceRing links the face's half-edges into a closed loop
func (m *Mesh) closeFaceRing(ring []*HalfEdge) {
	n := len(ring)
	for i, e := range ring {
		next := ring[(i+1)%n]
		e.next = next.id
		next.prev = e.id
	}
}

// closeExternalRing links the twins created for this face into the reversed
// loop around it. Twins are only linked to each other where both neighbours
// are new; at shared vertices the chain is repaired by spliceBoundary.
func (m *Mesh) closeExternalRing(ring []*HalfEdge, created []bool) {
	n := len(ring)
	for i := range ring {
		j := (i + n - 1) % n
		if !created[i] || !created[j] {
			continue
		}
		// ring[i] leaves vertex i, ring[j] arrives at it; their twins arrive
		// at and leave vertex i respectively.
		in := m.edges[ring[i].pair]
		out := m.edges[ring[j].pair]
		in.next = out.id
		out.prev = in.id
	}
}

// spliceBoundary reconnects the external chain at v when exactly one
// external half-edge arrives at and one leaves v
func (m *Mesh) spliceBoundary(v *Vertex) {
	var in, out []*HalfEdge
	for _, id := range v.outbound {
		o := m.edges[id]
		if o.face == NoFace {
			out = append(out, o)
		}
		if p := m.edges[o.pair]; p.face == NoFace {
			in = append(in, p)
		}
	}

	if len(in) != 1 || len(out) != 1 {
		return
	}
	in[0].next = out[0].id
	out[0].prev = in[0].id
}
