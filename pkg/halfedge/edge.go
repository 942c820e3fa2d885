package halfedge

// HalfEdge is one directed half of an undirected mesh edge
type HalfEdge struct {
	id     EdgeID
	index  int
	origin VertexID
	pair   EdgeID
	face   FaceID
	next   EdgeID
	prev   EdgeID
}

// ID returns the endpoint-derived id
func (e *HalfEdge) ID() EdgeID { return e.id }

// Index returns the creation order of the half-edge within its mesh (0-based)
func (e *HalfEdge) Index() int { return e.index }

// Origin returns the vertex the half-edge leaves from
func (e *HalfEdge) Origin() VertexID { return e.origin }

// Pair returns the oppositely directed twin
func (e *HalfEdge) Pair() EdgeID { return e.pair }

// Face returns the face on the half-edge's left, or NoFace on the boundary
func (e *HalfEdge) Face() FaceID { return e.face }

// Next returns the following half-edge of the ring
func (e *HalfEdge) Next() EdgeID { return e.next }

// Prev returns the preceding half-edge of the ring
func (e *HalfEdge) Prev() EdgeID { return e.prev }

// IsBoundary reports whether no face is assigned
func (e *HalfEdge) IsBoundary() bool { return e.face == NoFace }

func (e *HalfEdge) clone() *HalfEdge {
	c := *e
	return &c
}
