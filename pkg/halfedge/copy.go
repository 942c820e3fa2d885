package halfedge

import (
	"slices"

	"go.uber.org/zap"
)

// DeepCopy returns an independent mesh with the same ids, counters and
// winding. No entity is shared with the receiver.
func (m *Mesh) DeepCopy() *Mesh {
	c := &Mesh{
		winding:     m.winding,
		vertices:    make(map[VertexID]*Vertex, len(m.vertices)),
		edges:       make(map[EdgeID]*HalfEdge, len(m.edges)),
		faces:       make(map[FaceID]*Face, len(m.faces)),
		vertexOrder: slices.Clone(m.vertexOrder),
		edgeOrder:   slices.Clone(m.edgeOrder),
		faceOrder:   slices.Clone(m.faceOrder),
		lastFace:    m.lastFace,
		log:         m.log,
	}
	for id, v := range m.vertices {
		c.vertices[id] = v.clone()
	}
	for id, e := range m.edges {
		c.edges[id] = e.clone()
	}
	for id, f := range m.faces {
		c.faces[id] = f.clone()
	}

	m.log.Debug("mesh copied",
		zap.Int("vertices", len(c.vertices)),
		zap.Int("halfEdges", len(c.edges)),
		zap.Int("faces", len(c.faces)),
	)
	return c
}

// RemoveFace detaches a face from its half-edges, which become boundary
// edges, and deletes the face. Vertices and half-edges are kept.
func (m *Mesh) RemoveFace(face FaceID) error {
	edges, err := m.FaceEdges(face)
	if err != nil {
		return err
	}
	for _, e := range edges {
		e.face = NoFace
	}
	delete(m.faces, face)
	m.faceOrder = slices.DeleteFunc(m.faceOrder, func(id FaceID) bool {
		return id == face
	})

	m.log.Debug("face removed", zap.Stringer("face", face), zap.Int("edges", len(edges)))
	return nil
}
