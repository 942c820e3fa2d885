package halfedge

import (
	"slices"

	"github.com/pkg/errors"
)

// Validate checks the structural invariants of the mesh and returns the
// first violation found, wrapped in ErrCorrupt
func (m *Mesh) Validate() error {
	for v := range m.Vertices() {
		for _, id := range v.outbound {
			e, ok := m.edges[id]
			if !ok {
				return errors.Wrapf(ErrCorrupt, "vertex %v lists missing edge %v", v.id, id)
			}
			if e.origin != v.id {
				return errors.Wrapf(ErrCorrupt, "vertex %v lists edge %v with origin %v", v.id, id, e.origin)
			}
		}
		if v.edge != NoEdge && !slices.Contains(v.outbound, v.edge) {
			return errors.Wrapf(ErrCorrupt, "vertex %v edge %v is not outbound", v.id, v.edge)
		}
	}

	for e := range m.Edges() {
		pair, ok := m.edges[e.pair]
		if !ok {
			return errors.Wrapf(ErrCorrupt, "edge %v has missing pair %v", e.id, e.pair)
		}
		if pair.pair != e.id {
			return errors.Wrapf(ErrCorrupt, "edge %v: pair of pair is %v", e.id, pair.pair)
		}
		if pair.origin == e.origin {
			return errors.Wrapf(ErrCorrupt, "edge %v and its pair share origin %v", e.id, e.origin)
		}
		if e.face != NoFace {
			if _, ok := m.faces[e.face]; !ok {
				return errors.Wrapf(ErrCorrupt, "edge %v references missing face %v", e.id, e.face)
			}
		}
	}

	for f := range m.Faces() {
		edges, err := m.FaceEdges(f.id)
		if err != nil {
			return errors.Wrapf(ErrCorrupt, "face %v: %v", f.id, err)
		}
		for i, e := range edges {
			if e.face != f.id {
				return errors.Wrapf(ErrCorrupt, "face %v ring contains edge %v of face %v", f.id, e.id, e.face)
			}
			next := edges[(i+1)%len(edges)]
			if next.prev != e.id {
				return errors.Wrapf(ErrCorrupt, "face %v: edge %v prev is %v, expected %v", f.id, next.id, next.prev, e.id)
			}
			if dest := m.edges[e.pair].origin; dest != next.origin {
				return errors.Wrapf(ErrCorrupt, "face %v: edge %v ends at %v but next starts at %v", f.id, e.id, dest, next.origin)
			}
		}
	}

	return nil
}
