package halfedge

import (
	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FaceNormal computes the unit normal of one face without storing it.
//
// With assumePlanar the normal is the cross product of the two edges leaving
// the first vertex, which is exact for convex planar polygons. Otherwise
// Newell's method is used. The result is scaled by the face's direction.
func (m *Mesh) FaceNormal(face FaceID, assumePlanar bool) (geometry.Vector3, error) {
	f, ok := m.faces[face]
	if !ok {
		return geometry.Vector3{}, errors.Wrapf(ErrNotFound, "face %v", face)
	}
	points, err := m.FacePoints(face)
	if err != nil {
		return geometry.Vector3{}, err
	}

	var n geometry.Vector3
	if assumePlanar {
		n = geometry.PlanarNormal(points)
	} else {
		n = geometry.NewellNormal(points)
	}
	return n.Mul(f.direction), nil
}

// CalculateFaceNormals computes and stores the normal of every face. Nothing
// is stored unless every face succeeds.
func (m *Mesh) CalculateFaceNormals(assumePlanar bool) error {
	normals := make([]geometry.Vector3, len(m.faceOrder))
	for i, id := range m.faceOrder {
		n, err := m.FaceNormal(id, assumePlanar)
		if err != nil {
			return err
		}
		normals[i] = n
	}

	for i, id := range m.faceOrder {
		f := m.faces[id]
		f.normal = normals[i]
		f.hasNormal = true
	}

	m.log.Debug("face normals calculated",
		zap.Int("faces", len(m.faceOrder)),
		zap.Bool("planar", assumePlanar),
	)
	return nil
}

// CalculateVertexNormals stores, for every vertex, the normalised average of
// its adjacent face normals. Face normals must have been calculated first;
// a face without one fails the whole pass with ErrNormalsMissing.
// Vertices with no adjacent face are left without a normal.
func (m *Mesh) CalculateVertexNormals() error {
	type result struct {
		normal geometry.Vector3
		ok     bool
	}
	results := make([]result, len(m.vertexOrder))

	for i, id := range m.vertexOrder {
		var sum geometry.Vector3
		var missing *Face
		count, err := m.TraverseFaces(id, func(f *Face) {
			if !f.hasNormal {
				if missing == nil {
					missing = f
				}
				return
			}
			sum = sum.Add(f.normal)
		})
		if err != nil {
			return err
		}
		if missing != nil {
			return errors.Wrapf(ErrNormalsMissing, "face %v (adjacent to vertex %v)", missing.id, id)
		}
		if count == 0 {
			continue
		}
		results[i] = result{normal: sum.Mul(1.0 / float64(count)).Normalize(), ok: true}
	}

	for i, id := range m.vertexOrder {
		v := m.vertices[id]
		v.normal, v.hasNormal = results[i].normal, results[i].ok
	}

	m.log.Debug("vertex normals calculated", zap.Int("vertices", len(m.vertexOrder)))
	return nil
}

// FlipFace reverses the normal direction of a face. A stored normal is
// negated as well.
func (m *Mesh) FlipFace(face FaceID) error {
	f, ok := m.faces[face]
	if !ok {
		return errors.Wrapf(ErrNotFound, "face %v", face)
	}
	f.direction = -f.direction
	if f.hasNormal {
		f.normal = f.normal.Mul(-1)
	}
	return nil
}
