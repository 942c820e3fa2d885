package halfedge

import (
	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"go.uber.org/zap"
)

// Triangulate returns a new mesh in which every face has been split into a
// fan of triangles around its first vertex. The receiver is not modified,
// so a polygon mesh can be kept while a triangulated level of detail is
// handed to a renderer. Flipped faces stay flipped.
func (m *Mesh) Triangulate() (*Mesh, error) {
	out := NewMesh(m.winding, WithLogger(m.log))

	for f := range m.Faces() {
		points, err := m.FacePoints(f.id)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(points)-1; i++ {
			id, err := out.AddPolygon([]geometry.Vector3{points[0], points[i], points[i+1]})
			if err != nil {
				return nil, err
			}
			if f.direction != m.winding.sign() {
				out.faces[id].direction = f.direction
			}
		}
	}

	m.log.Debug("mesh triangulated",
		zap.Int("faces", m.NumFaces()),
		zap.Int("triangles", out.NumFaces()),
	)
	return out, nil
}
