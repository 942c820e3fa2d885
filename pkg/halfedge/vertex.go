package halfedge

import (
	"slices"

	"github.com/philipparndt/gohalfedge/pkg/geometry"
)

// Vertex is a registered mesh location. Values handed out by a Mesh are
// read-only views; only the mesh mutates them.
type Vertex struct {
	id        VertexID
	location  geometry.Vector3
	index     int
	edge      EdgeID
	outbound  []EdgeID
	normal    geometry.Vector3
	hasNormal bool
}

// ID returns the location-derived id
func (v *Vertex) ID() VertexID { return v.id }

// Location returns the exact coordinate the vertex was registered at
func (v *Vertex) Location() geometry.Vector3 { return v.location }

// Index returns the creation order of the vertex within its mesh (0-based)
func (v *Vertex) Index() int { return v.index }

// Edge returns one outbound half-edge, or NoEdge
func (v *Vertex) Edge() EdgeID { return v.edge }

// Outbound returns every half-edge whose origin is this vertex
func (v *Vertex) Outbound() []EdgeID { return slices.Clone(v.outbound) }

// Degree returns the number of outbound half-edges
func (v *Vertex) Degree() int { return len(v.outbound) }

// Normal returns the averaged vertex normal and whether it has been calculated
func (v *Vertex) Normal() (geometry.Vector3, bool) { return v.normal, v.hasNormal }

func (v *Vertex) addOutbound(id EdgeID) {
	v.outbound = append(v.outbound, id)
	if v.edge == NoEdge {
		v.edge = id
	}
}

func (v *Vertex) clone() *Vertex {
	c := *v
	c.outbound = slices.Clone(v.outbound)
	return &c
}
