// Package pack flattens a finished half-edge mesh into GPU-ready buffers:
// interleaved float32 vertex attributes and a triangle index list.
package pack

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/philipparndt/gohalfedge/pkg/halfedge"
)

// Stride is the number of float32 values per packed vertex: position then normal
const Stride = 6

// Buffers holds the packed representation of a mesh
type Buffers struct {
	Vertices []float32 // Stride floats per vertex, in vertex creation order
	Indices  []uint32  // three indices per triangle
}

// VertexCount returns the number of packed vertices
func (b *Buffers) VertexCount() int {
	return len(b.Vertices) / Stride
}

// TriangleCount returns the number of packed triangles
func (b *Buffers) TriangleCount() int {
	return len(b.Indices) / 3
}

// Position returns the position of packed vertex i
func (b *Buffers) Position(i int) mgl32.Vec3 {
	o := i * Stride
	return mgl32.Vec3{b.Vertices[o], b.Vertices[o+1], b.Vertices[o+2]}
}

// Normal returns the normal of packed vertex i
func (b *Buffers) Normal(i int) mgl32.Vec3 {
	o := i*Stride + 3
	return mgl32.Vec3{b.Vertices[o], b.Vertices[o+1], b.Vertices[o+2]}
}

func (b *Buffers) put(position, normal mgl32.Vec3) {
	b.Vertices = append(b.Vertices, position[0], position[1], position[2], normal[0], normal[1], normal[2])
}

// Pack builds vertex and index buffers from a mesh. Every vertex used by a
// face must have a vertex normal, otherwise Pack fails with
// halfedge.ErrNormalsMissing; vertices left without faces are packed with a
// zero normal. Normals are renormalised after narrowing to float32. Faces
// are fan-triangulated from their first vertex, keeping the mesh's winding.
func Pack(mesh *halfedge.Mesh) (*Buffers, error) {
	b := &Buffers{
		Vertices: make([]float32, 0, mesh.NumVertices()*Stride),
	}

	used := make(map[halfedge.VertexID]bool, mesh.NumVertices())
	for f := range mesh.Faces() {
		verts, err := mesh.FaceVertices(f.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to pack face %v: %w", f.ID(), err)
		}
		for _, v := range verts {
			used[v.ID()] = true
		}
		first := uint32(verts[0].Index())
		for i := 1; i < len(verts)-1; i++ {
			b.Indices = append(b.Indices, first, uint32(verts[i].Index()), uint32(verts[i+1].Index()))
		}
	}

	for v := range mesh.Vertices() {
		normal, ok := v.Normal()
		if !ok && used[v.ID()] {
			return nil, fmt.Errorf("failed to pack vertex %v: %w", v.ID(), halfedge.ErrNormalsMissing)
		}

		n := toVec3(normal)
		if n.Len() > 0 {
			n = n.Normalize()
		}
		b.put(toVec3(v.Location()), n)
	}

	return b, nil
}

func toVec3(v geometry.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
