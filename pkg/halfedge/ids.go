package halfedge

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
	"math"

	"github.com/philipparndt/gohalfedge/pkg/geometry"
)

// VertexID identifies a vertex by a hash of its location
type VertexID uint64

// EdgeID identifies a half-edge by a hash of its ordered endpoint locations
type EdgeID uint64

// FaceID identifies a face; ids are handed out by the owning mesh in
// creation order starting at 1
type FaceID uint64

const (
	// NoEdge is the unset edge id
	NoEdge EdgeID = 0
	// NoFace marks a half-edge on the external boundary
	NoFace FaceID = 0
)

func (id VertexID) String() string { return fmt.Sprintf("v%016x", uint64(id)) }
func (id EdgeID) String() string   { return fmt.Sprintf("e%016x", uint64(id)) }
func (id FaceID) String() string   { return fmt.Sprintf("f%d", uint64(id)) }

// Winding is the rotational order of every polygon added to a mesh
type Winding int

const (
	// CCW polygons have counter-clockwise vertex order seen from outside
	CCW Winding = iota
	// CW polygons have clockwise vertex order seen from outside
	CW
)

func (w Winding) String() string {
	if w == CW {
		return "cw"
	}
	return "ccw"
}

// ParseWinding accepts "ccw" or "cw" in either case
func ParseWinding(s string) (Winding, error) {
	switch s {
	case "ccw", "CCW":
		return CCW, nil
	case "cw", "CW":
		return CW, nil
	default:
		return CCW, fmt.Errorf("unknown winding %q (expected ccw or cw)", s)
	}
}

// sign is the normal direction new faces receive so that both conventions
// produce outward normals
func (w Winding) sign() float64 {
	if w == CW {
		return -1
	}
	return 1
}

// VertexIDOf returns the id a vertex at loc has in any mesh
func VertexIDOf(loc geometry.Vector3) VertexID {
	h := fnv.New64a()
	writeVector(h, loc)
	return VertexID(h.Sum64())
}

// EdgeIDOf returns the id of the half-edge running from a to b in any mesh
func EdgeIDOf(a, b geometry.Vector3) EdgeID {
	h := fnv.New64a()
	writeVector(h, a)
	writeVector(h, b)
	id := EdgeID(h.Sum64())
	if id == NoEdge {
		id++
	}
	return id
}

func writeVector(w io.Writer, v geometry.Vector3) {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], canonicalBits(v.X))
	binary.LittleEndian.PutUint64(buf[8:], canonicalBits(v.Y))
	binary.LittleEndian.PutUint64(buf[16:], canonicalBits(v.Z))
	w.Write(buf[:])
}

// canonicalBits maps -0 onto +0 so that equal coordinates hash equally
func canonicalBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}
