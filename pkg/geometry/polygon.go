package geometry

import "math"

// PlanarNormal returns the unit normal of a convex planar polygon using the
// cross product of the two edges leaving the first vertex:
//
//	n = (p1 - p0) × (p2 - p0)
//
// The result follows the right-hand rule for the given vertex order.
// Fewer than three points yield the zero vector.
func PlanarNormal(points []Vector3) Vector3 {
	if len(points) < 3 {
		return Vector3{}
	}
	edge1 := points[1].Sub(points[0])
	edge2 := points[2].Sub(points[0])
	return edge1.Cross(edge2).Normalize()
}

// NewellSum accumulates Newell's projected areas over every wrap-around pair
// (p0, p1) of the polygon:
//
//	i += (y1-y0)(z1+z0)
//	j += (z1-z0)(x1+x0)
//	k += (x1-x0)(y1+y0)
//
// The sum points against the right-hand normal; see NewellNormal.
func NewellSum(points []Vector3) Vector3 {
	var sum Vector3
	n := len(points)
	for i := 0; i < n; i++ {
		p0 := points[i]
		p1 := points[(i+1)%n]
		sum.X += (p1.Y - p0.Y) * (p1.Z + p0.Z)
		sum.Y += (p1.Z - p0.Z) * (p1.X + p0.X)
		sum.Z += (p1.X - p0.X) * (p1.Y + p0.Y)
	}
	return sum
}

// NewellNormal returns the unit right-hand normal of a polygon using Newell's
// method, which tolerates mild non-planarity and concave outlines
func NewellNormal(points []Vector3) Vector3 {
	return NewellSum(points).Mul(-1).Normalize()
}

// PolygonArea returns the area of a planar polygon (half the Newell magnitude)
func PolygonArea(points []Vector3) float64 {
	return NewellSum(points).Length() / 2.0
}

// Centroid returns the average of the given points
func Centroid(points []Vector3) Vector3 {
	if len(points) == 0 {
		return Vector3{}
	}
	var sum Vector3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(points)))
}

// CornerAngles returns the angle at each corner of a polygon in radians, in
// point order. Angles are unsigned, between 0 and π; a corner next to a
// zero-length edge reads 0.
func CornerAngles(points []Vector3) []float64 {
	n := len(points)
	angles := make([]float64, n)
	for i, p := range points {
		in := points[(i+n-1)%n].Sub(p).Normalize()
		out := points[(i+1)%n].Sub(p).Normalize()
		if in == (Vector3{}) || out == (Vector3{}) {
			continue
		}
		angles[i] = math.Acos(math.Max(-1, math.Min(1, in.Dot(out))))
	}
	return angles
}
