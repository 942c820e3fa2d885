package geometry

import (
	"fmt"
	"math"
)

// CircleFit represents the result of fitting a circle to points
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	Normal Vector3 // Normal of the plane containing the circle
	StdDev float64 // Standard deviation of the point distances from the radius
}

// FitCircle fits a circle to points lying roughly on a plane of any
// orientation, such as the rim of a drilled hole. The plane comes from
// Newell's normal of the points taken as a polygon, so they must be in
// order around the rim.
//
// The circle passes through the first, middle and last points; the
// remaining points only contribute to StdDev. In plane coordinates:
//
//	D  = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
func FitCircle(points []Vector3) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a circle")
	}

	normal := NewellNormal(points)
	if normal == (Vector3{}) {
		return nil, fmt.Errorf("points are collinear")
	}
	u, w := planeBasis(normal)

	origin := points[0]
	flat := make([][2]float64, len(points))
	for i, p := range points {
		d := p.Sub(origin)
		flat[i] = [2]float64{d.Dot(u), d.Dot(w)}
	}

	p1 := flat[0]
	p2 := flat[len(flat)/2]
	p3 := flat[len(flat)-1]
	x1, y1 := p1[0], p1[1]
	x2, y2 := p2[0], p2[1]
	x3, y3 := p3[0], p3[1]

	d := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(d) < 1e-10 {
		return nil, fmt.Errorf("points are collinear")
	}

	s1 := x1*x1 + y1*y1
	s2 := x2*x2 + y2*y2
	s3 := x3*x3 + y3*y3
	cx := (s1*(y2-y3) + s2*(y3-y1) + s3*(y1-y2)) / d
	cy := (s1*(x3-x2) + s2*(x1-x3) + s3*(x2-x1)) / d

	radius := math.Hypot(x1-cx, y1-cy)

	var sumError float64
	for _, p := range flat {
		e := math.Hypot(p[0]-cx, p[1]-cy) - radius
		sumError += e * e
	}

	return &CircleFit{
		Center: origin.Add(u.Mul(cx)).Add(w.Mul(cy)),
		Radius: radius,
		Normal: normal,
		StdDev: math.Sqrt(sumError / float64(len(flat))),
	}, nil
}

// planeBasis returns two unit vectors spanning the plane with normal n
func planeBasis(n Vector3) (Vector3, Vector3) {
	helper := NewVector3(1, 0, 0)
	if math.Abs(n.X) > 0.9 {
		helper = NewVector3(0, 1, 0)
	}
	u := n.Cross(helper).Normalize()
	return u, n.Cross(u)
}
