package geometry

// Triangle is one STL facet: the normal stored in the file and the three
// corners in file order
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// Corners returns the three corners as a polygon
func (t Triangle) Corners() []Vector3 {
	return []Vector3{t.V1, t.V2, t.V3}
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return PolygonArea(t.Corners())
}

// NormalAgrees reports whether the stored normal points to the same side as
// the corners' winding. Corners are read counter-clockwise unless clockwise
// is set. A zero stored normal, which many exporters write, agrees with
// anything, as does a triangle too thin to have a direction.
func (t Triangle) NormalAgrees(clockwise bool) bool {
	wound := PlanarNormal(t.Corners())
	if clockwise {
		wound = wound.Mul(-1)
	}
	return t.Normal.Dot(wound) >= 0
}
