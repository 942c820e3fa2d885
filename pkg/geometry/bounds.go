package geometry

import "iter"

// BoundingBox is an axis-aligned box around a set of points. The zero value
// is empty and has zero size.
type BoundingBox struct {
	Min Vector3
	Max Vector3

	populated bool
}

// BoundsOf returns the smallest box containing every point of seq
func BoundsOf(seq iter.Seq[Vector3]) BoundingBox {
	var b BoundingBox
	for p := range seq {
		b.Extend(p)
	}
	return b
}

// Extend grows the box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	if !b.populated {
		b.Min, b.Max, b.populated = point, point, true
		return
	}
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// IsEmpty reports whether no point has been added
func (b BoundingBox) IsEmpty() bool {
	return !b.populated
}

// Size returns the dimensions of the box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the box
func (b BoundingBox) Center() Vector3 {
	return b.Min.Lerp(b.Max, 0.5)
}

// Diagonal returns the length of the box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// Span returns the lowest and highest coordinate along axis
func (b BoundingBox) Span(axis int) (float64, float64) {
	return b.Min.Component(axis), b.Max.Component(axis)
}
