package preview

import (
	"image"
	"image/color"
	"math"
)

type screenPoint struct {
	x, y, z float64
}

// fillTriangle fills a triangle with depth testing against zbuffer
func fillTriangle(img *image.RGBA, zbuffer []float64, a, b, c screenPoint, col color.RGBA) {
	// sort by y, top to bottom
	if a.y > b.y {
		a, b = b, a
	}
	if b.y > c.y {
		b, c = c, b
	}
	if a.y > b.y {
		a, b = b, a
	}

	bounds := img.Bounds()
	width := bounds.Dx()

	yStart := max(0, int(math.Ceil(a.y)))
	yEnd := min(bounds.Dy()-1, int(math.Floor(c.y)))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		// the long edge a-c spans every row; the short side switches at b
		xStart, zStart := edgeAt(a, c, fy)
		var xEnd, zEnd float64
		if fy < b.y {
			xEnd, zEnd = edgeAt(a, b, fy)
		} else {
			xEnd, zEnd = edgeAt(b, c, fy)
		}
		if xStart > xEnd {
			xStart, xEnd = xEnd, xStart
			zStart, zEnd = zEnd, zStart
		}

		xFrom := max(0, int(math.Ceil(xStart)))
		xTo := min(width-1, int(math.Floor(xEnd)))
		for x := xFrom; x <= xTo; x++ {
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			z := zStart + t*(zEnd-zStart)

			idx := y*width + x
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// edgeAt interpolates x and depth along p-q at row y
func edgeAt(p, q screenPoint, y float64) (float64, float64) {
	if q.y == p.y {
		return p.x, p.z
	}
	t := (y - p.y) / (q.y - p.y)
	return p.x + t*(q.x-p.x), p.z + t*(q.z-p.z)
}

// drawLine draws a line of the given thickness using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2, thickness int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		for ox := 0; ox < thickness; ox++ {
			for oy := 0; oy < thickness; oy++ {
				if p := image.Pt(x1+ox, y1+oy); p.In(bounds) {
					img.SetRGBA(p.X, p.Y, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
