// Package preview rasterises a half-edge mesh into a flat-shaded image
// without a display: faces are lit by a headlight using their normals and
// open boundaries can be outlined.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/philipparndt/gohalfedge/pkg/halfedge"
	"golang.org/x/image/draw"
)

// ErrEmptyMesh is returned when there is nothing to render
var ErrEmptyMesh = errors.New("mesh has no faces")

// Options controls the rendered image
type Options struct {
	Width, Height int
	Supersample   int     // render at this multiple of the size, then downscale
	Yaw, Pitch    float64 // camera angles in radians
	Edges         bool    // outline boundary edges

	Background color.RGBA
	Front      color.RGBA // faces whose normal points at the camera
	Back       color.RGBA // faces seen from behind
	Boundary   color.RGBA
}

// DefaultOptions returns a 512x512 three-quarter view
func DefaultOptions() Options {
	return Options{
		Width:       512,
		Height:      512,
		Supersample: 2,
		Yaw:         math.Pi / 6,
		Pitch:       math.Pi / 8,
		Background:  color.RGBA{R: 30, G: 30, B: 36, A: 255},
		Front:       color.RGBA{R: 90, G: 150, B: 220, A: 255},
		Back:        color.RGBA{R: 200, G: 90, B: 80, A: 255},
		Boundary:    color.RGBA{R: 255, G: 200, B: 0, A: 255},
	}
}

// Render draws every face of the mesh. Stored face normals are used when
// present, otherwise they are computed with Newell's method.
func Render(mesh *halfedge.Mesh, opts Options) (*image.RGBA, error) {
	if mesh.NumFaces() == 0 {
		return nil, ErrEmptyMesh
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}

	scale := max(opts.Supersample, 1)
	width, height := opts.Width*scale, opts.Height*scale

	camera := NewCamera(mesh.Bounds())
	camera.Orbit(opts.Yaw, opts.Pitch)
	projector := camera.Projector(float64(width), float64(height))
	toCamera := camera.Forward().Mul(-1)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	for f := range mesh.Faces() {
		points, err := mesh.FacePoints(f.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to render face %v: %w", f.ID(), err)
		}

		normal, ok := f.Normal()
		if !ok {
			if normal, err = mesh.FaceNormal(f.ID(), false); err != nil {
				return nil, fmt.Errorf("failed to render face %v: %w", f.ID(), err)
			}
		}
		col := shade(normal, toCamera, opts)

		screen, visible := project(projector, points)
		if !visible {
			continue
		}
		for i := 1; i < len(screen)-1; i++ {
			fillTriangle(img, zbuffer, screen[0], screen[i], screen[i+1], col)
		}
	}

	if opts.Edges {
		if err := outlineBoundary(img, mesh, projector, scale, opts.Boundary); err != nil {
			return nil, err
		}
	}

	if scale == 1 {
		return img, nil
	}

	out := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out, nil
}

// project maps a face onto the screen; faces crossing behind the eye are
// skipped whole
func project(projector *Projector, points []geometry.Vector3) ([]screenPoint, bool) {
	screen := make([]screenPoint, len(points))
	for i, p := range points {
		x, y, z, ok := projector.Project(p)
		if !ok {
			return nil, false
		}
		screen[i] = screenPoint{x, y, z}
	}
	return screen, true
}

func outlineBoundary(img *image.RGBA, mesh *halfedge.Mesh, projector *Projector, thickness int, col color.RGBA) error {
	for _, e := range mesh.BoundaryEdges() {
		from, err := mesh.Vertex(e.Origin())
		if err != nil {
			return err
		}
		to, err := mesh.Destination(e.ID())
		if err != nil {
			return err
		}

		x1, y1, _, ok1 := projector.Project(from.Location())
		x2, y2, _, ok2 := projector.Project(to.Location())
		if !ok1 || !ok2 {
			continue
		}
		drawLine(img, int(x1), int(y1), int(x2), int(y2), thickness, col)
	}
	return nil
}

// shade applies ambient plus headlight diffuse lighting
func shade(normal, toCamera geometry.Vector3, opts Options) color.RGBA {
	base := opts.Front
	lambert := normal.Dot(toCamera)
	if lambert < 0 {
		base = opts.Back
		lambert = -lambert
	}

	intensity := 0.25 + 0.75*math.Min(lambert, 1)
	return color.RGBA{
		R: uint8(float64(base.R) * intensity),
		G: uint8(float64(base.G) * intensity),
		B: uint8(float64(base.B) * intensity),
		A: 255,
	}
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
