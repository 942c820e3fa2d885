package preview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gohalfedge/pkg/geometry"
)

// Camera orbits a target point at a fixed distance
type Camera struct {
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // vertical field of view in radians
	Distance float64
	Yaw      float64 // rotation around the vertical axis
	Pitch    float64 // elevation above the horizontal plane
}

// NewCamera creates a camera whose view cone contains the bounding sphere of
// bbox with a small margin
func NewCamera(bbox geometry.BoundingBox) *Camera {
	fov := mgl64.DegToRad(45)
	distance := bbox.Diagonal() / 2 / math.Sin(fov/2) * 1.1
	if distance < 1e-6 {
		distance = 1
	}

	return &Camera{
		Target:   bbox.Center(),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      fov,
		Distance: distance,
	}
}

// Orbit sets the viewing angles in radians. Pitch is clamped short of the
// poles where the up vector would become degenerate.
func (c *Camera) Orbit(yaw, pitch float64) {
	maxPitch := math.Pi/2 - 0.1
	c.Yaw = yaw
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, pitch))
}

// Position returns the eye position
func (c *Camera) Position() geometry.Vector3 {
	x := c.Distance * math.Cos(c.Pitch) * math.Sin(c.Yaw)
	y := c.Distance * math.Sin(c.Pitch)
	z := c.Distance * math.Cos(c.Pitch) * math.Cos(c.Yaw)
	return c.Target.Add(geometry.NewVector3(x, y, z))
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() geometry.Vector3 {
	return c.Target.Sub(c.Position()).Normalize()
}

// Projector maps world points onto an image of the given size
type Projector struct {
	viewProj      mgl64.Mat4
	width, height float64
}

// Projector returns a projector for an image of width x height pixels
func (c *Camera) Projector(width, height float64) *Projector {
	view := mgl64.LookAtV(toVec3(c.Position()), toVec3(c.Target), toVec3(c.Up))
	proj := mgl64.Perspective(c.FOV, width/height, c.Distance*0.01, c.Distance*10)
	return &Projector{
		viewProj: proj.Mul4(view),
		width:    width,
		height:   height,
	}
}

// Project returns the pixel coordinates of p and its depth along the view
// axis. ok is false for points behind the eye.
func (p *Projector) Project(point geometry.Vector3) (x, y, depth float64, ok bool) {
	clip := p.viewProj.Mul4x1(mgl64.Vec4{point.X, point.Y, point.Z, 1})
	w := clip.W()
	if w <= 0 {
		return 0, 0, 0, false
	}

	x = (clip.X()/w + 1) / 2 * p.width
	y = (1 - clip.Y()/w) / 2 * p.height
	return x, y, w, true
}

func toVec3(v geometry.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
