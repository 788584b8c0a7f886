package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// maxPitch keeps the camera off the poles of its own orbit, where the
// view matrix would degenerate against the fixed up vector.
const maxPitch = 1.5

// Camera orbits a pivot point. Yaw and Pitch are radians, Distance is
// the orbit radius in world units and Zoom divides it, so zooming never
// changes the stored radius.
type Camera struct {
	Pivot    mgl64.Vec3
	Yaw      float64
	Pitch    float64
	Distance float64
	Zoom     float64
	FOV      float64 // vertical field of view, degrees
}

// NewCamera returns a camera orbiting the origin at the given distance,
// tilted slightly above the horizontal plane.
func NewCamera(distance float64) Camera {
	return Camera{
		Yaw:      0.6,
		Pitch:    0.35,
		Distance: distance,
		Zoom:     1,
		FOV:      45,
	}
}

// Rotate nudges the orbit angles. Pitch is clamped short of the poles.
func (c *Camera) Rotate(dyaw, dpitch float64) {
	c.Yaw += dyaw
	c.Pitch += dpitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// ZoomIn tightens the orbit by 20%.
func (c *Camera) ZoomIn() {
	c.Zoom *= 1.2
	if c.Zoom > 10 {
		c.Zoom = 10
	}
}

// ZoomOut widens the orbit by 20%.
func (c *Camera) ZoomOut() {
	c.Zoom /= 1.2
	if c.Zoom < 0.2 {
		c.Zoom = 0.2
	}
}

// Eye returns the camera position in world coordinates. The world is
// z-up: the pendulum hangs along -z.
func (c Camera) Eye() mgl64.Vec3 {
	r := c.Distance / c.Zoom
	return mgl64.Vec3{
		r * math.Cos(c.Pitch) * math.Cos(c.Yaw),
		r * math.Cos(c.Pitch) * math.Sin(c.Yaw),
		r * math.Sin(c.Pitch),
	}.Add(c.Pivot)
}

// ViewProjection builds the combined matrix for the current orbit.
// aspect is pixel width over pixel height of the target canvas.
func (c Camera) ViewProjection(aspect float64) mgl64.Mat4 {
	view := mgl64.LookAtV(c.Eye(), c.Pivot, mgl64.Vec3{0, 0, 1})
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, 0.1, 100)
	return proj.Mul4(view)
}

// Project maps a world point through vp onto a w-by-h pixel grid.
// Points behind the camera or with non-finite coordinates report ok
// false. Depth is dropped: braille cells OR together, so there is
// nothing to occlude.
func Project(vp mgl64.Mat4, p mgl64.Vec3, w, h int) (x, y int, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip[3] <= 0 || math.IsNaN(clip[3]) {
		return 0, 0, false
	}
	clip = clip.Mul(1 / clip[3])
	if math.IsNaN(clip.X()) || math.IsNaN(clip.Y()) {
		return 0, 0, false
	}
	x, y = mgl64.GLToScreenCoords(clip.X(), clip.Y(), w, h)
	return x, y, true
}
