package viz

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/avekker/pendlab/internal/pendulum"
)

// Frame is one drawable instant of a simulation: the bob, its recent
// path and the optional force overlay.
type Frame struct {
	Pos         mgl64.Vec3
	Vel         mgl64.Vec3
	Trail       []mgl64.Vec3
	Impulse     mgl64.Vec3 // most recent kick, zero when none
	Length      float64
	Gravity     float64
	ShowVectors bool
}

// DrawScene rasterizes a frame onto the canvas through the camera. The
// pivot sits at the world origin with the rod hanging toward -z.
func DrawScene(c *Canvas, cam Camera, f Frame) {
	pw, ph := c.PixelSize()
	vp := cam.ViewProjection(float64(pw) / float64(ph))

	line := func(a, b mgl64.Vec3) {
		x0, y0, ok0 := Project(vp, a, pw, ph)
		x1, y1, ok1 := Project(vp, b, pw, ph)
		if ok0 && ok1 {
			c.Line(x0, y0, x1, y1)
		}
	}

	// Pivot cross marks the suspension point.
	arm := 0.08 * f.Length
	line(mgl64.Vec3{-arm, 0, 0}, mgl64.Vec3{arm, 0, 0})
	line(mgl64.Vec3{0, -arm, 0}, mgl64.Vec3{0, arm, 0})

	for i := 1; i < len(f.Trail); i++ {
		line(f.Trail[i-1], f.Trail[i])
	}

	line(mgl64.Vec3{}, f.Pos)
	if x, y, ok := Project(vp, f.Pos, pw, ph); ok {
		c.Dot(x, y, 2)
	}

	if !f.ShowVectors {
		return
	}

	// Arrows are scaled per unit mass so the gravity arrow is always
	// 0.3 rod lengths and tension is shown relative to it.
	ref := 0.3 * f.Length
	line(f.Pos, f.Pos.Add(mgl64.Vec3{0, 0, -ref}))

	if f.Pos.Len() > 1e-9 && f.Gravity > 0 {
		tension := pendulum.Tension(f.Pos, f.Vel, f.Length, f.Gravity)
		dir := f.Pos.Mul(-1 / f.Pos.Len())
		line(f.Pos, f.Pos.Add(dir.Mul(ref*tension/f.Gravity)))
	}

	if f.Impulse.Len() > 1e-9 {
		tip := f.Pos.Add(f.Impulse.Normalize().Mul(0.4 * f.Length))
		line(f.Pos, tip)
		if x, y, ok := Project(vp, tip, pw, ph); ok {
			c.Dot(x, y, 1)
		}
	}
}
