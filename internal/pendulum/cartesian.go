package pendulum

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/avekker/pendlab/internal/ode"
)

// Cartesian integrates the bob's position and velocity directly in 3D.
// State layout: [x, y, z, vx, vy, vz].
//
// The rod appears as a tension term in the derivative; project must run
// after every step to renormalize the position onto the sphere and strip
// radial velocity, otherwise the bob drifts off the constraint over long
// runs. The model has no pole, which is why spherical runs delegate here.
type Cartesian struct {
	Length  float64
	Gravity float64
	Drag    float64
}

func NewCartesian(p Params) *Cartesian {
	return &Cartesian{
		Length:  p.Length,
		Gravity: p.Gravity,
		Drag:    p.Drag,
	}
}

func (m *Cartesian) Derive(t float64, x ode.State) ode.State {
	pos := mgl64.Vec3{x[0], x[1], x[2]}
	vel := mgl64.Vec3{x[3], x[4], x[5]}

	// a = g_vec - ((|v|^2 - g*z)/L^2) * r - drag*|v|*v
	lambda := (vel.Dot(vel) - m.Gravity*pos.Z()) / (m.Length * m.Length)
	acc := mgl64.Vec3{0, 0, -m.Gravity}.Sub(pos.Mul(lambda))
	if m.Drag > 0 {
		acc = acc.Sub(vel.Mul(m.Drag * vel.Len()))
	}

	return ode.State{vel.X(), vel.Y(), vel.Z(), acc.X(), acc.Y(), acc.Z()}
}

// project pulls a state back onto the constraint sphere: |r| = L and no
// radial velocity component.
func (m *Cartesian) project(x ode.State) ode.State {
	pos := mgl64.Vec3{x[0], x[1], x[2]}
	vel := mgl64.Vec3{x[3], x[4], x[5]}

	pos = pos.Mul(m.Length / pos.Len())
	rHat := pos.Mul(1.0 / m.Length)
	vel = vel.Sub(rHat.Mul(rHat.Dot(vel)))

	return ode.State{pos.X(), pos.Y(), pos.Z(), vel.X(), vel.Y(), vel.Z()}
}

func (m *Cartesian) Energy(x ode.State) float64 {
	pos := mgl64.Vec3{x[0], x[1], x[2]}
	vel := mgl64.Vec3{x[3], x[4], x[5]}
	return CartesianEnergy(pos, vel, m.Length, m.Gravity)
}
