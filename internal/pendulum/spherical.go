package pendulum

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/avekker/pendlab/internal/ode"
)

// Spherical is the two-degree-of-freedom pendulum in polar/azimuth angles.
// State layout: [theta, psi, thetaDot, psiDot].
//
// The equations divide by sin(theta), so the parametrization degenerates at
// the poles. [NewWalk] delegates initial conditions inside the pole guard
// to the Cartesian model; a trajectory that crosses a pole mid-run blows up
// instead and is reported by the finiteness scan.
type Spherical struct {
	Length  float64
	Gravity float64
	Drag    float64
}

func NewSpherical(p Params) *Spherical {
	return &Spherical{
		Length:  p.Length,
		Gravity: p.Gravity,
		Drag:    p.Drag,
	}
}

func (m *Spherical) Derive(t float64, x ode.State) ode.State {
	theta := x[0]
	thetaDot := x[2]
	psiDot := x[3]

	st, ct := math.Sincos(theta)

	thetaAcc := st*ct*psiDot*psiDot - (m.Gravity/m.Length)*st - m.Drag*thetaDot*math.Abs(thetaDot)
	psiAcc := -2.0*thetaDot*psiDot*ct/st - m.Drag*psiDot*math.Abs(psiDot)

	return ode.State{thetaDot, psiDot, thetaAcc, psiAcc}
}

func (m *Spherical) Energy(x ode.State) float64 {
	return SphericalEnergy(x[0], x[2], x[3], m.Length, m.Gravity)
}

// applyImpulse projects a momentum kick onto the angular rates at the
// state's angles. The azimuthal share is dropped within impulsePoleGuard of
// a pole, where its lever arm vanishes.
func (m *Spherical) applyImpulse(x ode.State, imp mgl64.Vec3) ode.State {
	if imp == (mgl64.Vec3{}) {
		return x
	}

	st, ct := math.Sincos(x[0])
	sp, cp := math.Sincos(x[1])

	fTheta := imp.X()*ct*cp + imp.Y()*ct*sp + imp.Z()*st
	fPsi := -imp.X()*sp + imp.Y()*cp

	out := x.Clone()
	out[2] += fTheta / m.Length
	if math.Abs(st) > impulsePoleGuard {
		out[3] += fPsi / (m.Length * st)
	}
	return out
}
