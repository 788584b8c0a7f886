package pendulum

import (
	"math"

	"github.com/avekker/pendlab/internal/ode"
)

// Planar is the single-degree-of-freedom pendulum confined to a vertical
// plane. State layout: [phi, omega].
type Planar struct {
	Length  float64
	Gravity float64
	Drag    float64
}

func NewPlanar(p Params) *Planar {
	return &Planar{
		Length:  p.Length,
		Gravity: p.Gravity,
		Drag:    p.Drag,
	}
}

func (m *Planar) Derive(t float64, x ode.State) ode.State {
	phi := x[0]
	omega := x[1]

	alpha := -(m.Gravity/m.Length)*math.Sin(phi) - m.Drag*omega*math.Abs(omega)

	return ode.State{omega, alpha}
}

func (m *Planar) Energy(x ode.State) float64 {
	return PlanarEnergy(x[0], x[1], m.Length, m.Gravity)
}
