package pendulum

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/avekker/pendlab/internal/ode"
)

// model couples a derivative with its energy function.
type model interface {
	ode.System
	Energy(x ode.State) float64
}

// Walk steps a single pendulum run under caller control. Each Next advances
// one fixed step; Sample reads the current point without advancing. The
// eager Simulate functions are built on top of Walk, so this is the only
// integration loop in the repository. A Walk is not safe for concurrent
// use.
type Walk struct {
	params  Params
	kind    Kind
	model   model
	stepper *ode.RK4
	project func(ode.State) ode.State // set while the Cartesian model is active
	state   ode.State
	step    int

	fellBack bool
}

// NewWalk validates the request, seeds the initial state and applies the
// t=0 impulse. Spherical requests whose initial conditions sit inside the
// pole guard are delegated wholly to the Cartesian representation;
// FellBack reports the switch.
func NewWalk(req Request) (*Walk, error) {
	if err := req.Params.Validate(); err != nil {
		return nil, err
	}

	w := &Walk{
		params:  req.Params,
		stepper: ode.NewRK4(),
	}

	switch req.Kind {
	case KindPlanar:
		w.kind = KindPlanar
		w.model = NewPlanar(req.Params)
		w.state = ode.State{req.Planar.Phi, req.Planar.Omega}

	case KindSpherical:
		if math.Abs(math.Sin(req.Spherical.Theta)) < poleGuard {
			w.seedCartesian(req.Spherical, req.Impulse)
			w.fellBack = true
			break
		}
		m := NewSpherical(req.Params)
		w.kind = KindSpherical
		w.model = m
		w.state = m.applyImpulse(ode.State{
			req.Spherical.Theta,
			req.Spherical.Psi,
			req.Spherical.ThetaDot,
			req.Spherical.PsiDot,
		}, req.Impulse)

	case KindCartesian:
		w.seedCartesian(req.Spherical, req.Impulse)

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, req.Kind)
	}

	return w, nil
}

// seedCartesian installs the Cartesian model with a state converted from
// spherical init plus a direct velocity impulse. The seed is projected so
// an off-sphere impulse component never enters the run.
func (w *Walk) seedCartesian(init SphericalInit, imp mgl64.Vec3) {
	m := NewCartesian(w.params)
	pos, vel := SphericalToCartesian(init, w.params.Length)
	vel = vel.Add(imp)

	w.kind = KindCartesian
	w.model = m
	w.project = m.project
	w.state = m.project(ode.State{pos.X(), pos.Y(), pos.Z(), vel.X(), vel.Y(), vel.Z()})
}

// Time is the current simulation time, exactly step*h on the grid.
func (w *Walk) Time() float64 {
	return float64(w.step) * w.params.Step
}

// Next advances one integration step and returns the new sample.
func (w *Walk) Next() Sample {
	next := w.stepper.Step(w.model, w.state, w.Time(), w.params.Step)
	if w.project != nil {
		next = w.project(next)
	}
	w.state = next
	w.step++
	return w.Sample()
}

// Sample reads the current point without advancing.
func (w *Walk) Sample() Sample {
	return Sample{
		Step:   w.step,
		Time:   w.Time(),
		State:  w.state.Clone(),
		Energy: w.model.Energy(w.state),
	}
}

// Kind reports the representation currently being integrated. It differs
// from the requested kind after a pole fallback.
func (w *Walk) Kind() Kind {
	return w.kind
}

// FellBack reports whether the run switched to the Cartesian
// representation, either at seed time or on a later Kick at a pole.
func (w *Walk) FellBack() bool {
	return w.fellBack
}

// Params returns the run's parameters.
func (w *Walk) Params() Params {
	return w.params
}

// Kick applies an instantaneous momentum impulse to the current state,
// using the same projection rules as the t=0 impulse. Kicking a spherical
// walk at a pole switches the remainder of the run to the Cartesian
// representation.
func (w *Walk) Kick(imp mgl64.Vec3) {
	if imp == (mgl64.Vec3{}) {
		return
	}

	switch w.kind {
	case KindPlanar:
		// the swing plane's tangent direction is (cos phi, 0, sin phi)
		sp, cp := math.Sincos(w.state[0])
		w.state[1] += (imp.X()*cp + imp.Z()*sp) / w.params.Length

	case KindSpherical:
		if math.Abs(math.Sin(w.state[0])) < poleGuard {
			init := SphericalInit{
				Theta:    w.state[0],
				Psi:      w.state[1],
				ThetaDot: w.state[2],
				PsiDot:   w.state[3],
			}
			w.seedCartesian(init, imp)
			w.fellBack = true
			return
		}
		w.state = w.model.(*Spherical).applyImpulse(w.state, imp)

	case KindCartesian:
		w.state[3] += imp.X()
		w.state[4] += imp.Y()
		w.state[5] += imp.Z()
		w.state = w.project(w.state)
	}
}
