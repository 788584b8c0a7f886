package pendulum

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/avekker/pendlab/internal/ode"
)

// Request bundles a model choice with everything needed to run it. Planar
// seeds planar runs; Spherical seeds both the spherical and Cartesian
// models. Impulse is a momentum kick applied at t=0.
type Request struct {
	Kind      Kind
	Params    Params
	Planar    PlanarInit
	Spherical SphericalInit
	Impulse   mgl64.Vec3
}

// Simulate runs a request to completion. The returned arrays always have
// floor(Duration/Step)+1 entries including the initial sample. If the
// integration produced non-finite values, the full-length trajectory is
// returned together with an *InstabilityError locating the first bad
// sample. Simulate is pure: identical requests produce identical
// trajectories, and concurrent callers need no locking.
func Simulate(req Request) (*Trajectory, error) {
	w, err := NewWalk(req)
	if err != nil {
		return nil, err
	}

	n := req.Params.sampleCount()
	tr := &Trajectory{
		Kind:     req.Kind,
		Times:    make([]float64, n),
		States:   make([]ode.State, n),
		Energy:   make([]float64, n),
		Fallback: w.FellBack(),
	}

	s := w.Sample()
	tr.Times[0] = s.Time
	tr.States[0] = s.State
	tr.Energy[0] = s.Energy

	for i := 1; i < n; i++ {
		s = w.Next()
		tr.Times[i] = s.Time
		tr.States[i] = s.State
		tr.Energy[i] = s.Energy
	}

	if tr.Fallback {
		backConvert(tr, req.Params.Length)
	}

	if i := tr.firstInvalid(); i >= 0 {
		return tr, &InstabilityError{Step: i, Time: tr.Times[i]}
	}
	return tr, nil
}

// backConvert rewrites Cartesian states as spherical angle columns after a
// pole fallback. Energies stay as computed in the Cartesian frame, which
// is exact where the spherical form degenerates.
func backConvert(tr *Trajectory, length float64) {
	for i, s := range tr.States {
		init := CartesianToSpherical(
			mgl64.Vec3{s[0], s[1], s[2]},
			mgl64.Vec3{s[3], s[4], s[5]},
			length,
		)
		tr.States[i] = ode.State{init.Theta, init.Psi, init.ThetaDot, init.PsiDot}
	}
}

// SimulatePlanar runs the planar model.
func SimulatePlanar(p Params, init PlanarInit) (*Trajectory, error) {
	return Simulate(Request{Kind: KindPlanar, Params: p, Planar: init})
}

// SimulateSpherical runs the spherical model, delegating to the Cartesian
// representation when the initial conditions sit on a pole.
func SimulateSpherical(p Params, init SphericalInit, impulse mgl64.Vec3) (*Trajectory, error) {
	return Simulate(Request{Kind: KindSpherical, Params: p, Spherical: init, Impulse: impulse})
}

// SimulateCartesian runs the constraint-projected Cartesian model.
func SimulateCartesian(p Params, init SphericalInit, impulse mgl64.Vec3) (*Trajectory, error) {
	return Simulate(Request{Kind: KindCartesian, Params: p, Spherical: init, Impulse: impulse})
}
