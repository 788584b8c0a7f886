package ode

// Euler is the explicit first-order Euler integrator. It exists as a
// baseline for accuracy and throughput comparisons; use [RK4] for real
// runs.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys System, x State, t, h float64) State {
	dx := sys.Derive(t, x)
	result := make(State, len(x))
	for i := range x {
		result[i] = x[i] + h*dx[i]
	}
	return result
}
