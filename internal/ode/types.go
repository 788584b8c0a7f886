package ode

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// System is a first-order ODE dX/dt = f(t, X). Derive must not retain
// or mutate x.
type System interface {
	Derive(t float64, x State) State
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(t float64, x State) State

func (f SystemFunc) Derive(t float64, x State) State {
	return f(t, x)
}

type Integrator interface {
	Step(sys System, x State, t, h float64) State
}
