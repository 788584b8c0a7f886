// Package ode provides fixed-step numerical integration of ordinary
// differential equations.
//
// The package defines the primitives shared by every model in the
// repository:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(t, X))
//   - [Integrator]: single-step integrator interface
//
// # Example
//
//	decay := ode.SystemFunc(func(t float64, x ode.State) ode.State {
//		return ode.State{-x[0]}
//	})
//	step := ode.NewRK4()
//	x := ode.State{1.0}
//	for i := 0; i < 100; i++ {
//		x = step.Step(decay, x, float64(i)*0.01, 0.01)
//	}
//
// # Thread Safety
//
// Integrator instances reuse internal scratch buffers and are NOT safe
// for concurrent use. Allocate one per goroutine.
package ode
