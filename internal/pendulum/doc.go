// Package pendulum implements rigid-rod pendulum models on top of the ode
// integrators.
//
// Three variants share one parameter set:
//
//   - [KindPlanar]: a single angle confined to a vertical plane
//   - [KindSpherical]: polar and azimuth angles on the constraint sphere
//   - [KindCartesian]: bob position and velocity in 3D, the rod enforced
//     by per-step projection
//
// All angles are measured from the downward vertical, so theta = 0 hangs
// at rest and theta = pi balances inverted. The bob has unit mass; energies
// and impulses are per unit mass.
//
// [Simulate] runs a [Request] eagerly and returns a [Trajectory] of
// parallel arrays. [Walk] exposes the same integration one step at a time
// for callers that own pacing, such as the live view. Spherical initial
// conditions within the pole guard of sin(theta) = 0 are delegated to the
// Cartesian representation and back-converted pointwise, reported via
// Trajectory.Fallback rather than an error.
package pendulum
