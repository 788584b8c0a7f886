package pendulum

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PlanarEnergy is the total mechanical energy of the planar pendulum,
// zero at rest hanging straight down.
func PlanarEnergy(phi, omega, length, gravity float64) float64 {
	// KE = 0.5 * (L*omega)^2
	// PE = g * L * (1 - cos(phi))
	v := length * omega
	return 0.5*v*v + gravity*length*(1.0-math.Cos(phi))
}

// SphericalEnergy extends the planar formula with the azimuthal term.
func SphericalEnergy(theta, thetaDot, psiDot, length, gravity float64) float64 {
	st := math.Sin(theta)
	ke := 0.5 * length * length * (thetaDot*thetaDot + st*st*psiDot*psiDot)
	pe := gravity * length * (1.0 - math.Cos(theta))
	return ke + pe
}

// CartesianEnergy measures a bob at pos moving with vel, with potential
// referenced to the lowest point of the constraint sphere.
func CartesianEnergy(pos, vel mgl64.Vec3, length, gravity float64) float64 {
	return 0.5*vel.Dot(vel) + gravity*(pos.Z()+length)
}

// Tension is the rod tension at the given bob state, positive when the rod
// pulls the bob toward the pivot. At rest hanging down it equals gravity.
func Tension(pos, vel mgl64.Vec3, length, gravity float64) float64 {
	return (vel.Dot(vel) - gravity*pos.Z()) / length
}
