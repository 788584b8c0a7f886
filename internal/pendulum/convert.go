package pendulum

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/avekker/pendlab/internal/ode"
)

// Angle guards. Below poleGuard the spherical parametrization is unusable
// and the run delegates to the Cartesian model; the smaller thresholds
// suppress individually degenerate terms.
const (
	poleGuard        = 1e-6
	impulsePoleGuard = 1e-8
	convertPoleGuard = 1e-12
)

// SphericalToCartesian maps spherical angles and rates to bob position and
// velocity. The pivot sits at the origin and theta is measured from the
// downward vertical, so theta = 0 rests at z = -L.
func SphericalToCartesian(init SphericalInit, length float64) (pos, vel mgl64.Vec3) {
	st, ct := math.Sincos(init.Theta)
	sp, cp := math.Sincos(init.Psi)

	pos = mgl64.Vec3{
		length * st * cp,
		length * st * sp,
		-length * ct,
	}
	vel = mgl64.Vec3{
		length * (init.ThetaDot*ct*cp - init.PsiDot*st*sp),
		length * (init.ThetaDot*ct*sp + init.PsiDot*st*cp),
		length * init.ThetaDot * st,
	}
	return pos, vel
}

// CartesianToSpherical inverts SphericalToCartesian. On the poles the
// azimuth is undefined and psi-dot is reported as zero.
func CartesianToSpherical(pos, vel mgl64.Vec3, length float64) SphericalInit {
	theta := math.Acos(clamp(-pos.Z()/length, -1.0, 1.0))
	psi := math.Atan2(pos.Y(), pos.X())

	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(psi)

	out := SphericalInit{
		Theta:    theta,
		Psi:      psi,
		ThetaDot: (vel.X()*ct*cp + vel.Y()*ct*sp + vel.Z()*st) / length,
	}
	if math.Abs(st) > convertPoleGuard {
		out.PsiDot = (-vel.X()*sp + vel.Y()*cp) / (length * st)
	}
	return out
}

// WrapAngle maps an angle to [-pi, pi).
func WrapAngle(a float64) float64 {
	w := math.Mod(a+math.Pi, 2*math.Pi)
	if w < 0 {
		w += 2 * math.Pi
	}
	return w - math.Pi
}

// BobPosition maps one state to the bob's Cartesian position. Planar states
// swing in the x-z plane.
func BobPosition(kind Kind, s ode.State, length float64) mgl64.Vec3 {
	switch kind {
	case KindPlanar:
		st, ct := math.Sincos(s[0])
		return mgl64.Vec3{length * st, 0, -length * ct}
	case KindSpherical:
		pos, _ := SphericalToCartesian(SphericalInit{Theta: s[0], Psi: s[1]}, length)
		return pos
	default:
		return mgl64.Vec3{s[0], s[1], s[2]}
	}
}

// BobVelocity maps one state to the bob's Cartesian velocity.
func BobVelocity(kind Kind, s ode.State, length float64) mgl64.Vec3 {
	switch kind {
	case KindPlanar:
		st, ct := math.Sincos(s[0])
		return mgl64.Vec3{length * s[1] * ct, 0, length * s[1] * st}
	case KindSpherical:
		_, vel := SphericalToCartesian(SphericalInit{
			Theta: s[0], Psi: s[1], ThetaDot: s[2], PsiDot: s[3],
		}, length)
		return vel
	default:
		return mgl64.Vec3{s[3], s[4], s[5]}
	}
}

// BobPath maps every sample of a trajectory to the bob's Cartesian position.
func BobPath(tr *Trajectory, length float64) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, tr.Len())
	for i, s := range tr.States {
		pts[i] = BobPosition(tr.Kind, s, length)
	}
	return pts
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
