package pendulum

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSphericalCartesianRoundTrip(t *testing.T) {
	tests := []SphericalInit{
		{Theta: 0.3, Psi: 0.5, ThetaDot: 0.2, PsiDot: -0.7},
		{Theta: 1.2, Psi: -2.0, ThetaDot: -1.1, PsiDot: 2.4},
		{Theta: 2.8, Psi: 3.0, ThetaDot: 0.05, PsiDot: 0.9},
		{Theta: math.Pi / 2, Psi: 0, ThetaDot: 1.0, PsiDot: 0},
	}

	const length = 1.3
	for _, in := range tests {
		pos, vel := SphericalToCartesian(in, length)
		out := CartesianToSpherical(pos, vel, length)

		if math.Abs(out.Theta-in.Theta) > 1e-12 {
			t.Errorf("theta round trip: got %v, want %v", out.Theta, in.Theta)
		}
		if math.Abs(out.Psi-in.Psi) > 1e-12 {
			t.Errorf("psi round trip: got %v, want %v", out.Psi, in.Psi)
		}
		if math.Abs(out.ThetaDot-in.ThetaDot) > 1e-12 {
			t.Errorf("theta-dot round trip: got %v, want %v", out.ThetaDot, in.ThetaDot)
		}
		if math.Abs(out.PsiDot-in.PsiDot) > 1e-12 {
			t.Errorf("psi-dot round trip: got %v, want %v", out.PsiDot, in.PsiDot)
		}
	}
}

func TestSphericalToCartesianStaysOnSphere(t *testing.T) {
	tests := []SphericalInit{
		{Theta: 0.1, Psi: 1.0, ThetaDot: 2.0, PsiDot: 3.0},
		{Theta: 1.5, Psi: -0.5, ThetaDot: -0.3, PsiDot: 0.4},
		{Theta: 3.0, Psi: 2.2, ThetaDot: 0.9, PsiDot: -1.8},
	}

	const length = 2.0
	for _, in := range tests {
		pos, vel := SphericalToCartesian(in, length)

		if r := pos.Len(); math.Abs(r-length) > 1e-12 {
			t.Errorf("position off sphere: |r| = %v", r)
		}
		if radial := pos.Dot(vel); math.Abs(radial) > 1e-12 {
			t.Errorf("velocity not tangent: r.v = %v", radial)
		}
	}
}

func TestSphericalToCartesianVerticalRate(t *testing.T) {
	// At the equator a positive theta-dot lifts the bob: vz = L*theta_dot.
	_, vel := SphericalToCartesian(SphericalInit{Theta: math.Pi / 2, ThetaDot: 0.5}, 1.0)
	if math.Abs(vel.Z()-0.5) > 1e-12 {
		t.Errorf("expected vz = 0.5, got %v", vel.Z())
	}
}

func TestCartesianToSphericalAtPole(t *testing.T) {
	pos := mgl64.Vec3{0, 0, -1.0}
	vel := mgl64.Vec3{0.1, 0.2, 0}

	out := CartesianToSpherical(pos, vel, 1.0)
	if out.Theta != 0 {
		t.Errorf("expected theta 0 at bottom pole, got %v", out.Theta)
	}
	if out.PsiDot != 0 {
		t.Errorf("expected psi-dot suppressed at pole, got %v", out.PsiDot)
	}
	// At psi=0 the theta direction is x; only vx contributes.
	if math.Abs(out.ThetaDot-0.1) > 1e-12 {
		t.Errorf("expected theta-dot 0.1, got %v", out.ThetaDot)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1.0, 1.0},
		{-1.0, -1.0},
		{math.Pi, -math.Pi},
		{-math.Pi, -math.Pi},
		{2.5 * math.Pi, 0.5 * math.Pi},
		{-2.5 * math.Pi, -0.5 * math.Pi},
	}

	for _, tt := range tests {
		if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBobPathPlanar(t *testing.T) {
	tr, err := SimulatePlanar(DefaultParams(), PlanarInit{Phi: 0.4})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	pts := BobPath(tr, 1.0)
	if len(pts) != tr.Len() {
		t.Fatalf("expected %d points, got %d", tr.Len(), len(pts))
	}
	for i, pt := range pts {
		phi := tr.States[i][0]
		if math.Abs(pt.Z()+math.Cos(phi)) > 1e-12 || pt.Y() != 0 {
			t.Fatalf("point %d off the swing plane: %v", i, pt)
		}
	}
}
