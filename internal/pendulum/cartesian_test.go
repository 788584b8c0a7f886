package pendulum

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCartesianConstraintInvariants(t *testing.T) {
	init := SphericalInit{Theta: 0.7, Psi: 0.2, ThetaDot: 0.3, PsiDot: 1.1}
	tr, err := SimulateCartesian(DefaultParams(), init, mgl64.Vec3{})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	for i, s := range tr.States {
		r2 := s[0]*s[0] + s[1]*s[1] + s[2]*s[2]
		if math.Abs(r2-1.0) > 1e-9 {
			t.Fatalf("constraint violated at step %d: |r|^2 = %.12f", i, r2)
		}

		radial := (s[0]*s[3] + s[1]*s[4] + s[2]*s[5]) / 1.0
		if math.Abs(radial) > 1e-9 {
			t.Fatalf("radial velocity at step %d: %.3e", i, radial)
		}
	}
}

func TestCartesianEnergyConservation(t *testing.T) {
	init := SphericalInit{Theta: 0.7, Psi: 0.2, ThetaDot: 0.3, PsiDot: 1.1}
	tr, err := SimulateCartesian(DefaultParams(), init, mgl64.Vec3{})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if spread := energySpread(tr.Energy); spread > 1e-5 {
		t.Errorf("energy drift too large: %.3e", spread)
	}
}

func TestCartesianMatchesPlanarSmallAngle(t *testing.T) {
	p := DefaultParams()
	cart, err := SimulateCartesian(p, SphericalInit{Theta: 0.1}, mgl64.Vec3{})
	if err != nil {
		t.Fatalf("cartesian simulate failed: %v", err)
	}
	pl, err := SimulatePlanar(p, PlanarInit{Phi: 0.1})
	if err != nil {
		t.Fatalf("planar simulate failed: %v", err)
	}

	// Both models integrate the same physics; x = L*sin(phi) links them.
	for i := 0; i < cart.Len(); i++ {
		want := math.Sin(pl.States[i][0])
		if diff := math.Abs(cart.States[i][0] - want); diff > 1e-5 {
			t.Fatalf("x mismatch at step %d: %.3e", i, diff)
		}
	}

	// And the small-angle law holds for the final sample.
	wantX := math.Sin(0.1 * math.Cos(math.Sqrt(9.81)*10.0))
	if gotX := cart.States[cart.Len()-1][0]; math.Abs(gotX-wantX) > 1e-3 {
		t.Errorf("small-angle solution mismatch: got %.6f, want %.6f", gotX, wantX)
	}
}

func TestCartesianSeedProjectsRadialImpulse(t *testing.T) {
	// A purely radial kick at the rest pole is absorbed by the rod: the
	// run must stay at rest.
	tr, err := SimulateCartesian(DefaultParams(), SphericalInit{}, mgl64.Vec3{0, 0, -0.5})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	for i, s := range tr.States {
		if math.Abs(s[2]+1.0) > 1e-12 {
			t.Fatalf("bob moved off rest at step %d: z = %.15f", i, s[2])
		}
	}
	if tr.Energy[tr.Len()-1] > 1e-12 {
		t.Errorf("expected zero energy, got %.3e", tr.Energy[tr.Len()-1])
	}
}

func TestCartesianDragDissipates(t *testing.T) {
	p := DefaultParams()
	p.Drag = 0.3
	init := SphericalInit{Theta: 1.0, PsiDot: 1.0}
	tr, err := SimulateCartesian(p, init, mgl64.Vec3{})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	first, last := tr.Energy[0], tr.Energy[tr.Len()-1]
	if last >= first {
		t.Errorf("expected net dissipation, got %.6f -> %.6f", first, last)
	}
	for i := 1; i < tr.Len(); i++ {
		if tr.Energy[i] > tr.Energy[i-1]+1e-8 {
			t.Fatalf("energy increased at step %d: %.12f -> %.12f", i, tr.Energy[i-1], tr.Energy[i])
		}
	}
}
