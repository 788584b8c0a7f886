package pendulum

import (
	"math"
	"testing"
)

func energySpread(energy []float64) float64 {
	lo, hi := energy[0], energy[0]
	for _, e := range energy[1:] {
		if e < lo {
			lo = e
		}
		if e > hi {
			hi = e
		}
	}
	return hi - lo
}

func TestPlanarEnergyConservation(t *testing.T) {
	tr, err := SimulatePlanar(DefaultParams(), PlanarInit{Phi: 0.1})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if spread := energySpread(tr.Energy); spread > 1e-5 {
		t.Errorf("energy drift too large: %.3e", spread)
	}
}

func TestPlanarSmallAngleLaw(t *testing.T) {
	tr, err := SimulatePlanar(DefaultParams(), PlanarInit{Phi: 0.1})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	phiEnd := tr.States[tr.Len()-1][0]
	expected := 0.1 * math.Cos(math.Sqrt(9.81)*10.0)
	if math.Abs(phiEnd-expected) > 1e-3 {
		t.Errorf("small-angle solution mismatch: got %.6f, expected %.6f", phiEnd, expected)
	}
}

func TestPlanarDampedEnergyNonIncreasing(t *testing.T) {
	p := DefaultParams()
	p.Drag = 0.2
	tr, err := SimulatePlanar(p, PlanarInit{Phi: 0.5})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	for i := 1; i < tr.Len(); i++ {
		if tr.Energy[i] > tr.Energy[i-1]+1e-8 {
			t.Fatalf("energy increased at step %d: %.12f -> %.12f", i, tr.Energy[i-1], tr.Energy[i])
		}
	}

	first, last := tr.Energy[0], tr.Energy[tr.Len()-1]
	if last >= first {
		t.Errorf("expected net dissipation, got %.6f -> %.6f", first, last)
	}
}

func TestPlanarArrayShape(t *testing.T) {
	tr, err := SimulatePlanar(DefaultParams(), PlanarInit{Phi: 0.1})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if tr.Len() != 1001 {
		t.Errorf("expected 1001 samples, got %d", tr.Len())
	}
	if len(tr.States) != tr.Len() || len(tr.Energy) != tr.Len() {
		t.Errorf("parallel arrays disagree: %d states, %d energies, %d times",
			len(tr.States), len(tr.Energy), tr.Len())
	}
	if tr.Times[0] != 0 {
		t.Errorf("expected t[0] == 0, got %v", tr.Times[0])
	}
	if last := tr.Times[tr.Len()-1]; math.Abs(last-10.0) > 1e-9 {
		t.Errorf("expected final time 10.0, got %v", last)
	}
}

func TestPlanarEquilibrium(t *testing.T) {
	m := NewPlanar(DefaultParams())

	dx := m.Derive(0, []float64{0, 0})
	if dx[0] != 0 || dx[1] != 0 {
		t.Errorf("expected zero derivative at rest equilibrium, got %v", dx)
	}
}

func TestPlanarGravityRestoring(t *testing.T) {
	m := NewPlanar(DefaultParams())

	dx := m.Derive(0, []float64{0.5, 0})
	if dx[1] >= 0 {
		t.Errorf("expected restoring acceleration for positive angle, got %v", dx[1])
	}

	dx = m.Derive(0, []float64{-0.5, 0})
	if dx[1] <= 0 {
		t.Errorf("expected restoring acceleration for negative angle, got %v", dx[1])
	}
}
