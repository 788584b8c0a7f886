package pendulum

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestSimulateRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero length", func(p *Params) { p.Length = 0 }},
		{"negative length", func(p *Params) { p.Length = -1 }},
		{"zero step", func(p *Params) { p.Step = 0 }},
		{"negative step", func(p *Params) { p.Step = -0.01 }},
		{"negative duration", func(p *Params) { p.Duration = -1 }},
		{"negative drag", func(p *Params) { p.Drag = -0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)

			tr, err := SimulatePlanar(p, PlanarInit{Phi: 0.1})
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
			if tr != nil {
				t.Error("expected nil trajectory for invalid params")
			}
		})
	}
}

func TestSimulateUnknownKind(t *testing.T) {
	_, err := Simulate(Request{Kind: Kind(42), Params: DefaultParams()})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestSimulateReportsInstability(t *testing.T) {
	p := Params{Length: 1.0, Gravity: 9.81, Drag: 1e8, Step: 0.5, Duration: 10.0}
	tr, err := SimulatePlanar(p, PlanarInit{Phi: 3.0})

	if !errors.Is(err, ErrUnstable) {
		t.Fatalf("expected ErrUnstable, got %v", err)
	}

	var ie *InstabilityError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InstabilityError, got %T", err)
	}
	if tr == nil {
		t.Fatal("instability must still return the full trajectory")
	}
	if tr.Len() != 21 {
		t.Errorf("expected 21 samples, got %d", tr.Len())
	}
	if tr.States[ie.Step].IsValid() {
		t.Errorf("reported step %d is finite", ie.Step)
	}
	if want := float64(ie.Step) * p.Step; math.Abs(ie.Time-want) > 1e-12 {
		t.Errorf("reported time %v does not match step %d", ie.Time, ie.Step)
	}
}

func TestSimulateShapeInvariant(t *testing.T) {
	reqs := []Request{
		{Kind: KindPlanar, Params: DefaultParams(), Planar: PlanarInit{Phi: 0.2}},
		{Kind: KindSpherical, Params: DefaultParams(), Spherical: SphericalInit{Theta: 0.4, PsiDot: 0.5}},
		{Kind: KindCartesian, Params: DefaultParams(), Spherical: SphericalInit{Theta: 0.4}},
	}

	for _, req := range reqs {
		t.Run(req.Kind.String(), func(t *testing.T) {
			tr, err := Simulate(req)
			if err != nil {
				t.Fatalf("simulate failed: %v", err)
			}
			if tr.Len() != 1001 {
				t.Errorf("expected 1001 samples, got %d", tr.Len())
			}
			if tr.Times[0] != 0 {
				t.Errorf("expected t[0] == 0, got %v", tr.Times[0])
			}
			if len(tr.Labels()) != len(tr.States[0]) {
				t.Errorf("labels/state width mismatch: %d vs %d",
					len(tr.Labels()), len(tr.States[0]))
			}
		})
	}
}

func TestSimulatePartialFinalStep(t *testing.T) {
	p := DefaultParams()
	p.Step = 0.1
	p.Duration = 0.95

	tr, err := SimulatePlanar(p, PlanarInit{Phi: 0.1})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	// The grid holds whole steps only: floor(0.95/0.1)+1.
	if tr.Len() != 10 {
		t.Errorf("expected 10 samples, got %d", tr.Len())
	}
	if last := tr.Times[tr.Len()-1]; math.Abs(last-0.9) > 1e-12 {
		t.Errorf("expected final time 0.9, got %v", last)
	}
}

func TestSimulateZeroDuration(t *testing.T) {
	p := DefaultParams()
	p.Duration = 0

	tr, err := SimulatePlanar(p, PlanarInit{Phi: 0.7})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if tr.Len() != 1 {
		t.Fatalf("expected the initial sample only, got %d", tr.Len())
	}
	if tr.States[0][0] != 0.7 {
		t.Errorf("expected seeded state, got %v", tr.States[0])
	}
}

func TestSimulateIdempotent(t *testing.T) {
	req := Request{
		Kind:      KindSpherical,
		Params:    DefaultParams(),
		Spherical: SphericalInit{Theta: 0.9, PsiDot: 2.0},
		Impulse:   mgl64.Vec3{0.1, 0, 0},
	}

	a, err := Simulate(req)
	if err != nil {
		t.Fatalf("first simulate failed: %v", err)
	}
	b, err := Simulate(req)
	if err != nil {
		t.Fatalf("second simulate failed: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("identical requests produced different trajectories")
	}
}

func TestSimulateConcurrentCallersAgree(t *testing.T) {
	defer goleak.VerifyNone(t)

	req := Request{
		Kind:      KindCartesian,
		Params:    DefaultParams(),
		Spherical: SphericalInit{Theta: 1.2, PsiDot: 1.0},
	}

	want, err := Simulate(req)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	var g errgroup.Group
	results := make([]*Trajectory, 8)
	for i := range results {
		i := i
		g.Go(func() error {
			tr, err := Simulate(req)
			results[i] = tr
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent simulate failed: %v", err)
	}

	for i, tr := range results {
		if !reflect.DeepEqual(tr, want) {
			t.Errorf("concurrent result %d differs from sequential result", i)
		}
	}
}
