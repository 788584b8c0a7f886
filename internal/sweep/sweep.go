// Package sweep runs batches of simulations over a grid of initial
// conditions and summarizes each run as an Outcome.
package sweep

import (
	"context"
	"errors"
	"math"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/avekker/pendlab/internal/pendulum"
)

// Axis is an inclusive linear range. Steps <= 1 collapses the axis to its
// From value.
type Axis struct {
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
	Steps int     `yaml:"steps"`
}

func (a Axis) count() int {
	if a.Steps <= 1 {
		return 1
	}
	return a.Steps
}

// Values expands the axis into its grid points.
func (a Axis) Values() []float64 {
	if a.Steps <= 1 {
		return []float64{a.From}
	}
	vals := make([]float64, a.Steps)
	step := (a.To - a.From) / float64(a.Steps-1)
	for i := range vals {
		vals[i] = a.From + float64(i)*step
	}
	return vals
}

// Spec describes a sweep grid: one model, shared run parameters, and three
// swept axes. For planar runs the Theta axis drives phi and the PsiDot axis
// drives omega.
type Spec struct {
	Model    string  `yaml:"model"`
	Length   float64 `yaml:"length"`
	Gravity  float64 `yaml:"gravity"`
	Step     float64 `yaml:"step"`
	Duration float64 `yaml:"duration"`

	Theta  Axis `yaml:"theta"`
	PsiDot Axis `yaml:"psi_dot"`
	Drag   Axis `yaml:"drag"`

	// Workers caps concurrent runs; 0 means one per CPU.
	Workers int `yaml:"workers"`
}

// Default is a coarse conservative spherical grid. Load overlays a YAML
// file on top of it.
func Default() Spec {
	p := pendulum.DefaultParams()
	return Spec{
		Model:    "spherical",
		Length:   p.Length,
		Gravity:  p.Gravity,
		Step:     p.Step,
		Duration: p.Duration,
		Theta:    Axis{From: 0.1, To: 2.5, Steps: 8},
		PsiDot:   Axis{From: 0, To: 3, Steps: 4},
		Drag:     Axis{From: 0, To: 0, Steps: 1},
	}
}

func Load(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, err
	}
	spec := Default()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// Points is the grid size, the length of the slice Run returns.
func (s Spec) Points() int {
	return s.Theta.count() * s.PsiDot.count() * s.Drag.count()
}

func (s Spec) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.NumCPU()
}

// Outcome summarizes one grid point. An unstable run is an outcome, not an
// error; EnergyDrift is then the spread over the finite prefix.
type Outcome struct {
	Index  int
	Theta  float64
	PsiDot float64
	Drag   float64

	// EnergyDrift is max-min of the energy series. For a conservative run
	// this is the integration error; with drag it is the dissipated energy.
	EnergyDrift float64
	Fallback    bool
	Unstable    bool
}

// Run executes every grid point, at most spec.workers() at a time. The grid
// order is theta-major, then psi_dot, then drag. Each worker writes only its
// own outcome slot, so the collection needs no locking.
func Run(ctx context.Context, spec Spec) ([]Outcome, error) {
	kind, err := pendulum.ParseKind(spec.Model)
	if err != nil {
		return nil, err
	}

	thetas := spec.Theta.Values()
	psiDots := spec.PsiDot.Values()
	drags := spec.Drag.Values()
	outcomes := make([]Outcome, len(thetas)*len(psiDots)*len(drags))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(spec.workers())

	idx := 0
	for _, th := range thetas {
		for _, pd := range psiDots {
			for _, dr := range drags {
				i, theta, psiDot, drag := idx, th, pd, dr
				idx++
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					out, err := runPoint(kind, spec, theta, psiDot, drag)
					if err != nil {
						return err
					}
					out.Index = i
					outcomes[i] = out
					return nil
				})
			}
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func runPoint(kind pendulum.Kind, spec Spec, theta, psiDot, drag float64) (Outcome, error) {
	req := pendulum.Request{
		Kind: kind,
		Params: pendulum.Params{
			Length:   spec.Length,
			Gravity:  spec.Gravity,
			Drag:     drag,
			Step:     spec.Step,
			Duration: spec.Duration,
		},
	}
	if kind == pendulum.KindPlanar {
		req.Planar = pendulum.PlanarInit{Phi: theta, Omega: psiDot}
	} else {
		req.Spherical = pendulum.SphericalInit{Theta: theta, PsiDot: psiDot}
	}

	out := Outcome{Theta: theta, PsiDot: psiDot, Drag: drag}

	tr, err := pendulum.Simulate(req)
	var ie *pendulum.InstabilityError
	switch {
	case errors.As(err, &ie):
		out.Unstable = true
	case err != nil:
		return Outcome{}, err
	}

	out.Fallback = tr.Fallback
	out.EnergyDrift = energySpread(tr.Energy)
	return out, nil
}

// energySpread is max-min over the finite entries of the energy series, NaN
// when no entry is finite.
func energySpread(energy []float64) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, e := range energy {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			continue
		}
		if e < lo {
			lo = e
		}
		if e > hi {
			hi = e
		}
	}
	if hi < lo {
		return math.NaN()
	}
	return hi - lo
}
