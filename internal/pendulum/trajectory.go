package pendulum

import "github.com/avekker/pendlab/internal/ode"

// Sample is one integration step of a run.
type Sample struct {
	Step   int
	Time   float64
	State  ode.State
	Energy float64
}

// Trajectory holds one simulation run as parallel arrays of equal length,
// floor(Duration/Step)+1 entries with Times[0] == 0.
type Trajectory struct {
	Kind   Kind
	Times  []float64
	States []ode.State
	Energy []float64

	// Fallback reports that a spherical request was integrated in the
	// Cartesian representation because its initial conditions sat on a
	// coordinate pole. The angle columns are back-converted pointwise.
	Fallback bool
}

func (tr *Trajectory) Len() int {
	return len(tr.Times)
}

// Labels names the state columns for the trajectory's kind.
func (tr *Trajectory) Labels() []string {
	return tr.Kind.Labels()
}

// Series extracts state column i across all samples.
func (tr *Trajectory) Series(i int) []float64 {
	out := make([]float64, len(tr.States))
	for j, s := range tr.States {
		out[j] = s[i]
	}
	return out
}

func (tr *Trajectory) At(i int) Sample {
	return Sample{
		Step:   i,
		Time:   tr.Times[i],
		State:  tr.States[i],
		Energy: tr.Energy[i],
	}
}

// firstInvalid returns the index of the first non-finite sample, or -1.
func (tr *Trajectory) firstInvalid() int {
	for i, s := range tr.States {
		if !s.IsValid() {
			return i
		}
	}
	return -1
}
