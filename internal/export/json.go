package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/avekker/pendlab/internal/pendulum"
)

// runJSON is the snapshot shape: run metadata plus parallel sample arrays.
type runJSON struct {
	Kind     string          `json:"kind"`
	Params   pendulum.Params `json:"params"`
	Labels   []string        `json:"labels"`
	Samples  int             `json:"samples"`
	Fallback bool            `json:"fallback"`
	Times    []float64       `json:"times"`
	States   [][]float64     `json:"states"`
	Energy   []float64       `json:"energy"`
}

// WriteJSON writes an indented snapshot of one run. Trajectories with
// non-finite samples are rejected by the JSON encoder.
func WriteJSON(w io.Writer, p pendulum.Params, tr *pendulum.Trajectory) error {
	data := runJSON{
		Kind:     tr.Kind.String(),
		Params:   p,
		Labels:   tr.Labels(),
		Samples:  tr.Len(),
		Fallback: tr.Fallback,
		Times:    tr.Times,
		States:   make([][]float64, tr.Len()),
		Energy:   tr.Energy,
	}
	for i, s := range tr.States {
		data.States[i] = s
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// JSONFile writes the snapshot to path, creating or truncating it.
func JSONFile(path string, p pendulum.Params, tr *pendulum.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, p, tr)
}
