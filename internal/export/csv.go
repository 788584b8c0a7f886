// Package export writes trajectories to interchange formats: CSV rows,
// JSON snapshots, SVG path projections and PNG line plots.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/avekker/pendlab/internal/pendulum"
)

// WriteCSV writes one row per sample: t, the kind's state columns, energy.
func WriteCSV(w io.Writer, tr *pendulum.Trajectory) error {
	cw := csv.NewWriter(w)

	header := append([]string{"t"}, tr.Labels()...)
	header = append(header, "energy")
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := 0; i < tr.Len(); i++ {
		row := make([]string, 0, len(header))
		row = append(row, formatFloat(tr.Times[i]))
		for _, v := range tr.States[i] {
			row = append(row, formatFloat(v))
		}
		row = append(row, formatFloat(tr.Energy[i]))
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVFile writes the trajectory to path, creating or truncating it.
func CSVFile(path string, tr *pendulum.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, tr)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
