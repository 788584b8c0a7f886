package export

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/avekker/pendlab/internal/pendulum"
)

// PlotPNG renders every state column against time as a PNG line chart.
func PlotPNG(path string, tr *pendulum.Trajectory) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s pendulum", tr.Kind)
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = "state"
	p.Legend.Top = true

	for i, label := range tr.Labels() {
		line, err := plotter.NewLine(seriesXY(tr.Times, tr.Series(i)))
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(label, line)
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// EnergyPNG renders the total energy series against time.
func EnergyPNG(path string, tr *pendulum.Trajectory) error {
	p := plot.New()
	p.Title.Text = "total energy"
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = "E (J)"

	line, err := plotter.NewLine(seriesXY(tr.Times, tr.Energy))
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Color = plotutil.Color(0)
	p.Add(line)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// seriesXY pairs times with values, stopping at the first non-finite value
// so an unstable tail does not wreck the plot ranges.
func seriesXY(times, values []float64) plotter.XYs {
	xys := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			break
		}
		xys = append(xys, plotter.XY{X: times[i], Y: v})
	}
	return xys
}
