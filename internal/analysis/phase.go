package analysis

import (
	"fmt"
	"math"

	"github.com/avekker/pendlab/internal/pendulum"
	"github.com/avekker/pendlab/internal/viz"
)

// PhasePortrait is a 2D slice of phase space sampled from one trajectory.
type PhasePortrait struct {
	XLabel, YLabel string
	X, Y           []float64
}

// Phase extracts state columns xCol and yCol of a trajectory as a phase
// portrait. For a planar run (0, 1) is the classic phi-omega portrait.
func Phase(tr *pendulum.Trajectory, xCol, yCol int) (*PhasePortrait, error) {
	labels := tr.Labels()
	if xCol < 0 || xCol >= len(labels) || yCol < 0 || yCol >= len(labels) {
		return nil, fmt.Errorf("analysis: column out of range for %s state", tr.Kind)
	}
	return &PhasePortrait{
		XLabel: labels[xCol],
		YLabel: labels[yCol],
		X:      tr.Series(xCol),
		Y:      tr.Series(yCol),
	}, nil
}

// Render rasterizes the portrait onto a braille canvas of width x height
// terminal cells. Axes are drawn where they cross the visible range;
// non-finite samples are skipped.
func (pp *PhasePortrait) Render(width, height int) string {
	minX, maxX, okX := bounds(pp.X)
	minY, maxY, okY := bounds(pp.Y)
	if !okX || !okY {
		return ""
	}

	// pad 10% so the orbit does not hug the border
	padX, padY := (maxX-minX)*0.1, (maxY-minY)*0.1
	if padX == 0 {
		padX = 1
	}
	if padY == 0 {
		padY = 1
	}
	minX, maxX = minX-padX, maxX+padX
	minY, maxY = minY-padY, maxY+padY

	c := viz.NewCanvas(width, height)
	pw, ph := c.PixelSize()

	toPx := func(x, y float64) (int, int) {
		px := int((x - minX) / (maxX - minX) * float64(pw-1))
		py := ph - 1 - int((y-minY)/(maxY-minY)*float64(ph-1))
		return px, py
	}

	if minX <= 0 && maxX >= 0 {
		x0, _ := toPx(0, minY)
		c.Line(x0, 0, x0, ph-1)
	}
	if minY <= 0 && maxY >= 0 {
		_, y0 := toPx(minX, 0)
		c.Line(0, y0, pw-1, y0)
	}

	for i := range pp.X {
		if !finite(pp.X[i]) || !finite(pp.Y[i]) {
			continue
		}
		px, py := toPx(pp.X[i], pp.Y[i])
		c.Set(px, py)
	}
	return c.String()
}

// bounds is min/max over the finite entries, ok=false when there are none.
func bounds(vs []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if !finite(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, hi >= lo
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
