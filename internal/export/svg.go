package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/avekker/pendlab/internal/pendulum"
)

const (
	svgPanel  = 400.0
	svgMargin = 20.0
)

// WriteSVG writes the bob path as two square projections side by side:
// floor (x-y, seen from above) and wall (y-z, seen from the side). Both
// panels share the scale [-1.05L, 1.05L] so circles stay circles.
func WriteSVG(w io.Writer, tr *pendulum.Trajectory, length float64) error {
	pts := pendulum.BobPath(tr, length)
	rng := 1.05 * length

	width := 2*svgPanel + 3*svgMargin
	height := svgPanel + 2*svgMargin

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	writePanel(&sb, svgMargin, svgMargin, rng, "floor (x-y)", "#00ff88", pts,
		func(p mgl64.Vec3) (float64, float64) { return p.X(), p.Y() })
	writePanel(&sb, 2*svgMargin+svgPanel, svgMargin, rng, "wall (y-z)", "#00ccff", pts,
		func(p mgl64.Vec3) (float64, float64) { return p.Y(), p.Z() })

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// SVGFile writes the projections to path, creating or truncating it.
func SVGFile(path string, tr *pendulum.Trajectory, length float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSVG(f, tr, length)
}

func writePanel(sb *strings.Builder, ox, oy, rng float64, label, stroke string,
	pts []mgl64.Vec3, project func(mgl64.Vec3) (float64, float64)) {

	sb.WriteString(fmt.Sprintf(
		"<rect x=\"%.0f\" y=\"%.0f\" width=\"%.0f\" height=\"%.0f\" fill=\"none\" stroke=\"#333333\"/>\n",
		ox, oy, svgPanel, svgPanel))

	scale := svgPanel / (2 * rng)
	started := false
	var path strings.Builder
	for _, p := range pts {
		u, v := project(p)
		if math.IsNaN(u) || math.IsNaN(v) || math.IsInf(u, 0) || math.IsInf(v, 0) {
			continue
		}
		x := ox + (u+rng)*scale
		y := oy + (rng-v)*scale
		if !started {
			fmt.Fprintf(&path, "M%.1f,%.1f", x, y)
			started = true
		} else {
			fmt.Fprintf(&path, " L%.1f,%.1f", x, y)
		}
	}
	if started {
		sb.WriteString(fmt.Sprintf(
			"<path fill=\"none\" stroke=\"%s\" stroke-width=\"1.5\" d=\"%s\"/>\n",
			stroke, path.String()))
	}

	sb.WriteString(fmt.Sprintf(
		"<text x=\"%.0f\" y=\"%.0f\" fill=\"#888888\" font-family=\"monospace\" font-size=\"14\">%s</text>\n",
		ox+8, oy+20, label))
}
