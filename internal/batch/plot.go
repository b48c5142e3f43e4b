package batch

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"orientkit/internal/euler"
	"orientkit/internal/mathutil"
)

var curveColors = [3]color.RGBA{
	{R: 220, G: 60, B: 60, A: 255},
	{R: 60, G: 170, B: 60, A: 255},
	{R: 60, G: 90, B: 220, A: 255},
}

// PlotAngles charts, per frame, the engine Euler angles (solid) and the
// same rotation expressed in order (dashed). A jump in a solid curve means
// the continuity pass failed; dashed curves are allowed to jump.
// The image format follows the extension of path.
func PlotAngles(path string, order euler.Order, results []Result) error {
	if len(results) == 0 {
		return fmt.Errorf("batch: plot: no frames")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Orientation per frame (engine vs %s)", order)
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Angle (deg)"

	var engine, ordered [3]plotter.XYs
	for _, r := range results {
		f := r.Frame
		e := f.Euler.Degrees()
		o := euler.FromQuat(mathutil.MustUnitQuat(f.Quat), order).Degrees()
		for axis := range 3 {
			engine[axis] = append(engine[axis], plotter.XY{X: float64(f.Index), Y: e[axis]})
			ordered[axis] = append(ordered[axis], plotter.XY{X: float64(f.Index), Y: o[axis]})
		}
	}

	axes := order.Axes()
	for i := range 3 {
		line, err := plotter.NewLine(engine[i])
		if err != nil {
			return fmt.Errorf("batch: plot: %w", err)
		}
		line.Color = curveColors[i]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(string("xyz"[i]), line)

		line, err = plotter.NewLine(ordered[i])
		if err != nil {
			return fmt.Errorf("batch: plot: %w", err)
		}
		line.Color = curveColors[axes[i]]
		line.Width = vg.Points(1)
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s[%d] (%c)", order, i, "XYZ"[axes[i]]), line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("batch: plot: %w", err)
	}
	return nil
}
