package render

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// MatrixOptions controls the correlation heatmap.
type MatrixOptions struct {
	OutPath string
	Title   string

	// TickStep labels every TickStep-th bin index; defaults to 50, which
	// keeps wide matrices readable.
	TickStep int

	Width  vg.Length
	Height vg.Length
}

func (o MatrixOptions) withDefaults() MatrixOptions {
	if o.TickStep <= 0 {
		o.TickStep = 50
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// CorrelationMatrix writes corr as a heatmap over a diverging palette
// pinned to [-1, 1], with a horizontal colorbar. NaN cells are left blank.
// Subsampled axis ticks carry the bin labels; a nil labels slice falls back
// to bin indices.
//
// Errors: ErrNoOutput without an output path, ErrEmptyPlot for a nil
// matrix, ErrShapeMismatch for a non-square or empty one or for labels not
// aligned with the matrix.
func CorrelationMatrix(corr *mat.Dense, labels []float64, opts MatrixOptions) error {
	if opts.OutPath == "" {
		return ErrNoOutput
	}
	if corr == nil {
		return ErrEmptyPlot
	}
	r, c := corr.Dims()
	if r == 0 || r != c {
		return ErrShapeMismatch
	}
	if labels != nil && len(labels) != r {
		return ErrShapeMismatch
	}
	opts = opts.withDefaults()

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	hm := plotter.NewHeatMap(matrixGrid{m: corr}, cm.Palette(255))
	hm.Min, hm.Max = -1, 1

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "bin"
	p.Y.Label.Text = "bin"
	p.X.Tick.Marker = binTicker{labels: labels, step: opts.TickStep}
	p.Y.Tick.Marker = binTicker{labels: labels, step: opts.TickStep}
	p.Add(hm)

	return saveWithColorBar(p, cm, "correlation", opts.Width, opts.Height, opts.OutPath)
}
