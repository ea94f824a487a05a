package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/classtools/classtat/histogram"
)

// HistogramOptions controls a single-histogram plot. Nil pointer fields
// leave the corresponding decoration out.
type HistogramOptions struct {
	OutPath string
	Title   string
	XLabel  string

	// Mean draws a vertical marker at the given value.
	Mean *float64

	// Band shades a horizontal interval behind the bars.
	Band *Band

	// XMin and XMax clamp the x axis instead of fitting the data.
	XMin *float64
	XMax *float64

	Width  vg.Length
	Height vg.Length
}

func (o HistogramOptions) withDefaults() HistogramOptions {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// HistogramPlot writes h as normalized frequency bars, optionally decorated
// with a mean marker and a shaded containment band, to opts.OutPath.
//
// Errors: ErrNoOutput without an output path, ErrEmptyPlot for a histogram
// with no bins, histogram.ErrBadShape for a malformed one.
func HistogramPlot(h histogram.Histogram, opts HistogramOptions) error {
	if opts.OutPath == "" {
		return ErrNoOutput
	}
	if h.Bins() == 0 {
		return ErrEmptyPlot
	}
	if len(h.Edges) != h.Bins()+1 {
		return histogram.ErrBadShape
	}
	opts = opts.withDefaults()

	freqs := h.Frequencies()
	bins := make([]plotter.HistogramBin, h.Bins())
	ymax := 0.0
	for i := range bins {
		bins[i] = plotter.HistogramBin{Min: h.Edges[i], Max: h.Edges[i+1], Weight: freqs[i]}
		if freqs[i] > ymax {
			ymax = freqs[i]
		}
	}
	if ymax == 0 {
		ymax = 1
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = "fraction of samples"

	if opts.Band != nil {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: opts.Band.Lo, Y: 0},
			{X: opts.Band.Hi, Y: 0},
			{X: opts.Band.Hi, Y: ymax},
			{X: opts.Band.Lo, Y: ymax},
		})
		if err != nil {
			return fmt.Errorf("render: band: %w", err)
		}
		poly.Color = color.NRGBA{R: 0xff, G: 0xa5, A: 0x50}
		poly.LineStyle.Width = 0
		p.Add(poly)
	}

	p.Add(&plotter.Histogram{
		Bins:      bins,
		FillColor: color.NRGBA{R: 0x3b, G: 0x6e, B: 0x8f, A: 0xff},
		LineStyle: plotter.DefaultLineStyle,
	})

	if opts.Mean != nil {
		line, err := plotter.NewLine(plotter.XYs{
			{X: *opts.Mean, Y: 0},
			{X: *opts.Mean, Y: ymax},
		})
		if err != nil {
			return fmt.Errorf("render: mean marker: %w", err)
		}
		line.Color = color.NRGBA{R: 0xd6, G: 0x2f, B: 0x2f, A: 0xff}
		line.Width = vg.Points(1.5)
		p.Add(line)
	}

	if opts.XMin != nil {
		p.X.Min = *opts.XMin
	}
	if opts.XMax != nil {
		p.X.Max = *opts.XMax
	}

	if err := p.Save(opts.Width, opts.Height, opts.OutPath); err != nil {
		return fmt.Errorf("render: save %s: %w", opts.OutPath, err)
	}
	return nil
}
