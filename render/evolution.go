package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/classtools/classtat/histogram"
)

// EvolutionOptions controls the per-label scatter of all bin histograms.
type EvolutionOptions struct {
	OutPath string
	Title   string
	XLabel  string
	YLabel  string

	// LogX and LogY switch the axes to log scale; points that cannot be
	// placed on a log axis are dropped.
	LogX bool
	LogY bool

	Width  vg.Length
	Height vg.Length
}

func (o EvolutionOptions) withDefaults() EvolutionOptions {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// Evolution writes one scatter point per occupied histogram bin: x is the
// row label, y the bin's lower edge, and the shade log10 of the percentage
// of the row's samples held by that bin. Empty bins are omitted. A
// horizontal colorbar explains the shading.
//
// Errors: ErrNoOutput without an output path, ErrShapeMismatch when labels
// and histograms are not aligned, histogram.ErrBadShape for a malformed
// histogram, ErrEmptyPlot when no point survives filtering.
func Evolution(hists []histogram.Histogram, labels []float64, opts EvolutionOptions) error {
	if opts.OutPath == "" {
		return ErrNoOutput
	}
	if len(hists) == 0 {
		return ErrEmptyPlot
	}
	if len(labels) != len(hists) {
		return ErrShapeMismatch
	}
	opts = opts.withDefaults()

	var (
		xys    plotter.XYs
		shades []float64
	)
	vmin, vmax := math.Inf(1), math.Inf(-1)
	for i, h := range hists {
		if len(h.Edges) != h.Bins()+1 {
			return histogram.ErrBadShape
		}
		total := h.Total()
		if total == 0 {
			continue
		}
		for j, c := range h.Counts {
			if c == 0 {
				continue
			}
			x, y := labels[i], h.Edges[j]
			if (opts.LogX && x <= 0) || (opts.LogY && y <= 0) {
				continue
			}
			v := math.Log10(100 * float64(c) / float64(total))
			xys = append(xys, plotter.XY{X: x, Y: y})
			shades = append(shades, v)
			vmin = math.Min(vmin, v)
			vmax = math.Max(vmax, v)
		}
	}
	if len(xys) == 0 {
		return ErrEmptyPlot
	}
	if vmax <= vmin {
		// One distinct shade still needs a nonempty color range.
		vmax = vmin + 1
	}

	cm := moreland.ExtendedBlackBody()
	cm.SetMin(vmin)
	cm.SetMax(vmax)

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("render: scatter: %w", err)
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		col, err := cm.At(shades[i])
		if err != nil {
			col = color.Black
		}
		return draw.GlyphStyle{Color: col, Radius: vg.Points(1.5), Shape: draw.BoxGlyph{}}
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	if opts.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if opts.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(sc)

	return saveWithColorBar(p, cm, "% data", opts.Width, opts.Height, opts.OutPath)
}
