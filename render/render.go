package render

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	// ErrNoOutput reports a plot request without an output path.
	ErrNoOutput = errors.New("render: empty output path")

	// ErrEmptyPlot reports a plot request with nothing to draw.
	ErrEmptyPlot = errors.New("render: nothing to draw")

	// ErrShapeMismatch reports inputs whose dimensions disagree.
	ErrShapeMismatch = errors.New("render: dimension mismatch")
)

// Default plot dimensions.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 6 * vg.Inch

	// colorBarHeight is the strip reserved for a horizontal colorbar.
	colorBarHeight = vg.Inch
)

// Band is a shaded horizontal interval, typically mean-lower..mean+upper.
type Band struct {
	Lo float64
	Hi float64
}

// binTicker marks every step-th bin index on an axis, labelled with the
// bin's value when labels are present and with the index otherwise.
type binTicker struct {
	labels []float64
	step   int
}

func (t binTicker) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for v := int(math.Ceil(min)); v <= int(math.Floor(max)); v++ {
		if v%t.step != 0 {
			continue
		}
		label := strconv.Itoa(v)
		if v >= 0 && v < len(t.labels) {
			label = strconv.FormatFloat(t.labels[v], 'g', -1, 64)
		}
		ticks = append(ticks, plot.Tick{Value: float64(v), Label: label})
	}
	return ticks
}

// matrixGrid adapts a dense matrix to the heatmap grid interface, with
// column index as x and row index as y.
type matrixGrid struct {
	m *mat.Dense
}

func (g matrixGrid) Dims() (c, r int) {
	rr, cc := g.m.Dims()
	return cc, rr
}

func (g matrixGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }

// saveWithColorBar draws main above a horizontal colorbar for cm and writes
// the combined canvas as a PNG.
func saveWithColorBar(main *plot.Plot, cm palette.ColorMap, label string, width, height vg.Length, path string) error {
	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm})
	bar.HideY()
	bar.X.Label.Text = label
	bar.X.Padding = 0

	img := vgimg.New(width, height)
	dc := draw.New(img)

	barH := colorBarHeight
	if barH > height/3 {
		barH = height / 3
	}
	main.Draw(draw.Crop(dc, 0, 0, barH, 0))
	bar.Draw(draw.Crop(dc, 0, 0, 0, barH-height))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", path, err)
	}
	return nil
}
