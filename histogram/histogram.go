package histogram

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/classtools/classtat/dataset"
)

// Histogram holds integer bin counts and the edges that delimit them.
// Edges always has exactly one more entry than Counts and ascends strictly.
type Histogram struct {
	Counts []int
	Edges  []float64
}

// Bins returns the number of bins.
func (h Histogram) Bins() int { return len(h.Counts) }

// Total returns the number of counted samples.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Centers returns the midpoint of every bin.
func (h Histogram) Centers() []float64 {
	centers := make([]float64, len(h.Counts))
	for i := range centers {
		centers[i] = h.Edges[i] + 0.5*(h.Edges[i+1]-h.Edges[i])
	}
	return centers
}

// Widths returns the width of every bin.
func (h Histogram) Widths() []float64 {
	widths := make([]float64, len(h.Counts))
	for i := range widths {
		widths[i] = h.Edges[i+1] - h.Edges[i]
	}
	return widths
}

// Frequencies returns counts normalized by the total count, so the values
// sum to one. A histogram with zero total yields all-zero frequencies.
func (h Histogram) Frequencies() []float64 {
	freqs := make([]float64, len(h.Counts))
	total := h.Total()
	if total == 0 {
		return freqs
	}
	for i, c := range h.Counts {
		freqs[i] = float64(c) / float64(total)
	}
	return freqs
}

// Compute bins one sample row under the given spec.
//
// Description:
//
//	Edges are taken verbatim from an explicit spec, or derived from the
//	sample range for computed rules. Each sample lands in the half-open bin
//	[e_i, e_i+1); the last bin also includes its right edge. Samples outside
//	the edge range are dropped. A row with fewer than two distinct values
//	under a computed rule yields the single bin [v-0.5, v+0.5].
//
// Complexity: O(n log n) for the automatic rule, O(n log m) otherwise,
// with n samples and m bins.
//
// Errors:
//   - ErrNoData when row is empty;
//   - ErrBadCount, ErrFewEdges, ErrUnsortedEdges for malformed specs;
//   - ErrNonFinite when a computed rule meets NaN or infinite samples.
func Compute(row []float64, spec BinSpec) (Histogram, error) {
	if len(row) == 0 {
		return Histogram{}, ErrNoData
	}
	if err := spec.validate(); err != nil {
		return Histogram{}, err
	}
	edges, err := spec.resolve(row)
	if err != nil {
		return Histogram{}, err
	}
	return Histogram{Counts: countInto(row, edges), Edges: edges}, nil
}

// ComputeAll bins every row of the dataset under one shared spec.
// Row errors are wrapped with the offending bin index.
func ComputeAll(ds *dataset.Dataset, spec BinSpec) ([]Histogram, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	hists := make([]Histogram, ds.Bins())
	for i := range hists {
		row, err := ds.Row(i)
		if err != nil {
			return nil, err
		}
		h, err := Compute(row, spec)
		if err != nil {
			return nil, fmt.Errorf("bin %d: %w", i, err)
		}
		hists[i] = h
	}
	return hists, nil
}

// resolve turns the spec into concrete edges for one row.
func (s BinSpec) resolve(row []float64) ([]float64, error) {
	if s.kind == kindEdges {
		return append([]float64(nil), s.edges...), nil
	}
	for _, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}
	lo, hi := floats.Min(row), floats.Max(row)
	if lo == hi {
		// Degenerate row: one bin around the single value.
		return []float64{lo - 0.5, hi + 0.5}, nil
	}
	nbins := s.count
	if s.kind == kindAuto {
		nbins = int(math.Ceil((hi - lo) / autoWidth(row, hi-lo)))
	}
	edges := make([]float64, nbins+1)
	floats.Span(edges, lo, hi)
	return edges, nil
}

// autoWidth picks the smaller of the Freedman-Diaconis and Sturges bin
// widths, falling back to Sturges when the interquartile range is zero.
func autoWidth(row []float64, span float64) float64 {
	n := float64(len(row))
	sturges := span / (math.Log2(n) + 1)

	sample := stats.Sample{Xs: append([]float64(nil), row...)}
	sample.Sort()
	iqr := sample.Quantile(0.75) - sample.Quantile(0.25)
	if fd := 2 * iqr / math.Cbrt(n); fd > 0 && fd < sturges {
		return fd
	}
	return sturges
}

// countInto tallies row values into the bins delimited by edges.
func countInto(row, edges []float64) []int {
	nbins := len(edges) - 1
	counts := make([]int, nbins)
	last := edges[nbins]
	for _, v := range row {
		if math.IsNaN(v) || v < edges[0] || v > last {
			continue
		}
		if v == last {
			// The last bin is closed on the right.
			counts[nbins-1]++
			continue
		}
		i := sort.SearchFloat64s(edges, v)
		if edges[i] == v {
			// v sits exactly on a lower-inclusive edge.
			counts[i]++
		} else {
			counts[i-1]++
		}
	}
	return counts
}
