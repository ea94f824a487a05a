package stats

import (
	"math"
	"sort"

	"github.com/classtools/classtat/dataset"
)

// BoundStatus reports how a sigma interval bound was obtained.
type BoundStatus int

const (
	// BoundExact means the bound was read directly off the sorted samples.
	BoundExact BoundStatus = iota

	// BoundApprox means the containment index ran one step out of range and
	// the bound was approximated from the opposite flank.
	BoundApprox

	// BoundUndefined means the containment index ran too far out of range
	// and the bound is NaN.
	BoundUndefined
)

// String renders the status for logs and tables.
func (s BoundStatus) String() string {
	switch s {
	case BoundExact:
		return "exact"
	case BoundApprox:
		return "approx"
	case BoundUndefined:
		return "undefined"
	default:
		return "unknown"
	}
}

// SigmaInterval is an asymmetric 68%-containment interval around a row mean.
// Both magnitudes are non-negative offsets from the mean, NaN when undefined.
type SigmaInterval struct {
	Lower       float64
	Upper       float64
	LowerStatus BoundStatus
	UpperStatus BoundStatus
}

// Exact reports whether both bounds were read directly off the samples.
func (iv SigmaInterval) Exact() bool {
	return iv.LowerStatus == BoundExact && iv.UpperStatus == BoundExact
}

// Sigma computes the 68%-containment interval of one row around mean.
//
// Description:
//
//	The row is copied and sorted ascending. With n samples and
//	k = floor(0.34*n + 0.5), the sorted index m closest to the mean (first
//	occurrence on ties) anchors the interval: the upper magnitude is
//	|sorted[m+k] - mean| and the lower |mean - sorted[m-k]|. An index one
//	step out of range degrades to a flagged approximation: the upper bound
//	falls back to sorted[m+k-1], the lower to the opposite flank at
//	sorted[m+k+1]. Indices further out of range yield NaN. This boundary
//	policy is deliberate; do not tidy it up.
//
// Complexity: O(n log n).
//
// Errors: ErrNoData when the row is empty.
func Sigma(row []float64, mean float64) (SigmaInterval, error) {
	n := len(row)
	if n == 0 {
		return SigmaInterval{}, ErrNoData
	}
	sorted := append([]float64(nil), row...)
	sort.Float64s(sorted)

	k := int(0.34*float64(n) + 0.5)
	m := 0
	best := math.Abs(sorted[0] - mean)
	for i := 1; i < n; i++ {
		if d := math.Abs(sorted[i] - mean); d < best {
			best, m = d, i
		}
	}

	var iv SigmaInterval
	switch hi := m + k; {
	case hi < n:
		iv.Upper = math.Abs(sorted[hi] - mean)
		iv.UpperStatus = BoundExact
	case hi == n:
		iv.Upper = math.Abs(sorted[hi-1] - mean)
		iv.UpperStatus = BoundApprox
	default:
		iv.Upper = math.NaN()
		iv.UpperStatus = BoundUndefined
	}

	switch lo := m - k; {
	case lo >= 0:
		iv.Lower = math.Abs(mean - sorted[lo])
		iv.LowerStatus = BoundExact
	case lo == -1:
		if alt := m + k + 1; alt < n {
			iv.Lower = math.Abs(sorted[alt] - mean)
			iv.LowerStatus = BoundApprox
		} else {
			iv.Lower = math.NaN()
			iv.LowerStatus = BoundUndefined
		}
	default:
		iv.Lower = math.NaN()
		iv.LowerStatus = BoundUndefined
	}
	return iv, nil
}

// SigmaIntervals computes the containment interval of every row against its
// precomputed mean. Degraded bounds are flagged per row, never an error.
// It returns ErrShapeMismatch when means is not index-aligned with the rows.
func SigmaIntervals(ds *dataset.Dataset, means []float64) ([]SigmaInterval, error) {
	if len(means) != ds.Bins() {
		return nil, ErrShapeMismatch
	}
	intervals := make([]SigmaInterval, ds.Bins())
	for i := range intervals {
		row, err := ds.Row(i)
		if err != nil {
			return nil, err
		}
		iv, err := Sigma(row, means[i])
		if err != nil {
			return nil, err
		}
		intervals[i] = iv
	}
	return intervals, nil
}
