package stats

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/classtools/classtat/dataset"
)

// Covariance computes the full sample covariance matrix of the dataset,
// bins x bins, with rows as variables and chain samples as observations.
//
// Errors: ErrFewSamples when the dataset has fewer than two samples per row.
func Covariance(ds *dataset.Dataset) (*mat.Dense, error) {
	if ds.Samples() < 2 {
		return nil, ErrFewSamples
	}
	obs := mat.NewDense(ds.Samples(), ds.Bins(), nil)
	for i := 0; i < ds.Bins(); i++ {
		row, err := ds.Row(i)
		if err != nil {
			return nil, err
		}
		obs.SetCol(i, row)
	}
	var sym mat.SymDense
	stat.CovarianceMatrix(&sym, obs, nil)
	return mat.DenseCopyOf(&sym), nil
}

// NaNMatrix returns an n x n container filled with NaN placeholders, ready
// for CovarianceRow to patch one row at a time.
func NaNMatrix(n int) *mat.Dense {
	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.NaN()
	}
	return mat.NewDense(n, n, data)
}

// CovarianceRow computes the cross-covariances of one target row against
// every row and writes them into cov's target row only. Other entries,
// including the symmetric column, are left untouched, so a NaN-initialized
// container records exactly which rows have been paid for.
//
// Errors:
//   - dataset.ErrBinRange when target is out of range;
//   - ErrNoCovariance when cov is nil;
//   - ErrShapeMismatch when means or cov are not sized to the bin count;
//   - ErrFewSamples when the dataset has fewer than two samples per row.
func CovarianceRow(ds *dataset.Dataset, target int, means []float64, cov *mat.Dense) error {
	tRow, err := ds.Row(target)
	if err != nil {
		return err
	}
	if cov == nil {
		return ErrNoCovariance
	}
	nbins := ds.Bins()
	if r, c := cov.Dims(); len(means) != nbins || r != nbins || c != nbins {
		return ErrShapeMismatch
	}
	if ds.Samples() < 2 {
		return ErrFewSamples
	}

	inv := 1 / float64(ds.Samples()-1)
	for j := 0; j < nbins; j++ {
		other, err := ds.Row(j)
		if err != nil {
			return err
		}
		var acc float64
		for s, v := range tRow {
			acc += (v - means[target]) * (other[s] - means[j])
		}
		cov.Set(target, j, acc*inv)
	}
	return nil
}

// Correlation normalizes a covariance matrix by the outer product of its
// diagonal standard deviations. Zero-variance diagonals produce NaN entries
// and NaN inputs propagate; the caller decides whether that warrants a
// recompute.
//
// Errors: ErrNoCovariance when cov is nil, ErrShapeMismatch when it is not
// square or is empty.
func Correlation(cov *mat.Dense) (*mat.Dense, error) {
	if cov == nil {
		return nil, ErrNoCovariance
	}
	n, c := cov.Dims()
	if n != c || n == 0 {
		return nil, ErrShapeMismatch
	}
	corr := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			denom := math.Sqrt(cov.At(i, i) * cov.At(j, j))
			corr.Set(i, j, cov.At(i, j)/denom)
		}
	}
	return corr, nil
}

// HasNaN reports whether any entry of m is NaN.
func HasNaN(m mat.Matrix) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.IsNaN(m.At(i, j)) {
				return true
			}
		}
	}
	return false
}
