package stats

import (
	moremath "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/classtools/classtat/dataset"
)

// Means returns the arithmetic mean of every bin row, index-aligned with the
// dataset's rows.
func Means(ds *dataset.Dataset) []float64 {
	means := make([]float64, ds.Bins())
	for i := range means {
		row, _ := ds.Row(i) // loop index is always in range
		means[i] = stat.Mean(row, nil)
	}
	return means
}

// Desc summarizes one row of samples.
type Desc struct {
	Samples int
	Mean    float64
	Median  float64
	StdDev  float64
}

// Describe returns the sample count, mean, median and n-1 normalized
// standard deviation of one row. It returns ErrNoData for an empty row.
func Describe(row []float64) (Desc, error) {
	if len(row) == 0 {
		return Desc{}, ErrNoData
	}
	sample := moremath.Sample{Xs: append([]float64(nil), row...)}
	sample.Sort()
	return Desc{
		Samples: len(row),
		Mean:    stat.Mean(row, nil),
		Median:  sample.Quantile(0.5),
		StdDev:  stat.StdDev(row, nil),
	}, nil
}
