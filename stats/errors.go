package stats

import "errors"

var (
	// ErrNoData reports an empty sample row.
	ErrNoData = errors.New("stats: empty sample row")

	// ErrFewSamples reports a dataset with fewer than two samples per row,
	// too few for n-1 normalized covariance.
	ErrFewSamples = errors.New("stats: need at least two samples per row")

	// ErrShapeMismatch reports inputs whose dimensions disagree.
	ErrShapeMismatch = errors.New("stats: dimension mismatch")

	// ErrNoCovariance reports a missing covariance container.
	ErrNoCovariance = errors.New("stats: nil covariance matrix")
)
