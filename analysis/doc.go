// Package analysis owns the stateful session tying a dataset to its derived
// results.
//
// A Session wraps one immutable Dataset and memoizes what has been computed
// from it: histograms for the current bin spec, per-row means, sigma
// intervals, and the covariance matrix. Results are computed on first use
// and reused until something invalidates them. A new bin spec replaces the
// stored histograms, folding replaces them with their reflected form, and
// Reset drops every derived result while keeping the dataset.
//
// The covariance container follows a pay-per-row model: CovarianceBin
// patches a single row into a NaN-initialized matrix, and Correlation
// recomputes the full matrix whenever the container is missing or still
// carries NaN placeholders.
//
// Sessions are not safe for concurrent use.
package analysis
