// Package stats computes summary statistics over binned chain datasets.
//
// Every bin row is treated as one variable and every chain sample as one
// observation of it. The package offers four layers:
//
//   - Means and Describe: per-row moments and quantiles;
//   - Sigma: an asymmetric 68%-containment interval around the row mean,
//     read off the sorted samples rather than fitted to a distribution;
//   - Covariance and CovarianceRow: the full sample covariance matrix, or a
//     single row of it patched into a shared container;
//   - Correlation: covariance normalized by the outer product of standard
//     deviations.
//
// Sigma bounds near the sorted-array ends degrade instead of failing: a
// bound one step out of range is approximated from the opposite flank and
// flagged, a bound further out is reported as NaN. Zero-variance rows yield
// NaN correlation entries, and NaN propagates rather than being masked.
// All divisors use n-1 sample normalization.
package stats
