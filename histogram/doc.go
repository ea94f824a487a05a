// Package histogram builds per-bin frequency histograms of sampled data.
//
// A histogram pairs integer counts with one more edge than counts. Bins are
// half-open [e_i, e_i+1) with the last bin closed on the right, and samples
// outside the edge range are not counted. Edges come from a BinSpec:
//
//   - Edges(e...) — explicit, strictly increasing edge values;
//   - Count(n)    — n equal-width bins spanning the sample range;
//   - Auto()      — width from the smaller of the Freedman–Diaconis and
//     Sturges estimators, Sturges alone when the interquartile range
//     collapses to zero.
//
// Rows with fewer than two distinct values cannot span a range; computed
// rules then yield one bin over [v-0.5, v+0.5] holding every sample, so a
// constant row is never an error.
//
// Reflect folds a one-sided histogram into a symmetric two-sided view by
// mirroring counts and edges about the lowest edge and re-centering.
package histogram
