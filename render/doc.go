// Package render persists computed results as PNG plots.
//
// It is a pure visualization sink over the numeric packages: callers hand
// it fully computed histograms or matrices together with display options,
// and nothing computational flows back. Three views are offered:
//
//   - HistogramPlot: one histogram as filled bars, optionally decorated
//     with a mean line and a shaded containment band;
//   - Evolution: every bin row's histogram as a colored scatter against
//     the row labels, shaded by log10 of the sample percentage, with a
//     horizontal colorbar;
//   - CorrelationMatrix: a heatmap over a diverging palette pinned to
//     [-1, 1], with subsampled integer ticks.
//
// Log-scaled axes silently drop non-positive points, since they cannot be
// placed on such an axis. NaN matrix cells are left blank.
package render
