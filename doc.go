// Package classtat turns raw CLASS chain output into numbers you can
// quote: per-bin histograms, asymmetric 68% intervals, covariance and
// correlation matrices, and the plots to go with them.
//
// 🔭 What is classtat?
//
//	A toolkit for the two text formats a CLASS post-processing run leaves
//	behind:
//		• Header catalogues: "1:z 2:H [1/Mpc] ..." comment lines naming
//		  the columns of an output file
//		• Binned chains: a whitespace matrix, one sampled variable per
//		  column, one chain step per line, with optional bin labels
//
// ✨ What does it compute?
//
//   - Histograms per bin row: automatic, fixed-count or explicit edges,
//     with an optional symmetric fold about the lowest edge
//   - Means and empirical 68%-containment intervals, read off the sorted
//     samples with deliberate, flagged edge-case fallbacks
//   - Covariance, either the full matrix or one row at a time, and the
//     correlation matrix derived from it
//   - PNG plots: decorated histograms, a per-label evolution scatter,
//     and a correlation heatmap
//
// Everything is organized under small subpackages:
//
//	classhdr/  — header catalogue listing
//	dataset/   — binned chain parsing, transpose-on-load
//	histogram/ — bin rules, counting, reflection
//	stats/     — means, sigma intervals, covariance, correlation
//	analysis/  — the memoizing session gluing the above together
//	render/    — PNG plots over gonum/plot
//	config/    — YAML pipeline configuration
//	cmd/       — the classtat CLI
//
//	go get github.com/classtools/classtat
package classtat
