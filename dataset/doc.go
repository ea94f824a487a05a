// Package dataset loads whitespace-delimited numeric matrices of binned
// simulation output and exposes them as row-per-bin datasets.
//
// On disk the matrix holds one sample per line and one bin per column; the
// loader transposes it so that every dataset row collects all samples of one
// bin. The second line of the file may carry a comment-prefixed list of bin
// labels (for example redshift values), one per column:
//
//	# w(z) sampled chains
//	# 0.10 0.35 0.60
//	0.981 0.973 0.969
//	1.002 0.998 0.991
//	...
//
// Comment lines (leading '#') and blank lines are ignored wherever they
// appear, and text after a '#' on a data line is discarded. All data lines
// must carry the same number of columns; a ragged matrix is a structural
// error, never silently truncated.
//
// Datasets are immutable after construction and are meant to be owned by a
// single analysis session. Row returns a view into the backing store, not a
// copy; callers must not modify it.
package dataset
