// Package classhdr recovers the column catalogue of a CLASS output file.
//
// CLASS writes a contiguous block of comment lines ahead of its numeric
// columns; the last comment line names every column as "N:variable":
//
//	# Some background quantities as a function of conformal time
//	#   1:tau    2:z    3:Hz
//	0.1 0.2 0.3
//	...
//
// ListVariables parses that line into ordered variable names and Fprint
// renders them as an (index, name) listing. A file whose leading comment
// block never matches the "digits followed by colon" pattern is malformed
// and reported as ErrNoHeader, never as an empty catalogue.
package classhdr
