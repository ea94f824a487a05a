package histogram

import "gonum.org/v1/gonum/floats"

// Reflect mirrors h about its lowest edge and shifts the doubled histogram
// so that the fold sits at center.
//
// Description:
//
//	The mirrored half repeats the counts in reverse and negates the edge
//	offsets from the lowest edge, so a histogram with n bins folds into one
//	with 2n bins whose edge list stays strictly increasing. With center 0
//	the fold lands at zero; any other center translates the whole edge
//	list so the fold lands there instead.
//
// Complexity: O(n) with n bins.
//
// Errors: ErrBadShape when h does not carry one more edge than counts,
// or has no bins at all.
func Reflect(h Histogram, center float64) (Histogram, error) {
	n := len(h.Counts)
	if n == 0 || len(h.Edges) != n+1 {
		return Histogram{}, ErrBadShape
	}
	x0 := h.Edges[0]

	edges := make([]float64, 0, 2*n+1)
	for i := n; i >= 1; i-- {
		edges = append(edges, 2*x0-h.Edges[i])
	}
	edges = append(edges, h.Edges...)
	floats.AddConst(center-x0, edges)

	counts := make([]int, 0, 2*n)
	for i := n - 1; i >= 0; i-- {
		counts = append(counts, h.Counts[i])
	}
	counts = append(counts, h.Counts...)

	return Histogram{Counts: counts, Edges: edges}, nil
}
