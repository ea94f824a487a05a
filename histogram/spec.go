package histogram

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData reports an empty sample row.
	ErrNoData = errors.New("histogram: empty sample row")

	// ErrFewEdges reports an explicit edge list with fewer than two entries.
	ErrFewEdges = errors.New("histogram: need at least two edges")

	// ErrUnsortedEdges reports explicit edges that are not strictly increasing.
	ErrUnsortedEdges = errors.New("histogram: edges must be strictly increasing")

	// ErrBadCount reports a requested bin count below one.
	ErrBadCount = errors.New("histogram: bin count must be positive")

	// ErrNonFinite reports NaN or infinite samples under a computed bin rule,
	// which needs a finite sample range to place its edges.
	ErrNonFinite = errors.New("histogram: non-finite samples need explicit edges")

	// ErrBadShape reports a histogram whose edge count is not one more than
	// its bin count.
	ErrBadShape = errors.New("histogram: counts and edges lengths disagree")
)

// binKind discriminates how a BinSpec derives its edges.
type binKind int

const (
	kindAuto binKind = iota
	kindCount
	kindEdges
)

// BinSpec describes how histogram edges are derived from a sample row.
// The zero value is the automatic rule; prefer the Auto, Count and Edges
// constructors.
type BinSpec struct {
	kind  binKind
	count int
	edges []float64
}

// Auto returns a BinSpec that estimates a bin width from the data.
func Auto() BinSpec { return BinSpec{kind: kindAuto} }

// Count returns a BinSpec with n equal-width bins over the sample range.
func Count(n int) BinSpec { return BinSpec{kind: kindCount, count: n} }

// Edges returns a BinSpec with explicit, strictly increasing edges.
// The edge values are copied.
func Edges(edges ...float64) BinSpec {
	return BinSpec{kind: kindEdges, edges: append([]float64(nil), edges...)}
}

// Equal reports whether two specs derive identical edges for any row.
func (s BinSpec) Equal(o BinSpec) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case kindCount:
		return s.count == o.count
	case kindEdges:
		if len(s.edges) != len(o.edges) {
			return false
		}
		for i, e := range s.edges {
			if e != o.edges[i] {
				return false
			}
		}
	}
	return true
}

// String renders the spec for logs and error context.
func (s BinSpec) String() string {
	switch s.kind {
	case kindCount:
		return fmt.Sprintf("count(%d)", s.count)
	case kindEdges:
		return fmt.Sprintf("edges(%d)", len(s.edges))
	default:
		return "auto"
	}
}

// validate checks the spec's own parameters, independent of any row.
func (s BinSpec) validate() error {
	switch s.kind {
	case kindCount:
		if s.count < 1 {
			return ErrBadCount
		}
	case kindEdges:
		if len(s.edges) < 2 {
			return ErrFewEdges
		}
		for i := 1; i < len(s.edges); i++ {
			if s.edges[i] <= s.edges[i-1] {
				return ErrUnsortedEdges
			}
		}
	}
	return nil
}
