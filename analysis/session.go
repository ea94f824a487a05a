package analysis

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/classtools/classtat/dataset"
	"github.com/classtools/classtat/histogram"
	"github.com/classtools/classtat/stats"
)

// ErrNoDataset reports a session constructed without a dataset.
var ErrNoDataset = errors.New("analysis: nil dataset")

// Session memoizes derived results over one dataset. The zero value is not
// usable; construct with New.
type Session struct {
	ds  *dataset.Dataset
	log zerolog.Logger

	spec      histogram.BinSpec
	hists     []histogram.Histogram
	reflected bool

	means  []float64
	sigmas []stats.SigmaInterval
	cov    *mat.Dense
}

// New wraps a dataset in a fresh session with no derived state.
func New(ds *dataset.Dataset, opts ...Option) (*Session, error) {
	if ds == nil {
		return nil, ErrNoDataset
	}
	cfg := gatherOptions(opts...)
	cfg.log.Debug().
		Int("bins", ds.Bins()).
		Int("samples", ds.Samples()).
		Msg("session ready")
	return &Session{ds: ds, log: cfg.log}, nil
}

// Dataset returns the wrapped dataset.
func (s *Session) Dataset() *dataset.Dataset { return s.ds }

// Spec returns the bin spec behind the stored histograms. Before the first
// Histograms call this is the automatic rule.
func (s *Session) Spec() histogram.BinSpec { return s.spec }

// Reflected reports whether the stored histograms have been folded.
func (s *Session) Reflected() bool { return s.reflected }

// Histograms returns one raw histogram per bin row under the given spec.
// The stored set is reused when the spec matches; a different spec, or a
// previously folded set, triggers a recompute that replaces it.
func (s *Session) Histograms(spec histogram.BinSpec) ([]histogram.Histogram, error) {
	if s.hists != nil && !s.reflected && s.spec.Equal(spec) {
		return s.hists, nil
	}
	hists, err := histogram.ComputeAll(s.ds, spec)
	if err != nil {
		return nil, err
	}
	s.hists = hists
	s.spec = spec
	s.reflected = false
	s.log.Debug().
		Stringer("spec", spec).
		Int("bins", len(hists)).
		Msg("histograms computed")
	return hists, nil
}

// ReflectHistograms folds every stored histogram about its lowest edge and
// shifts the fold to center, replacing the stored set with the folded one.
// Histograms are computed under the current spec first when absent. Folding
// an already folded set folds it again.
func (s *Session) ReflectHistograms(center float64) ([]histogram.Histogram, error) {
	if s.hists == nil {
		if _, err := s.Histograms(s.spec); err != nil {
			return nil, err
		}
	}
	folded := make([]histogram.Histogram, len(s.hists))
	for i, h := range s.hists {
		f, err := histogram.Reflect(h, center)
		if err != nil {
			return nil, fmt.Errorf("bin %d: %w", i, err)
		}
		folded[i] = f
	}
	s.hists = folded
	s.reflected = true
	s.log.Debug().
		Float64("center", center).
		Int("bins", len(folded)).
		Msg("histograms folded")
	return folded, nil
}

// Means returns the per-row means, computing them on first use. The slice
// is shared with the session; treat it as read-only.
func (s *Session) Means() []float64 {
	if s.means == nil {
		s.means = stats.Means(s.ds)
	}
	return s.means
}

// SigmaIntervals returns the per-row 68%-containment intervals, computing
// means first when absent. Degraded bounds are logged once, on first
// computation, and flagged on the returned intervals.
func (s *Session) SigmaIntervals() ([]stats.SigmaInterval, error) {
	if s.sigmas != nil {
		return s.sigmas, nil
	}
	intervals, err := stats.SigmaIntervals(s.ds, s.Means())
	if err != nil {
		return nil, err
	}
	for i, iv := range intervals {
		if iv.Exact() {
			continue
		}
		s.log.Warn().
			Int("bin", i).
			Stringer("lower", iv.LowerStatus).
			Stringer("upper", iv.UpperStatus).
			Msg("sigma interval degraded")
	}
	s.sigmas = intervals
	return intervals, nil
}

// Covariance returns the full covariance matrix, replacing any partially
// patched container. A complete stored matrix is reused.
func (s *Session) Covariance() (*mat.Dense, error) {
	if s.cov != nil && !stats.HasNaN(s.cov) {
		return s.cov, nil
	}
	cov, err := stats.Covariance(s.ds)
	if err != nil {
		return nil, err
	}
	s.cov = cov
	s.log.Debug().Msg("covariance computed")
	return cov, nil
}

// CovarianceBin patches the target row of the covariance container and
// returns the container. Means are computed first when absent and the
// container is initialized to NaN placeholders when absent; other rows are
// never touched.
func (s *Session) CovarianceBin(target int) (*mat.Dense, error) {
	if s.cov == nil {
		s.cov = stats.NaNMatrix(s.ds.Bins())
		s.log.Debug().Int("bins", s.ds.Bins()).Msg("covariance container initialized")
	}
	if err := stats.CovarianceRow(s.ds, target, s.Means(), s.cov); err != nil {
		return nil, err
	}
	return s.cov, nil
}

// Correlation normalizes the covariance matrix into a correlation matrix.
// A missing or NaN-carrying container is recomputed in full first, so a
// row-patched container never leaks placeholders into the correlations.
func (s *Session) Correlation() (*mat.Dense, error) {
	if s.cov == nil || stats.HasNaN(s.cov) {
		s.log.Debug().Msg("covariance missing or dirty, recomputing")
		cov, err := stats.Covariance(s.ds)
		if err != nil {
			return nil, err
		}
		s.cov = cov
	}
	return stats.Correlation(s.cov)
}

// Reset drops every derived result, keeping the dataset.
func (s *Session) Reset() {
	s.spec = histogram.BinSpec{}
	s.hists = nil
	s.reflected = false
	s.means = nil
	s.sigmas = nil
	s.cov = nil
	s.log.Debug().Msg("session reset")
}
