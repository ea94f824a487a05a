package dataset

import "errors"

var (
	// ErrNoData indicates the source contained no numeric rows at all.
	ErrNoData = errors.New("dataset: no numeric data found")

	// ErrRaggedMatrix indicates inconsistent column counts across data lines.
	ErrRaggedMatrix = errors.New("dataset: inconsistent row lengths")

	// ErrBadValue indicates a field that does not parse as a float64.
	ErrBadValue = errors.New("dataset: malformed numeric value")

	// ErrNoLabels indicates the bin-label line is missing or not a comment.
	ErrNoLabels = errors.New("dataset: bin-label line missing or not a comment")

	// ErrLabelMismatch indicates the label count differs from the bin count.
	ErrLabelMismatch = errors.New("dataset: bin-label count does not match bin count")

	// ErrBinRange indicates a bin index outside [0, Bins()).
	ErrBinRange = errors.New("dataset: bin index out of range")
)

// Dataset is an immutable bins × samples matrix in row-major storage.
// Each row holds every sample observed for one bin of the binning variable.
//
// Invariants (enforced on construction):
//   - at least one bin and at least one sample;
//   - all rows have the same sample count;
//   - when labels are present, exactly one label per bin.
type Dataset struct {
	data    []float64 // row-major backing store, len == bins*samples
	bins    int
	samples int
	labels  []float64 // nil when the source carried no label line
}

// New builds a Dataset from per-bin rows, copying them into contiguous
// storage. labels may be nil; when non-nil its length must equal len(rows).
//
// Errors: ErrNoData on an empty matrix or empty rows, ErrRaggedMatrix on
// unequal row lengths, ErrLabelMismatch on a label/bin count mismatch.
func New(rows [][]float64, labels []float64) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	samples := len(rows[0])
	if samples == 0 {
		return nil, ErrNoData
	}
	for _, row := range rows {
		if len(row) != samples {
			return nil, ErrRaggedMatrix
		}
	}
	if labels != nil && len(labels) != len(rows) {
		return nil, ErrLabelMismatch
	}

	bins := len(rows)
	data := make([]float64, 0, bins*samples)
	for _, row := range rows {
		data = append(data, row...)
	}

	var lbl []float64
	if labels != nil {
		lbl = append(lbl, labels...)
	}

	return &Dataset{data: data, bins: bins, samples: samples, labels: lbl}, nil
}

// Bins returns the number of bins (dataset rows).
func (d *Dataset) Bins() int { return d.bins }

// Samples returns the number of samples per bin (dataset columns).
func (d *Dataset) Samples() int { return d.samples }

// Row returns the samples of bin i as a view into the backing store.
// The slice must not be modified by the caller.
func (d *Dataset) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.bins {
		return nil, ErrBinRange
	}

	return d.data[i*d.samples : (i+1)*d.samples], nil
}

// HasLabels reports whether the source carried a bin-label line.
func (d *Dataset) HasLabels() bool { return d.labels != nil }

// Label returns the label of bin i, falling back to float64(i) when the
// source carried no labels.
func (d *Dataset) Label(i int) (float64, error) {
	if i < 0 || i >= d.bins {
		return 0, ErrBinRange
	}
	if d.labels == nil {
		return float64(i), nil
	}

	return d.labels[i], nil
}

// Labels returns one label per bin as a fresh slice, substituting bin
// indices when the source carried no labels.
func (d *Dataset) Labels() []float64 {
	out := make([]float64, d.bins)
	for i := range out {
		if d.labels == nil {
			out[i] = float64(i)
		} else {
			out[i] = d.labels[i]
		}
	}

	return out
}
