package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtools/classtat/dataset"
)

// TestNew_EmptyMatrix verifies that an empty row set and empty rows both
// report ErrNoData.
func TestNew_EmptyMatrix(t *testing.T) {
	_, err := dataset.New(nil, nil)
	assert.ErrorIs(t, err, dataset.ErrNoData, "no rows must error")

	_, err = dataset.New([][]float64{{}}, nil)
	assert.ErrorIs(t, err, dataset.ErrNoData, "empty rows must error")
}

// TestNew_RaggedRows verifies that unequal row lengths report ErrRaggedMatrix.
func TestNew_RaggedRows(t *testing.T) {
	_, err := dataset.New([][]float64{{1, 2}, {3}}, nil)
	assert.ErrorIs(t, err, dataset.ErrRaggedMatrix, "unequal row lengths must error")
}

// TestNew_LabelMismatch verifies the one-label-per-bin invariant.
func TestNew_LabelMismatch(t *testing.T) {
	_, err := dataset.New([][]float64{{1, 2}, {3, 4}}, []float64{0.1})
	assert.ErrorIs(t, err, dataset.ErrLabelMismatch, "label count must match bin count")
}

// TestNew_CopiesInput verifies that mutating the source rows after
// construction does not leak into the dataset.
func TestNew_CopiesInput(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	ds, err := dataset.New(src, nil)
	require.NoError(t, err)

	src[0][0] = 99
	row, err := ds.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, row, "dataset must own its storage")
}

// TestRead_TransposesColumns verifies that file columns become dataset rows
// and that labels come from the second physical line.
func TestRead_TransposesColumns(t *testing.T) {
	in := "# chains\n" +
		"# 0.1 0.35 0.6\n" +
		"1 10 100\n" +
		"2 20 200\n" +
		"3 30 300\n"

	ds, err := dataset.Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Bins(), "one bin per file column")
	assert.Equal(t, 3, ds.Samples(), "one sample per file row")

	row, err := ds.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, row, "row 1 collects column 1 samples")

	assert.True(t, ds.HasLabels())
	assert.Equal(t, []float64{0.1, 0.35, 0.6}, ds.Labels())
}

// TestRead_SkipsCommentsAndBlanks verifies loadtxt-style comment handling:
// interleaved comments, blank lines, and trailing comments on data lines.
func TestRead_SkipsCommentsAndBlanks(t *testing.T) {
	in := "# title\n" +
		"# 1.5 2.5\n" +
		"1 2 # trailing note\n" +
		"\n" +
		"# interleaved comment\n" +
		"3 4\n"

	ds, err := dataset.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Bins())
	assert.Equal(t, 2, ds.Samples())

	row, err := ds.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, row)
}

// TestRead_LabelLineNotComment verifies that a data line in the label slot
// reports ErrNoLabels instead of silently misparsing.
func TestRead_LabelLineNotComment(t *testing.T) {
	in := "1 2\n3 4\n"
	_, err := dataset.Read(strings.NewReader(in))
	assert.ErrorIs(t, err, dataset.ErrNoLabels, "second line must be a comment")
}

// TestRead_WithoutLabels verifies the index fallback when label extraction
// is disabled.
func TestRead_WithoutLabels(t *testing.T) {
	in := "1 2\n3 4\n5 6\n"
	ds, err := dataset.Read(strings.NewReader(in), dataset.WithoutLabels())
	require.NoError(t, err)

	assert.False(t, ds.HasLabels())
	assert.Equal(t, []float64{0, 1}, ds.Labels(), "bin indices stand in for labels")

	lbl, err := ds.Label(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, lbl)
}

// TestRead_Ragged verifies that a short line aborts the load with the
// offending line number in the message.
func TestRead_Ragged(t *testing.T) {
	in := "# t\n# 0.1 0.2\n1 2\n3\n"
	_, err := dataset.Read(strings.NewReader(in))
	assert.ErrorIs(t, err, dataset.ErrRaggedMatrix)
	assert.ErrorContains(t, err, "line 4", "report must name the bad line")
}

// TestRead_BadValue verifies that non-numeric fields abort the load.
func TestRead_BadValue(t *testing.T) {
	in := "# t\n# 0.1\n1.0\nood\n"
	_, err := dataset.Read(strings.NewReader(in))
	assert.ErrorIs(t, err, dataset.ErrBadValue)
}

// TestRead_LabelMismatch verifies that extra labels abort the load.
func TestRead_LabelMismatch(t *testing.T) {
	in := "# t\n# 0.1 0.2 0.3\n1 2\n3 4\n"
	_, err := dataset.Read(strings.NewReader(in))
	assert.ErrorIs(t, err, dataset.ErrLabelMismatch)
}

// TestRead_Empty verifies that comment-only input reports ErrNoData.
func TestRead_Empty(t *testing.T) {
	in := "# only\n# 0.5\n"
	_, err := dataset.Read(strings.NewReader(in))
	assert.ErrorIs(t, err, dataset.ErrNoData)
}

// TestLoad_File exercises the one-shot file path against testdata.
func TestLoad_File(t *testing.T) {
	ds, err := dataset.Load("testdata/wz_bins.dat")
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Bins())
	assert.Equal(t, 5, ds.Samples())
	assert.Equal(t, []float64{0.1, 0.35, 0.6}, ds.Labels())

	row, err := ds.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.99, 0.97, 1.01, 1.03, 1.00}, row)
}

// TestLoad_MissingFile verifies that an unreadable path surfaces an error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load("testdata/does_not_exist.dat")
	assert.Error(t, err, "missing file must be reported")
}

// TestRow_OutOfRange verifies index guards on Row and Label.
func TestRow_OutOfRange(t *testing.T) {
	ds, err := dataset.New([][]float64{{1, 2}}, nil)
	require.NoError(t, err)

	_, err = ds.Row(-1)
	assert.ErrorIs(t, err, dataset.ErrBinRange)
	_, err = ds.Row(1)
	assert.ErrorIs(t, err, dataset.ErrBinRange)
	_, err = ds.Label(5)
	assert.ErrorIs(t, err, dataset.ErrBinRange)
}
