package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtools/classtat/dataset"
	"github.com/classtools/classtat/stats"
)

// TestMeans verifies per-row means aligned with the dataset rows.
func TestMeans(t *testing.T) {
	ds, err := dataset.New([][]float64{
		{1, 2, 3},
		{10, 20, 30},
	}, nil)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{2, 20}, stats.Means(ds), 1e-12)
}

// TestDescribe verifies the row summary on odd and even sample counts.
func TestDescribe(t *testing.T) {
	d, err := stats.Describe([]float64{5, 1, 3, 2, 4})
	require.NoError(t, err)

	assert.Equal(t, 5, d.Samples)
	assert.InDelta(t, 3, d.Mean, 1e-12)
	assert.InDelta(t, 3, d.Median, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), d.StdDev, 1e-12, "n-1 normalized deviation")

	d, err = stats.Describe([]float64{4, 1, 3, 2})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, d.Median, 1e-12, "even counts interpolate the middle pair")
}

// TestDescribe_Empty verifies the empty-row sentinel.
func TestDescribe_Empty(t *testing.T) {
	_, err := stats.Describe(nil)
	assert.ErrorIs(t, err, stats.ErrNoData)
}

// TestDescribe_KeepsInput verifies that the median sort works on a copy.
func TestDescribe_KeepsInput(t *testing.T) {
	row := []float64{3, 1, 2}
	_, err := stats.Describe(row)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 1, 2}, row)
}
