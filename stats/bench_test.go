package stats_test

import (
	"math/rand"
	"testing"

	"github.com/classtools/classtat/dataset"
	"github.com/classtools/classtat/stats"
)

// benchDataset builds a deterministic dataset of bins x samples normals.
func benchDataset(b *testing.B, bins, samples int) *dataset.Dataset {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	rows := make([][]float64, bins)
	for i := range rows {
		rows[i] = make([]float64, samples)
		for j := range rows[i] {
			rows[i][j] = rng.NormFloat64()
		}
	}
	ds, err := dataset.New(rows, nil)
	if err != nil {
		b.Fatal(err)
	}
	return ds
}

func BenchmarkSigma(b *testing.B) {
	ds := benchDataset(b, 1, 10_000)
	row, err := ds.Row(0)
	if err != nil {
		b.Fatal(err)
	}
	mean := stats.Means(ds)[0]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := stats.Sigma(row, mean); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCovariance_Full(b *testing.B) {
	ds := benchDataset(b, 50, 1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := stats.Covariance(ds); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCovarianceRow(b *testing.B) {
	ds := benchDataset(b, 50, 1_000)
	means := stats.Means(ds)
	cov := stats.NaNMatrix(ds.Bins())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := stats.CovarianceRow(ds, 25, means, cov); err != nil {
			b.Fatal(err)
		}
	}
}
