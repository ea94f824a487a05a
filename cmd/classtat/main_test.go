package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtools/classtat/histogram"
	"github.com/classtools/classtat/stats"
)

// execute runs the root command with args and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetOut(nil)
	err := rootCmd.Execute()
	return buf.String(), err
}

// TestHeadersCommand verifies the fixed catalogue layout end to end.
func TestHeadersCommand(t *testing.T) {
	out, err := execute(t, "headers", "testdata/background.dat")
	require.NoError(t, err)

	want := `('Column', 'Variable')

(0, 'z')
(1, 'proper time [Gyr]')
(2, 'conf. time [Mpc]')
(3, 'H [1/Mpc]')
(4, 'comov. dist.')

Recall that (.) = 8piG/3
`
	assert.Equal(t, want, out)
}

// TestHeadersCommand_MissingFile verifies the error surfaces.
func TestHeadersCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "headers", "testdata/absent.dat")
	assert.Error(t, err)
}

// TestSummaryCommand verifies the per-bin table over the sample chains.
func TestSummaryCommand(t *testing.T) {
	out, err := execute(t, "summary", "testdata/wz_bins.dat")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header plus one line per bin")
	assert.Contains(t, lines[0], "mean")
	assert.Contains(t, lines[0], "+68%")
	assert.Contains(t, out, "0.35", "bin labels appear in the table")
}

// TestHistCommand verifies a decorated histogram PNG lands on disk.
func TestHistCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "hist.png")
	_, err := execute(t, "hist", "testdata/wz_bins.dat",
		"--bin", "1", "--bins", "4", "--out", out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestHistCommand_Reflected verifies the folded variant.
func TestHistCommand_Reflected(t *testing.T) {
	out := filepath.Join(t.TempDir(), "folded.png")
	_, err := execute(t, "hist", "testdata/wz_bins.dat",
		"--bin", "0", "--bins", "3", "--reflect", "--center", "-1", "--out", out)
	require.NoError(t, err)

	_, err = os.Stat(out)
	require.NoError(t, err)
}

// TestEvolutionCommand verifies the labeled scatter PNG lands on disk.
func TestEvolutionCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "evolution.png")
	_, err := execute(t, "evolution", "testdata/wz_bins.dat", "--out", out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestCorrCommand_Row verifies the pay-per-row covariance printout.
func TestCorrCommand_Row(t *testing.T) {
	out, err := execute(t, "corr", "testdata/wz_bins.dat", "--bin", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "covariance row 1:")
	assert.Equal(t, 4, strings.Count(out, "\n"), "a heading plus one entry per bin")
}

// TestCorrCommand_Heatmap verifies the full-matrix PNG path.
func TestCorrCommand_Heatmap(t *testing.T) {
	out := filepath.Join(t.TempDir(), "corr.png")
	_, err := execute(t, "corr", "testdata/wz_bins.dat",
		"--bin", "-1", "--tick-step", "1", "--out", out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestRunCommand verifies the config-driven pipeline: plots on disk and the
// summary table on stdout.
func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "classtat.yaml")
	cfgBody := fmt.Sprintf(`input:
  path: testdata/wz_bins.dat
bins:
  rule: count
  count: 4
plots:
  out_dir: %s
  histograms: [0, 2]
  evolution: true
  correlation: true
`, dir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgBody), 0o600))

	out, err := execute(t, "run", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "mean", "the run ends with the summary table")
	for _, name := range []string{"hist_bin_000.png", "hist_bin_002.png", "evolution.png", "correlation.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "expected plot %s", name)
		assert.Positive(t, info.Size())
	}
}

// TestParseBinSpec verifies the three accepted CLI forms and the reject.
func TestParseBinSpec(t *testing.T) {
	spec, err := parseBinSpec("auto")
	require.NoError(t, err)
	assert.True(t, spec.Equal(histogram.Auto()))

	spec, err = parseBinSpec("")
	require.NoError(t, err)
	assert.True(t, spec.Equal(histogram.Auto()))

	spec, err = parseBinSpec("32")
	require.NoError(t, err)
	assert.True(t, spec.Equal(histogram.Count(32)))

	spec, err = parseBinSpec("0, 0.5, 1")
	require.NoError(t, err)
	assert.True(t, spec.Equal(histogram.Edges(0, 0.5, 1)))

	_, err = parseBinSpec("a,b")
	assert.Error(t, err)
}

// TestPlotTitle verifies the "<variable> = <label>" title form.
func TestPlotTitle(t *testing.T) {
	assert.Equal(t, "w(z) = 0.35", plotTitle("w(z)", 0.35))
	assert.Equal(t, "w(z) = 2", plotTitle("w(z)", 2))
}

// TestParseScale verifies the axis scale names.
func TestParseScale(t *testing.T) {
	log, err := parseScale("linear")
	require.NoError(t, err)
	assert.False(t, log)

	log, err = parseScale("log")
	require.NoError(t, err)
	assert.True(t, log)

	_, err = parseScale("cubic")
	assert.Error(t, err)
}

// TestSigmaFlags verifies the table flag rendering.
func TestSigmaFlags(t *testing.T) {
	exact := stats.SigmaInterval{LowerStatus: stats.BoundExact, UpperStatus: stats.BoundExact}
	assert.Equal(t, "-", sigmaFlags(exact))

	degraded := stats.SigmaInterval{LowerStatus: stats.BoundUndefined, UpperStatus: stats.BoundApprox}
	assert.Equal(t, "lower=undefined upper=approx", sigmaFlags(degraded))
}
