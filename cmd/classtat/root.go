package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/classtools/classtat/dataset"
	"github.com/classtools/classtat/histogram"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "classtat",
	Short: "Statistics and plots for binned CLASS chain output",
	Long: `classtat works with the whitespace-separated matrices written by CLASS
and its chain post-processing: it lists the column variables declared in a
file header, and it summarizes binned chains (one column per bin, one line
per sample) into histograms, means, asymmetric 68% intervals and
covariance/correlation matrices, with optional PNG plots.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "log level (trace|debug|info|warn|error)")
	pf.StringVar(&logFormat, "log-format", "console", "log format (console|json)")
}

// buildLogger assembles a zerolog logger writing to stderr.
func buildLogger(level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", level, err)
	}
	var w io.Writer
	switch format {
	case "console":
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	case "json":
		w = os.Stderr
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// newLogger builds the logger from the persistent CLI flags.
func newLogger() (zerolog.Logger, error) {
	return buildLogger(logLevel, logFormat)
}

// loadDataset reads a binned chain file, with or without its label line.
func loadDataset(path string, noLabels bool) (*dataset.Dataset, error) {
	var opts []dataset.Option
	if noLabels {
		opts = append(opts, dataset.WithoutLabels())
	}
	return dataset.Load(path, opts...)
}

// parseBinSpec turns a CLI bin argument into a spec: "auto", an integer
// count, or a comma-separated edge list.
func parseBinSpec(s string) (histogram.BinSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "auto" {
		return histogram.Auto(), nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return histogram.Count(n), nil
	}
	parts := strings.Split(s, ",")
	edges := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return histogram.BinSpec{}, fmt.Errorf("parse bins %q: %w", s, err)
		}
		edges = append(edges, v)
	}
	return histogram.Edges(edges...), nil
}

// plotTitle renders the "<variable> = <label>" histogram title.
func plotTitle(variable string, label float64) string {
	return fmt.Sprintf("%s = %g", variable, label)
}

// parseScale maps an axis scale name onto the log-scale switch.
func parseScale(s string) (bool, error) {
	switch s {
	case "", "linear":
		return false, nil
	case "log":
		return true, nil
	default:
		return false, fmt.Errorf("unknown scale %q (want linear or log)", s)
	}
}
