package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/classtools/classtat/analysis"
	"github.com/classtools/classtat/config"
	"github.com/classtools/classtat/render"
)

var runConfigPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline described by a config file",
	Long: `run loads a binned chain file, computes histograms, means, 68%
intervals and correlations per the configuration, writes the requested
plots, and ends with the summary table on stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(runConfigPath)
		if err != nil {
			return err
		}
		log, err := buildLogger(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		return runPipeline(cfg, log, cmd.OutOrStdout())
	},
}

func init() {
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "classtat.yaml", "pipeline configuration file")
	rootCmd.AddCommand(runCmd)
}

func runPipeline(cfg config.Config, log zerolog.Logger, out io.Writer) error {
	ds, err := loadDataset(cfg.Input.Path, !cfg.Input.Labels)
	if err != nil {
		return err
	}
	sess, err := analysis.New(ds, analysis.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info().
		Str("path", cfg.Input.Path).
		Int("bins", ds.Bins()).
		Int("samples", ds.Samples()).
		Msg("dataset loaded")

	hists, err := sess.Histograms(cfg.Bins.Spec())
	if err != nil {
		return err
	}
	if cfg.Reflect.Enabled {
		if hists, err = sess.ReflectHistograms(cfg.Reflect.Center); err != nil {
			return err
		}
	}

	if len(cfg.Plots.Histograms) > 0 || cfg.Plots.Evolution || cfg.Plots.Correlation {
		if err := os.MkdirAll(cfg.Plots.OutDir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", cfg.Plots.OutDir, err)
		}
	}

	means := sess.Means()
	intervals, err := sess.SigmaIntervals()
	if err != nil {
		return err
	}

	for _, idx := range cfg.Plots.Histograms {
		if idx >= len(hists) {
			return fmt.Errorf("plot bin %d out of range [0, %d)", idx, len(hists))
		}
		label, err := ds.Label(idx)
		if err != nil {
			return err
		}
		mean := means[idx]
		iv := intervals[idx]
		opts := render.HistogramOptions{
			OutPath: filepath.Join(cfg.Plots.OutDir, fmt.Sprintf("hist_bin_%03d.png", idx)),
			Title:   plotTitle(cfg.Plots.Variable, label),
			XLabel:  cfg.Plots.Variable,
			Mean:    &mean,
		}
		if !math.IsNaN(iv.Lower) && !math.IsNaN(iv.Upper) {
			opts.Band = &render.Band{Lo: mean - iv.Lower, Hi: mean + iv.Upper}
		}
		if err := render.HistogramPlot(hists[idx], opts); err != nil {
			return err
		}
		log.Info().Str("path", opts.OutPath).Int("bin", idx).Msg("histogram written")
	}

	if cfg.Plots.Evolution {
		path := filepath.Join(cfg.Plots.OutDir, "evolution.png")
		err := render.Evolution(hists, ds.Labels(), render.EvolutionOptions{
			OutPath: path,
			Title:   fmt.Sprintf("%s evolution", cfg.Plots.Variable),
			XLabel:  "z",
			YLabel:  cfg.Plots.Variable,
			LogX:    cfg.Plots.XScale == "log",
			LogY:    cfg.Plots.YScale == "log",
		})
		if err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("evolution written")
	}

	if cfg.Plots.Correlation {
		corr, err := sess.Correlation()
		if err != nil {
			return err
		}
		path := filepath.Join(cfg.Plots.OutDir, "correlation.png")
		err = render.CorrelationMatrix(corr, ds.Labels(), render.MatrixOptions{
			OutPath: path,
			Title:   "Correlation matrix",
		})
		if err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("correlation written")
	}

	return writeSummary(out, sess)
}
