package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/classtools/classtat/analysis"
	"github.com/classtools/classtat/render"
)

var (
	histBin      int
	histBins     string
	histReflect  bool
	histCenter   float64
	histOut      string
	histVar      string
	histNoLabels bool
)

var histCmd = &cobra.Command{
	Use:   "hist FILE",
	Short: "Plot one bin's histogram with its mean and 68% band",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		spec, err := parseBinSpec(histBins)
		if err != nil {
			return err
		}
		ds, err := loadDataset(args[0], histNoLabels)
		if err != nil {
			return err
		}
		sess, err := analysis.New(ds, analysis.WithLogger(log))
		if err != nil {
			return err
		}

		hists, err := sess.Histograms(spec)
		if err != nil {
			return err
		}
		if histReflect {
			if hists, err = sess.ReflectHistograms(histCenter); err != nil {
				return err
			}
		}
		if histBin < 0 || histBin >= len(hists) {
			return fmt.Errorf("bin %d out of range [0, %d)", histBin, len(hists))
		}

		means := sess.Means()
		intervals, err := sess.SigmaIntervals()
		if err != nil {
			return err
		}

		label, err := ds.Label(histBin)
		if err != nil {
			return err
		}
		mean := means[histBin]
		iv := intervals[histBin]
		opts := render.HistogramOptions{
			OutPath: histOut,
			Title:   plotTitle(histVar, label),
			XLabel:  histVar,
			Mean:    &mean,
		}
		if !math.IsNaN(iv.Lower) && !math.IsNaN(iv.Upper) {
			opts.Band = &render.Band{Lo: mean - iv.Lower, Hi: mean + iv.Upper}
		}
		if err := render.HistogramPlot(hists[histBin], opts); err != nil {
			return err
		}
		log.Info().Str("path", histOut).Int("bin", histBin).Msg("histogram written")
		return nil
	},
}

func init() {
	f := histCmd.Flags()
	f.IntVar(&histBin, "bin", 0, "bin row to plot")
	f.StringVar(&histBins, "bins", "auto", "bin rule: auto, a count, or comma-separated edges")
	f.BoolVar(&histReflect, "reflect", false, "fold the histogram about its lowest edge")
	f.Float64Var(&histCenter, "center", 0, "fold center used with --reflect")
	f.StringVar(&histOut, "out", "histogram.png", "output PNG path")
	f.StringVar(&histVar, "var", "w(z)", "variable name for titles and labels")
	f.BoolVar(&histNoLabels, "no-labels", false, "the file carries no label line; use bin indexes")
	rootCmd.AddCommand(histCmd)
}
