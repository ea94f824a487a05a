package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/classtools/classtat/analysis"
	"github.com/classtools/classtat/render"
)

var (
	evoBins     string
	evoOut      string
	evoXScale   string
	evoYScale   string
	evoVar      string
	evoNoLabels bool
)

var evolutionCmd = &cobra.Command{
	Use:   "evolution FILE",
	Short: "Plot every bin's histogram against its label, shaded by occupancy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		spec, err := parseBinSpec(evoBins)
		if err != nil {
			return err
		}
		logX, err := parseScale(evoXScale)
		if err != nil {
			return err
		}
		logY, err := parseScale(evoYScale)
		if err != nil {
			return err
		}
		ds, err := loadDataset(args[0], evoNoLabels)
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
		err = render.Evolution(hists, ds.Labels(), render.EvolutionOptions{
			OutPath: evoOut,
			Title:   fmt.Sprintf("%s evolution", evoVar),
			XLabel:  "z",
			YLabel:  evoVar,
			LogX:    logX,
			LogY:    logY,
		})
		if err != nil {
			return err
		}
		log.Info().Str("path", evoOut).Msg("evolution written")
		return nil
	},
}

func init() {
	f := evolutionCmd.Flags()
	f.StringVar(&evoBins, "bins", "auto", "bin rule: auto, a count, or comma-separated edges")
	f.StringVar(&evoOut, "out", "evolution.png", "output PNG path")
	f.StringVar(&evoXScale, "xscale", "linear", "x axis scale (linear|log)")
	f.StringVar(&evoYScale, "yscale", "linear", "y axis scale (linear|log)")
	f.StringVar(&evoVar, "var", "w(z)", "variable name for titles and labels")
	f.BoolVar(&evoNoLabels, "no-labels", false, "the file carries no label line; use bin indexes")
	rootCmd.AddCommand(evolutionCmd)
}
