package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/classtools/classtat/analysis"
	"github.com/classtools/classtat/render"
)

var (
	corrBin      int
	corrOut      string
	corrTickStep int
	corrNoLabels bool
)

var corrCmd = &cobra.Command{
	Use:   "corr FILE",
	Short: "Correlation heatmap, or one covariance row with --bin",
	Long: `corr computes the covariance of the binned chains. Without --bin it
normalizes the full matrix into correlations and writes a heatmap PNG.
With --bin it pays only for the named row's cross-covariances and prints
them, leaving the rest of the matrix unpaid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		ds, err := loadDataset(args[0], corrNoLabels)
		if err != nil {
			return err
		}
		sess, err := analysis.New(ds, analysis.WithLogger(log))
		if err != nil {
			return err
		}

		if corrBin >= 0 {
			cov, err := sess.CovarianceBin(corrBin)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "covariance row %d:\n", corrBin)
			for j := 0; j < ds.Bins(); j++ {
				fmt.Fprintf(out, "  [%d] %.6g\n", j, cov.At(corrBin, j))
			}
			return nil
		}

		corr, err := sess.Correlation()
		if err != nil {
			return err
		}
		err = render.CorrelationMatrix(corr, ds.Labels(), render.MatrixOptions{
			OutPath:  corrOut,
			Title:    "Correlation matrix",
			TickStep: corrTickStep,
		})
		if err != nil {
			return err
		}
		log.Info().Str("path", corrOut).Msg("correlation written")
		return nil
	},
}

func init() {
	f := corrCmd.Flags()
	f.IntVar(&corrBin, "bin", -1, "print this row's covariances instead of plotting")
	f.StringVar(&corrOut, "out", "correlation.png", "output PNG path")
	f.IntVar(&corrTickStep, "tick-step", 0, "label every n-th bin index (default 50)")
	f.BoolVar(&corrNoLabels, "no-labels", false, "the file carries no label line; use bin indexes")
	rootCmd.AddCommand(corrCmd)
}
