package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/classtools/classtat/analysis"
	"github.com/classtools/classtat/stats"
)

var summaryNoLabels bool

var summaryCmd = &cobra.Command{
	Use:   "summary FILE",
	Short: "Per-bin statistics of a binned chain file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		ds, err := loadDataset(args[0], summaryNoLabels)
		if err != nil {
			return err
		}
		sess, err := analysis.New(ds, analysis.WithLogger(log))
		if err != nil {
			return err
		}
		return writeSummary(cmd.OutOrStdout(), sess)
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryNoLabels, "no-labels", false, "the file carries no label line; use bin indexes")
	rootCmd.AddCommand(summaryCmd)
}

// writeSummary prints one table row per bin: moments, the asymmetric 68%
// interval, and any degraded-bound flags.
func writeSummary(w io.Writer, sess *analysis.Session) error {
	ds := sess.Dataset()
	intervals, err := sess.SigmaIntervals()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "bin\tlabel\tn\tmean\tmedian\tstd\t-68%\t+68%\tflags")
	for i := 0; i < ds.Bins(); i++ {
		row, err := ds.Row(i)
		if err != nil {
			return err
		}
		d, err := stats.Describe(row)
		if err != nil {
			return err
		}
		label, err := ds.Label(i)
		if err != nil {
			return err
		}
		iv := intervals[i]
		fmt.Fprintf(tw, "%d\t%g\t%d\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%s\n",
			i, label, d.Samples, d.Mean, d.Median, d.StdDev, iv.Lower, iv.Upper, sigmaFlags(iv))
	}
	return tw.Flush()
}

// sigmaFlags renders non-exact bound statuses, "-" when both are exact.
func sigmaFlags(iv stats.SigmaInterval) string {
	if iv.Exact() {
		return "-"
	}
	return fmt.Sprintf("lower=%s upper=%s", iv.LowerStatus, iv.UpperStatus)
}
