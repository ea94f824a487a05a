package main

import (
	"github.com/spf13/cobra"

	"github.com/classtools/classtat/classhdr"
)

var headersCmd = &cobra.Command{
	Use:   "headers FILE",
	Short: "List the column variables declared in a CLASS output header",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := classhdr.ListFile(args[0])
		if err != nil {
			return err
		}
		return classhdr.Fprint(cmd.OutOrStdout(), names)
	},
}

func init() {
	rootCmd.AddCommand(headersCmd)
}
