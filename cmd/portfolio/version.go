package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(info buildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "portfolio %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date)
		},
	}
}
