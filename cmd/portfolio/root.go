package main

import (
	"github.com/spf13/cobra"
)

type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

func newRootCmd(info buildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio site and essay renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newEssayCmd())
	cmd.AddCommand(newVersionCmd(info))

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}
