package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jortwiebrens/portfolio/markup"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		format string
		reflow bool
	)

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render markup from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tty := isTerminal(out)
			if format == "" {
				format = formatJSON
				if tty {
					format = formatTerm
				}
			}

			var opts []markup.Option
			if reflow {
				opts = append(opts, markup.WithParagraphReflow())
			}

			return writeNodes(out, format, markup.Render(text, opts...), newStyles(tty))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json, html or term (default term on a terminal, json otherwise)")
	cmd.Flags().BoolVar(&reflow, "reflow", false, "merge consecutive paragraph lines")

	return cmd
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(b), nil
}
