package main

import (
	"fmt"

	"github.com/jortwiebrens/portfolio/markup"
	"github.com/jortwiebrens/portfolio/site"
	"github.com/spf13/cobra"
)

func newEssayCmd() *cobra.Command {
	var contentPath string

	cmd := &cobra.Command{
		Use:   "essay <slug>",
		Short: "Print an essay to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := site.LoadConfig(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if contentPath != "" {
				c.ContentPath = contentPath
			}

			store, err := loadStore(c.ContentPath)
			if err != nil {
				return err
			}

			e, err := store.Essay(args[0])
			if err != nil {
				return err
			}

			var opts []markup.Option
			if c.ParagraphReflow {
				opts = append(opts, markup.WithParagraphReflow())
			}

			out := cmd.OutOrStdout()
			st := newStyles(isTerminal(out))

			fmt.Fprintln(out, st.Title.Render(e.Title))
			fmt.Fprintln(out, st.Dim.Render(fmt.Sprintf("%s · %s · %s", e.Category, e.Date, e.ReadingTime(site.WordsPerMinute))))
			fmt.Fprintln(out)

			return writeTerm(out, markup.Render(e.Body, opts...), st)
		},
	}

	cmd.Flags().StringVar(&contentPath, "content", "", "content file, overrides PORTFOLIO_CONTENT_PATH")

	return cmd
}
