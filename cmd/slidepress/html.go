package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnemet/SlidePress/internal/convert"
)

func htmlCmd(a *app) *cobra.Command {
	var title, lang string

	cmd := &cobra.Command{
		Use:   "html [input.pptx] [output.html]",
		Short: "Convert a deck into one self-contained HTML page",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := a.paths(args)

			c, cleanup := a.converter(cmd.Context(), a.convertOptions(cmd, title, lang))
			defer cleanup()

			res, err := c.Run(cmd.Context(), input, output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Converted %d slides\nOutput: %s\n", res.Slides, res.Output)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "page title (default: document title)")
	cmd.Flags().StringVar(&lang, "lang", "", "language of the page labels: en|hu")
	return cmd
}

// convertOptions applies flags that were set over the configuration.
func (a *app) convertOptions(cmd *cobra.Command, title, lang string) convert.Options {
	opts := convert.Options{Title: a.cfg.Convert.Title, Lang: a.cfg.Convert.Lang}
	if cmd.Flags().Changed("title") {
		opts.Title = title
	}
	if cmd.Flags().Changed("lang") {
		opts.Lang = lang
	}
	return opts
}
