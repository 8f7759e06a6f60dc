package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gnemet/SlidePress/internal/observer"
)

func watchCmd(a *app) *cobra.Command {
	var (
		title, lang string
		debounce    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [input.pptx] [output.html]",
		Short: "Convert the deck again whenever it changes",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := a.paths(args)

			c, cleanup := a.converter(cmd.Context(), a.convertOptions(cmd, title, lang))
			defer cleanup()

			if cmd.Flags().Changed("debounce") {
				if debounce <= 0 {
					return fmt.Errorf("--debounce must be positive, got %s", debounce)
				}
				a.cfg.Watch.Debounce = debounce
			}

			o := observer.NewObserver(input, a.cfg.Watch.Debounce, func(ctx context.Context) error {
				_, err := c.Run(ctx, input, output)
				return err
			}, a.logger)
			return o.Start(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "page title (default: document title)")
	cmd.Flags().StringVar(&lang, "lang", "", "language of the page labels: en|hu")
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "quiet period before converting (default from watch.debounce)")
	return cmd
}
