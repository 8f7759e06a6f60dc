package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnemet/SlidePress/internal/deck"
)

func deckCmd(a *app) *cobra.Command {
	var (
		source, template, author string
		list                     bool
	)

	cmd := &cobra.Command{
		Use:   "deck [output.pptx]",
		Short: "Build a deck from a template, a YAML file or a Markdown outline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				names, err := deck.Templates()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
				return nil
			}

			cfg := a.cfg.Deck
			if cmd.Flags().Changed("source") {
				cfg.Source = source
			}
			if cmd.Flags().Changed("template") {
				cfg.Template = template
				cfg.Source = ""
			}
			if cmd.Flags().Changed("author") {
				cfg.Author = author
			}
			output := cfg.Output
			if len(args) > 0 {
				output = args[0]
			}

			var (
				d   *deck.Deck
				err error
			)
			if cfg.Source != "" {
				d, err = deck.Load(cfg.Source)
			} else {
				d, err = deck.Template(cfg.Template)
			}
			if err != nil {
				return err
			}

			p, err := deck.Build(d, deck.Options{Author: cfg.Author})
			if err != nil {
				return err
			}
			if err := p.Save(output); err != nil {
				return err
			}

			a.logger.Info("deck written",
				zap.String("output", output),
				zap.String("source", cfg.Source),
				zap.String("template", cfg.Template),
				zap.Int("slides", p.SlideCount()),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Presentation created successfully: %s (%d slides)\n", output, p.SlideCount())
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "deck source file (.yaml, .yml, .md, .markdown)")
	cmd.Flags().StringVar(&template, "template", "", "built-in template to build (default from deck.template)")
	cmd.Flags().StringVar(&author, "author", "", "value of the {{author}} tag")
	cmd.Flags().BoolVar(&list, "list", false, "list the built-in templates")
	return cmd
}
