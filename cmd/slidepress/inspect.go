package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnemet/SlidePress/internal/pptx"
)

func inspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [input.pptx]",
		Short: "Print the text shapes of each slide and how they are classified",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := a.paths(args)
			doc, err := pptx.Open(input)
			if err != nil {
				return err
			}
			printDocument(cmd.OutOrStdout(), doc)
			return nil
		},
	}
}

func printDocument(w io.Writer, doc *pptx.Document) {
	if doc.Title != "" {
		fmt.Fprintf(w, "Title: %s\n", doc.Title)
	}
	if doc.Creator != "" {
		fmt.Fprintf(w, "Creator: %s\n", doc.Creator)
	}
	fmt.Fprintf(w, "Slides: %d\n", len(doc.Slides))

	for _, s := range doc.Slides {
		c := pptx.Classify(s.Shapes)
		fmt.Fprintf(w, "\nSlide %d:\n", s.Number)
		for _, sh := range s.Shapes {
			fmt.Fprintf(w, "  [%s] %s: %s\n", sh.Kind, sh.Name, quote(sh.PlainText()))
		}
		fmt.Fprintf(w, "  => title %s, %d content blocks\n", quote(c.Title), len(c.Content))
	}
}

// quote shows text on one line.
func quote(s string) string {
	return strconv.Quote(strings.TrimSpace(s))
}
