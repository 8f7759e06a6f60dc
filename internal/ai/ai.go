// Package ai produces optional deck summaries for the HTML footer.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnemet/SlidePress/internal/config"
	"github.com/gnemet/SlidePress/internal/pptx"
)

// maxPromptChars bounds the slide text sent to a provider.
const maxPromptChars = 12000

// Summarizer writes a short summary of a classified deck.
type Summarizer interface {
	Summarize(ctx context.Context, title string, slides []pptx.Classification) (string, error)
	Close() error
}

// Noop returns no summary.
type Noop struct{}

func (Noop) Summarize(ctx context.Context, title string, slides []pptx.Classification) (string, error) {
	return "", nil
}

func (Noop) Close() error { return nil }

// New returns the summarizer for the active provider, or Noop when no
// provider key is configured.
func New(ctx context.Context, cfg config.AIConfig) (Summarizer, error) {
	settings, ok := cfg.Active()
	if !ok || settings.Key == "" {
		return Noop{}, nil
	}
	switch cfg.ActiveProvider {
	case "gemini":
		return NewGemini(ctx, settings)
	default:
		return nil, fmt.Errorf("unsupported ai provider %q", cfg.ActiveProvider)
	}
}

// BuildPrompt renders the summary request for a deck. Slide text beyond
// maxPromptChars is cut off.
func BuildPrompt(title string, slides []pptx.Classification) string {
	var b strings.Builder
	b.WriteString("Summarize this presentation in two or three plain sentences. ")
	b.WriteString("Reply with the summary only, no markdown.\n\n")
	if title != "" {
		fmt.Fprintf(&b, "Presentation: %s\n", title)
	}

	var body strings.Builder
	for i, s := range slides {
		fmt.Fprintf(&body, "\nSlide %d: %s\n", i+1, s.Title)
		for _, block := range s.Content {
			body.WriteString(block)
			body.WriteString("\n")
		}
	}
	text := body.String()
	if len(text) > maxPromptChars {
		text = strings.ToValidUTF8(text[:maxPromptChars], "")
	}
	b.WriteString(text)
	return b.String()
}
