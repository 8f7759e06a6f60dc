package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/gnemet/SlidePress/internal/config"
	"github.com/gnemet/SlidePress/internal/pptx"
)

const defaultGeminiModel = "gemini-1.5-flash"

type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, settings config.ProviderSettings) (*Gemini, error) {
	if settings.Key == "" {
		return nil, errors.New("missing GEMINI_KEY")
	}
	name := settings.Model
	if name == "" {
		name = defaultGeminiModel
	}

	c, err := genai.NewClient(ctx, option.WithAPIKey(settings.Key))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	model := c.GenerativeModel(name)
	if settings.Temperature > 0 {
		model.SetTemperature(float32(settings.Temperature))
	}
	if settings.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(settings.MaxTokens))
	}
	return &Gemini{client: c, model: model}, nil
}

func (g *Gemini) Summarize(ctx context.Context, title string, slides []pptx.Classification) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(BuildPrompt(title, slides)))
	if err != nil {
		return "", err
	}
	return responseText(resp), nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return strings.TrimSpace(b.String())
}
