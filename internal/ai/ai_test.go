package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnemet/SlidePress/internal/config"
	"github.com/gnemet/SlidePress/internal/pptx"
)

func TestNew_NoKeyIsNoop(t *testing.T) {
	s, err := New(context.Background(), config.AIConfig{
		ActiveProvider: "gemini",
		Providers:      map[string]config.ProviderSettings{"gemini": {Model: "m"}},
	})
	require.NoError(t, err)
	assert.IsType(t, Noop{}, s)

	s, err = New(context.Background(), config.AIConfig{ActiveProvider: "gemini"})
	require.NoError(t, err)
	assert.IsType(t, Noop{}, s)

	out, err := s.Summarize(context.Background(), "t", nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, s.Close())
}

func TestNew_UnsupportedProvider(t *testing.T) {
	_, err := New(context.Background(), config.AIConfig{
		ActiveProvider: "openai",
		Providers:      map[string]config.ProviderSettings{"openai": {Key: "k"}},
	})
	assert.ErrorContains(t, err, `unsupported ai provider "openai"`)
}

func TestNewGemini_MissingKey(t *testing.T) {
	_, err := NewGemini(context.Background(), config.ProviderSettings{})
	assert.EqualError(t, err, "missing GEMINI_KEY")
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("Quarterly", []pptx.Classification{
		{Title: "Intro", Content: []string{"Welcome"}},
		{Title: "Details", Content: []string{"• A\n• B"}},
	})

	assert.Contains(t, p, "Presentation: Quarterly\n")
	assert.Contains(t, p, "\nSlide 1: Intro\nWelcome\n")
	assert.Contains(t, p, "\nSlide 2: Details\n• A\n• B\n")
}

func TestBuildPrompt_Truncates(t *testing.T) {
	long := strings.Repeat("é", maxPromptChars)
	p := BuildPrompt("", []pptx.Classification{{Title: "x", Content: []string{long}}})

	assert.NotContains(t, p, "Presentation:")
	assert.Less(t, len(p), maxPromptChars+200)
	assert.True(t, strings.HasSuffix(p, "é"))
}

func TestResponseText(t *testing.T) {
	assert.Empty(t, responseText(nil))
	assert.Empty(t, responseText(&genai.GenerateContentResponse{}))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(" First. "), genai.Text("Second. ")}},
		}},
	}
	assert.Equal(t, "First. Second.", responseText(resp))
}
