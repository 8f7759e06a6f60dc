package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/gnemet/SlidePress/internal/config"
)

// run executes the CLI with args against an empty config file location.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	for _, env := range []string{"GEMINI_KEY", "DB_URL", "PG_HOST", "SLIDEPRESS_DECK_SOURCE"} {
		t.Setenv(env, "")
	}
	cfg := filepath.Join(t.TempDir(), "config.yaml")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "slidepress dev (built unknown)\n", out)
}

func TestDeckList(t *testing.T) {
	out, err := run(t, "deck", "--list")
	require.NoError(t, err)
	assert.Equal(t, "default\nreview\n", out)
}

func TestDeckThenHTML(t *testing.T) {
	dir := t.TempDir()
	pptxPath := filepath.Join(dir, "overview.pptx")
	htmlPath := filepath.Join(dir, "overview.html")

	out, err := run(t, "deck", pptxPath, "--author", "Ada")
	require.NoError(t, err)
	assert.Contains(t, out, "Presentation created successfully: "+pptxPath+" (8 slides)")

	out, err = run(t, "html", pptxPath, htmlPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Converted 8 slides")

	data, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "<title>SlidePress Project Overview</title>")
	assert.Contains(t, html, "<h1>SlidePress Project Overview</h1>")
	assert.Contains(t, html, "<p>Author: Ada</p>")
	assert.Contains(t, html, `<h2 class="slide-title">Technology Stack</h2>`)
	assert.Contains(t, html, "<li>Title placeholder becomes the title if none is set</li>")
	assert.Contains(t, html, "<h1>Thank You</h1>")
	assert.Contains(t, html, "<p>Questions &amp; Discussion</p>")
	assert.Contains(t, html, "Total Slides: 8")
}

func TestDeckFromMarkdown(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "talk.md")
	require.NoError(t, os.WriteFile(src, []byte("# Talk\n\n## Points\n\n- one\n- two\n\n# Questions\n"), 0644))
	pptxPath := filepath.Join(dir, "talk.pptx")
	htmlPath := filepath.Join(dir, "talk.html")

	_, err := run(t, "deck", pptxPath, "--source", src)
	require.NoError(t, err)

	_, err = run(t, "html", pptxPath, htmlPath, "--lang", "hu", "--title", "Előadás")
	require.NoError(t, err)

	data, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "<title>Előadás</title>")
	assert.Contains(t, html, "<ul>\n<li>one</li>\n<li>two</li>\n</ul>")
	assert.Contains(t, html, "3. dia / 3")
}

func TestHTML_MissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.html")

	_, err := run(t, "html", filepath.Join(dir, "missing.pptx"), output)
	require.Error(t, err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDeck_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "deck", filepath.Join(dir, "a.pptx"), "--template", "nope")
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("slides:\n  - kind: chart\n"), 0644))
	_, err = run(t, "deck", filepath.Join(dir, "b.pptx"), "--source", bad)
	assert.ErrorContains(t, err, "unknown slide kind")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(config.LogConfig{Level: "warn", Format: "json"}, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = newLogger(config.LogConfig{Level: "warn", Format: "console"}, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = newLogger(config.LogConfig{Level: "loud"}, false)
	assert.Error(t, err)

	_, err = newLogger(config.LogConfig{Level: "info", Format: "xml"}, false)
	assert.ErrorContains(t, err, `unknown log format "xml"`)
}

func TestPaths(t *testing.T) {
	a := &app{cfg: &config.Config{Convert: config.ConvertConfig{Input: "cfg.pptx", Output: "cfg.html"}}}

	in, out := a.paths(nil)
	assert.Equal(t, "cfg.pptx", in)
	assert.Equal(t, "cfg.html", out)

	in, out = a.paths([]string{"arg.pptx"})
	assert.Equal(t, "arg.pptx", in)
	assert.Equal(t, "cfg.html", out)

	in, out = a.paths([]string{"arg.pptx", "arg.html"})
	assert.Equal(t, "arg.pptx", in)
	assert.Equal(t, "arg.html", out)
}

func TestRootHelpMentionsCommands(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	for _, name := range []string{"html", "deck", "watch", "version"} {
		assert.True(t, strings.Contains(out, name), name)
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	pptxPath := filepath.Join(dir, "review.pptx")

	_, err := run(t, "deck", pptxPath, "--template", "review", "--author", "Ada")
	require.NoError(t, err)

	out, err := run(t, "inspect", pptxPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Title: Project Review\n")
	assert.Contains(t, out, "Creator: Ada\n")
	assert.Contains(t, out, "Slides: 5\n")
	assert.Contains(t, out, "\nSlide 1:\n  [title] ")
	assert.Contains(t, out, `=> title "Project Review", 1 content blocks`)
	assert.Contains(t, out, `=> title "Questions", 1 content blocks`)
}

func TestHistory_NotConfigured(t *testing.T) {
	_, err := run(t, "history")
	assert.ErrorContains(t, err, "no conversion log configured")

	_, err = run(t, "history", "--clear")
	assert.ErrorContains(t, err, "no conversion log configured")
}

func TestDefaultConfigFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	for _, env := range []string{"GEMINI_KEY", "DB_URL", "PG_HOST", "SLIDEPRESS_DECK_SOURCE", "SLIDEPRESS_DECK_TEMPLATE"} {
		t.Setenv(env, "")
	}
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(config.DefaultFile, []byte("deck:\n  template: review\n"), 0644))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"deck", "talk.pptx"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "talk.pptx (5 slides)")

	_, err := os.Stat(filepath.Join(dir, "talk.pptx"))
	assert.NoError(t, err)
}
