package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnemet/SlidePress/internal/pptx"
)

var fixedTime = time.Date(2025, 1, 2, 15, 4, 0, 0, time.UTC)

func TestEscape(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;&amp;&quot;&#39;&lt;/b&gt;", Escape(`<b>&"'</b>`))
	assert.Equal(t, "plain", Escape("plain"))
	assert.Equal(t, "&amp;amp;", Escape("&amp;"))
}

func TestIsTitleSlide(t *testing.T) {
	tests := []struct {
		index, total int
		title        string
		want         bool
	}{
		{1, 5, "Intro", true},
		{5, 5, "Outro", true},
		{3, 5, "Thank You!", true},
		{3, 5, "Questions & Discussion", true},
		{3, 5, "Details", false},
		{3, 5, "thank you", false},
		{1, 1, "", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsTitleSlide(tt.index, tt.total, tt.title), "%d/%d %q", tt.index, tt.total, tt.title)
	}
}

func TestIsBulletBlock(t *testing.T) {
	assert.True(t, IsBulletBlock("• one\n• two"))
	assert.True(t, IsBulletBlock("intro\n  - item"))
	assert.True(t, IsBulletBlock("* star"))
	assert.False(t, IsBulletBlock("plain text\nmore text"))
	assert.False(t, IsBulletBlock("\n\n"))
}

func TestStripBullet(t *testing.T) {
	assert.Equal(t, "one", StripBullet("•   one"))
	assert.Equal(t, "two", StripBullet("-two"))
	assert.Equal(t, "three *", StripBullet("* three *"))
	assert.Equal(t, "plain", StripBullet("plain"))
}

func TestRender_Document(t *testing.T) {
	page := Page{
		Title: "Deck <1>",
		Slides: []pptx.Classification{
			{Title: "Intro", Content: []string{"Welcome"}},
			{Title: "Details", Content: []string{"• A\n• B", "", "Line one\n\nLine two"}},
			{Title: "Thank You"},
		},
		GeneratedAt: fixedTime,
	}
	out := string(Render(page))

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>\n<html lang=\"en\">"))
	assert.Contains(t, out, "<title>Deck &lt;1&gt;</title>")

	assert.Equal(t, 1, strings.Count(out, `<div class="slide">`))
	assert.Equal(t, 2, strings.Count(out, `<div class="slide title-slide">`))

	assert.Contains(t, out, `<div class="slide-number">Slide 1 of 3</div>`)
	assert.Contains(t, out, `<div class="slide-number">Slide 3 of 3</div>`)
	assert.Contains(t, out, "<h1>Intro</h1>")
	assert.Contains(t, out, `<h2 class="slide-title">Details</h2>`)
	assert.Contains(t, out, "<h1>Thank You</h1>")

	assert.Contains(t, out, "<ul>\n<li>A</li>\n<li>B</li>\n</ul>\n")
	assert.Contains(t, out, "<p>Line one</p>\n<p>Line two</p>\n")
	assert.NotContains(t, out, "<p></p>")

	assert.Contains(t, out, "Converted from PowerPoint: January 02, 2025 at 03:04 PM")
	assert.Contains(t, out, "Total Slides: 3")
	assert.Contains(t, out, "<p><strong>Deck &lt;1&gt; - Presentation</strong></p>")
	assert.NotContains(t, out, `class="summary"`)
	assert.True(t, strings.HasSuffix(out, "</html>\n"))
}

func TestRender_SlideWithoutTitleOrContent(t *testing.T) {
	out := string(Render(Page{
		Title:       "x",
		Slides:      []pptx.Classification{{}, {}, {}},
		GeneratedAt: fixedTime,
	}))

	assert.Equal(t, 3, strings.Count(out, `<div class="slide-number">`))
	assert.NotContains(t, out, "<h1>")
	assert.NotContains(t, out, "<h2")
	assert.NotContains(t, out, `<div class="slide-content">`)
}

func TestRender_EscapesContent(t *testing.T) {
	out := string(Render(Page{
		Title: "t",
		Slides: []pptx.Classification{
			{Title: "a", Content: []string{`<b>&"'</b>`}},
			{Title: `"quoted"`, Content: []string{"- <li>"}},
			{Title: "c"},
		},
		GeneratedAt: fixedTime,
	}))

	assert.Contains(t, out, "<p>&lt;b&gt;&amp;&quot;&#39;&lt;/b&gt;</p>")
	assert.Contains(t, out, `<h2 class="slide-title">&quot;quoted&quot;</h2>`)
	assert.Contains(t, out, "<li>&lt;li&gt;</li>")
	assert.NotContains(t, out, "<b>")
}

func TestRender_EmptyDocument(t *testing.T) {
	out := string(Render(Page{Title: "Empty", GeneratedAt: fixedTime}))
	assert.NotContains(t, out, `<div class="slide`)
	assert.Contains(t, out, "Total Slides: 0")
}

func TestRender_LanguageAndSummary(t *testing.T) {
	out := string(Render(Page{
		Title:       "Bemutató",
		Lang:        "hu",
		Slides:      []pptx.Classification{{Title: "Első"}, {Title: "Második"}},
		GeneratedAt: fixedTime,
		Summary:     "Short & sweet.\nSecond line.",
	}))

	assert.Contains(t, out, `<html lang="hu">`)
	assert.Contains(t, out, `<div class="slide-number">2. dia / 2</div>`)
	assert.Contains(t, out, "<h3>Összefoglaló</h3>")
	assert.Contains(t, out, "<p>Short &amp; sweet.</p>\n<p>Second line.</p>")
	assert.Contains(t, out, "2025. 01. 02. 15:04")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite(t *testing.T) {
	page := Page{Title: "t", GeneratedAt: fixedTime}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, page))
	assert.Equal(t, Render(page), buf.Bytes())

	assert.EqualError(t, Write(failingWriter{}, page), "disk full")
}
