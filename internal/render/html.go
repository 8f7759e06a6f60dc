// Package render turns classified slides into a single static HTML page.
package render

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/gnemet/SlidePress/internal/i18n"
	"github.com/gnemet/SlidePress/internal/pptx"
)

// Page is everything needed to render one document.
type Page struct {
	Title       string
	Lang        string
	Slides      []pptx.Classification
	GeneratedAt time.Time
	// Summary is optional free text shown above the footer.
	Summary string
}

var (
	bulletPrefixes = []string{"•", "-", "*"}
	bulletMarker   = regexp.MustCompile(`^[•\-\*]\s*`)

	escaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
)

// Escape escapes the five HTML special characters.
func Escape(text string) string {
	return escaper.Replace(text)
}

// IsTitleSlide reports whether the slide at 1-based position index of total
// gets the title-slide style.
func IsTitleSlide(index, total int, title string) bool {
	return index == 1 || index == total ||
		strings.Contains(title, "Thank You") || strings.Contains(title, "Questions")
}

// IsBulletBlock reports whether any non-blank line of block starts with a
// bullet glyph.
func IsBulletBlock(block string) bool {
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, prefix := range bulletPrefixes {
			if strings.HasPrefix(line, prefix) {
				return true
			}
		}
	}
	return false
}

// StripBullet removes a leading bullet glyph and the spaces after it.
func StripBullet(line string) string {
	return bulletMarker.ReplaceAllString(line, "")
}

// Render returns the full HTML document for page.
func Render(page Page) []byte {
	var b bytes.Buffer
	lang := page.Lang
	if lang == "" {
		lang = i18n.DefaultLang
	}
	total := len(page.Slides)

	fmt.Fprintf(&b, `<!DOCTYPE html>
<html lang="%s">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
%s    </style>
</head>
<body>
    <div class="container">
`, Escape(lang), Escape(page.Title), stylesheet)

	for i, slide := range page.Slides {
		writeSlide(&b, lang, i+1, total, slide)
	}

	if page.Summary != "" {
		fmt.Fprintf(&b, "<div class=\"summary\">\n<h3>%s</h3>\n", Escape(i18n.T(lang, "summary")))
		writeParagraphs(&b, page.Summary)
		b.WriteString("</div>\n")
	}

	fmt.Fprintf(&b, `        <div class="footer">
            <p><strong>%s - %s</strong></p>
            <p>%s</p>
            <p>%s</p>
        </div>
    </div>
</body>
</html>
`,
		Escape(page.Title),
		Escape(i18n.T(lang, "presentation")),
		Escape(i18n.Tf(lang, "converted_from", page.GeneratedAt.Format(i18n.T(lang, "timestamp_layout")))),
		Escape(i18n.Tf(lang, "total_slides", total)),
	)

	return b.Bytes()
}

// Write renders page into w.
func Write(w io.Writer, page Page) error {
	_, err := w.Write(Render(page))
	return err
}

func writeSlide(b *bytes.Buffer, lang string, index, total int, slide pptx.Classification) {
	titleSlide := IsTitleSlide(index, total, slide.Title)

	class := "slide"
	if titleSlide {
		class += " title-slide"
	}
	fmt.Fprintf(b, "<div class=\"%s\">\n", class)
	fmt.Fprintf(b, "<div class=\"slide-number\">%s</div>\n", Escape(i18n.Tf(lang, "slide_counter", index, total)))

	if slide.Title != "" {
		if titleSlide {
			fmt.Fprintf(b, "<h1>%s</h1>\n", Escape(slide.Title))
		} else {
			fmt.Fprintf(b, "<h2 class=\"slide-title\">%s</h2>\n", Escape(slide.Title))
		}
	}

	if len(slide.Content) > 0 {
		b.WriteString("<div class=\"slide-content\">\n")
		for _, block := range slide.Content {
			if strings.TrimSpace(block) == "" {
				continue
			}
			if IsBulletBlock(block) {
				writeList(b, block)
			} else {
				writeParagraphs(b, block)
			}
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</div>\n")
}

// writeList emits one list item per non-blank line, bullet glyphs removed.
func writeList(b *bytes.Buffer, block string) {
	b.WriteString("<ul>\n")
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintf(b, "<li>%s</li>\n", Escape(StripBullet(line)))
	}
	b.WriteString("</ul>\n")
}

func writeParagraphs(b *bytes.Buffer, block string) {
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintf(b, "<p>%s</p>\n", Escape(line))
	}
}
