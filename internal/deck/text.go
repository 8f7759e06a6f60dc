package deck

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// DateLayout is the format of the {{date}} tag.
const DateLayout = "January 02, 2006"

var (
	tagRegex  = regexp.MustCompile(`{{(.*?)}}`)
	htmlRegex = regexp.MustCompile(`<[^>]+>`)
)

// Expand replaces {{name}} tags with values from vars. Names are matched
// case-insensitively with surrounding spaces ignored; unknown tags are left
// as they are.
func Expand(text string, vars map[string]string) string {
	return tagRegex.ReplaceAllStringFunc(text, func(tag string) string {
		name := strings.ToLower(strings.TrimSpace(tag[2 : len(tag)-2]))
		if v, ok := vars[name]; ok {
			return v
		}
		return tag
	})
}

// CleanText strips HTML tags and emoji, collapses whitespace runs to a
// single space and returns the NFC form of the result.
func CleanText(text string) string {
	text = htmlRegex.ReplaceAllString(text, "")
	text = strings.Map(func(r rune) rune {
		if isEmoji(r) {
			return -1
		}
		return r
	}, text)
	text = strings.Join(strings.Fields(text), " ")
	return norm.NFC.String(text)
}

// isEmoji reports pictographic symbols and the joiners and variation
// selectors that decorate them. Symbols below U+2600 such as © and ™ are kept.
func isEmoji(r rune) bool {
	switch {
	case r == '\u200d', r == '\u20e3':
		return true
	case r >= '\ufe00' && r <= '\ufe0f':
		return true
	case r >= 0x1f3fb && r <= 0x1f3ff: // skin tones
		return true
	case r >= 0x2600 && unicode.Is(unicode.So, r):
		return true
	}
	return false
}
