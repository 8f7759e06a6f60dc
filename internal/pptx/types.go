package pptx

import (
	"errors"
	"strings"
)

var (
	// ErrNotPresentation is returned when the input is not a readable PPTX package.
	ErrNotPresentation = errors.New("not a pptx presentation")
)

// Kind is the role of a text-bearing shape within a slide.
type Kind int

const (
	KindShape       Kind = iota // free text box or auto shape, not a placeholder
	KindTitle                   // title or ctrTitle placeholder
	KindSubtitle                // subTitle placeholder
	KindBody                    // body, obj or untyped placeholder
	KindPlaceholder             // any other placeholder (date, footer, slide number, ...)
)

func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindSubtitle:
		return "subtitle"
	case KindBody:
		return "body"
	case KindPlaceholder:
		return "placeholder"
	default:
		return "shape"
	}
}

// IsPlaceholder reports whether the shape inherits its role from the layout.
func (k Kind) IsPlaceholder() bool {
	return k != KindShape
}

// Shape is one text-bearing region of a slide.
type Shape struct {
	Name string `json:"name,omitempty"`
	Kind Kind   `json:"kind"`
	// Text is a flat plain-text value. When empty, the paragraphs of the
	// text frame are used instead.
	Text       string   `json:"text,omitempty"`
	Paragraphs []string `json:"paragraphs,omitempty"`
}

// PlainText returns the shape text, preferring Text over the paragraphs
// joined with newlines.
func (s Shape) PlainText() string {
	if s.Text != "" {
		return s.Text
	}
	return strings.Join(s.Paragraphs, "\n")
}

// Slide is an ordered sequence of shapes. Number is 1-based.
type Slide struct {
	Number int     `json:"number"`
	Shapes []Shape `json:"shapes"`
}

// Document is a presentation read from disk, slides in presentation order.
type Document struct {
	Title   string  `json:"title,omitempty"`
	Creator string  `json:"creator,omitempty"`
	Slides  []Slide `json:"slides"`
}

// normalizePlaceholder maps a p:ph type attribute to a Kind.
func normalizePlaceholder(ph string) Kind {
	switch ph {
	case "title", "ctrTitle":
		return KindTitle
	case "subTitle":
		return KindSubtitle
	case "body", "obj", "":
		return KindBody
	default:
		return KindPlaceholder
	}
}
