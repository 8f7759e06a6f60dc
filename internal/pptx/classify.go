package pptx

import "strings"

// Classification is the title and content blocks inferred from one slide.
type Classification struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// Classify infers a slide title and its content blocks from the shapes, in
// shape order. Blank shapes are skipped. The title placeholder wins the title
// when nothing has claimed it yet; otherwise the first text seen before any
// content becomes the title. Everything else is a content block.
func Classify(shapes []Shape) Classification {
	var c Classification
	for _, shape := range shapes {
		text := shape.PlainText()
		if strings.TrimSpace(text) == "" {
			continue
		}

		switch {
		case c.Title == "" && shape.Kind == KindTitle:
			c.Title = text
		case c.Title == "" && len(c.Content) == 0:
			c.Title = text
		default:
			c.Content = append(c.Content, text)
		}
	}
	return c
}

// ClassifyDocument classifies every slide of doc in order.
func ClassifyDocument(doc *Document) []Classification {
	out := make([]Classification, 0, len(doc.Slides))
	for _, slide := range doc.Slides {
		out = append(out, Classify(slide.Shapes))
	}
	return out
}
