package deck

import (
	"fmt"
	"strings"
	"time"

	"github.com/gnemet/SlidePress/internal/pptx"
)

// Brand colours.
const (
	ColorPrimary   = "667EEA"
	ColorSecondary = "764BA2"
)

var (
	titleSlideTitle    = pptx.Font{Size: 44, Bold: true, Color: ColorPrimary}
	titleSlideSubtitle = pptx.Font{Size: 24, Color: ColorSecondary}
	slideTitle         = pptx.Font{Size: 32, Bold: true, Color: ColorSecondary}
	contentBody        = pptx.Font{Size: 14}
	columnBody         = pptx.Font{Size: 12}
)

const (
	contentSpaceAfter = 6
	columnSpaceAfter  = 4
)

// Options control the values substituted into deck text.
type Options struct {
	// Author overrides the deck's own author for the {{author}} tag.
	Author string
	// Now is the time used for the {{date}} tag; zero means time.Now.
	Now time.Time
}

// Build lays out d as a PPTX presentation.
func Build(d *Deck, opts Options) (*pptx.Presentation, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	author := opts.Author
	if author == "" {
		author = d.Author
	}
	vars := map[string]string{
		"date":   now.Format(DateLayout),
		"author": author,
	}
	text := func(s string) string {
		return CleanText(Expand(s, vars))
	}

	p := pptx.NewPresentation()
	p.Properties.Title = text(d.Title)
	p.Properties.Creator = author
	p.Properties.Created = now
	if p.Properties.Title == "" && len(d.Slides) > 0 {
		p.Properties.Title = text(d.Slides[0].Title)
	}

	for i, s := range d.Slides {
		switch s.kind() {
		case KindTitle:
			slide := p.AddSlide(pptx.LayoutTitle).
				Add(pptx.KindTitle, pptx.Paragraph{Text: text(s.Title), Font: titleSlideTitle})
			if s.Subtitle != "" {
				var paras []pptx.Paragraph
				for _, line := range strings.Split(Expand(s.Subtitle, vars), "\n") {
					paras = append(paras, pptx.Paragraph{Text: CleanText(line), Font: titleSlideSubtitle})
				}
				slide.Add(pptx.KindSubtitle, paras...)
			}

		case KindContent:
			p.AddSlide(pptx.LayoutTitleAndContent).
				Add(pptx.KindTitle, pptx.Paragraph{Text: text(s.Title), Font: slideTitle}).
				Add(pptx.KindBody, bodyParagraphs(s.Items, text, contentBody, contentSpaceAfter)...)

		case KindTwoColumn:
			p.AddSlide(pptx.LayoutTwoContent).
				Add(pptx.KindTitle, pptx.Paragraph{Text: text(s.Title), Font: slideTitle}).
				Add(pptx.KindBody, bodyParagraphs(s.Left, text, columnBody, columnSpaceAfter)...).
				Add(pptx.KindBody, bodyParagraphs(s.Right, text, columnBody, columnSpaceAfter)...)

		default:
			return nil, fmt.Errorf("slide %d: %w %q", i+1, ErrUnknownKind, s.Kind)
		}
	}
	return p, nil
}

// bodyParagraphs returns one paragraph per item that is not blank once
// cleaned.
func bodyParagraphs(items []string, text func(string) string, font pptx.Font, spaceAfter float64) []pptx.Paragraph {
	var paras []pptx.Paragraph
	for _, item := range items {
		t := text(item)
		if t == "" {
			continue
		}
		paras = append(paras, pptx.Paragraph{Text: t, Font: font, SpaceAfter: spaceAfter})
	}
	return paras
}
