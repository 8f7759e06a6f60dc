// Package deck describes slide decks as data and builds them into PPTX
// presentations.
package deck

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned for a slide whose kind is not recognised.
var ErrUnknownKind = errors.New("unknown slide kind")

// Kind selects the layout and styling of a deck slide.
type Kind string

const (
	KindTitle     Kind = "title"
	KindContent   Kind = "content"
	KindTwoColumn Kind = "two_column"
)

// Slide is one slide of a deck. Which fields are used depends on Kind:
// title slides use Subtitle, content slides use Items and two-column slides
// use Left and Right. An empty Kind means content.
type Slide struct {
	Kind     Kind     `yaml:"kind,omitempty"`
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle,omitempty"`
	Items    []string `yaml:"items,omitempty"`
	Left     []string `yaml:"left,omitempty"`
	Right    []string `yaml:"right,omitempty"`
}

// Deck is an ordered list of slides plus document metadata.
type Deck struct {
	Title  string  `yaml:"title"`
	Author string  `yaml:"author,omitempty"`
	Slides []Slide `yaml:"slides"`
}

func (s Slide) kind() Kind {
	if s.Kind == "" {
		return KindContent
	}
	return s.Kind
}

// Validate checks that every slide has a known kind.
func (d *Deck) Validate() error {
	for i, s := range d.Slides {
		switch s.kind() {
		case KindTitle, KindContent, KindTwoColumn:
		default:
			return fmt.Errorf("slide %d: %w %q", i+1, ErrUnknownKind, s.Kind)
		}
	}
	return nil
}
