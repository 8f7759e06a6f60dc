package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Slide dimensions in EMUs.
const (
	EMUPerInch    = 914400
	DefaultWidth  = 10 * EMUPerInch
	DefaultHeight = 15 * EMUPerInch / 2
)

// Properties are the document properties written to docProps.
type Properties struct {
	Title       string
	Creator     string
	Application string
	Created     time.Time
}

// Font is the run formatting applied to a whole paragraph. Size is in
// points and Color is an RRGGBB hex string; zero values inherit from the
// layout.
type Font struct {
	Size  float64
	Bold  bool
	Color string
}

// Paragraph is one paragraph of a text frame. SpaceAfter is in points.
type Paragraph struct {
	Text       string
	Level      int
	Font       Font
	SpaceAfter float64
}

// TextFrame is the text placed into one placeholder of a slide.
type TextFrame struct {
	Kind       Kind
	Paragraphs []Paragraph
}

// SlideContent is a slide under construction.
type SlideContent struct {
	Layout Layout
	Frames []TextFrame
}

// Add appends a text frame for a placeholder of the given kind. Title
// frames fill the layout title; other frames fill the body slots in order.
func (s *SlideContent) Add(kind Kind, paras ...Paragraph) *SlideContent {
	s.Frames = append(s.Frames, TextFrame{Kind: kind, Paragraphs: paras})
	return s
}

// Presentation is a deck to be written as PPTX.
type Presentation struct {
	Width      int64
	Height     int64
	Properties Properties
	slides     []*SlideContent
}

// NewPresentation returns an empty 10in x 7.5in presentation.
func NewPresentation() *Presentation {
	return &Presentation{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Properties: Properties{
			Application: "SlidePress",
		},
	}
}

// AddSlide appends a slide using layout.
func (p *Presentation) AddSlide(layout Layout) *SlideContent {
	s := &SlideContent{Layout: layout}
	p.slides = append(p.slides, s)
	return s
}

// SlideCount returns the number of slides added so far.
func (p *Presentation) SlideCount() int {
	return len(p.slides)
}

// Save writes the presentation to a file. A partially written file is
// removed on failure.
func (p *Presentation) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writeErr := p.Write(f)
	closeErr := f.Close()

	if writeErr != nil {
		os.Remove(path)
		return writeErr
	}
	return closeErr
}

// Write writes the presentation package to w.
func (p *Presentation) Write(w io.Writer) error {
	for i, s := range p.slides {
		if err := s.validate(); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}

	zw := zip.NewWriter(w)

	steps := []func(*zip.Writer) error{
		p.writeContentTypes,
		p.writeRootRels,
		p.writeAppProperties,
		p.writeCoreProperties,
		p.writePresentation,
		p.writePresentationRels,
		p.writePresProps,
		p.writeViewProps,
		p.writeTableStyles,
		p.writeSlideMaster,
		p.writeSlideLayouts,
		p.writeTheme,
	}
	for _, step := range steps {
		if err := step(zw); err != nil {
			return err
		}
	}

	for i, s := range p.slides {
		if err := p.writeSlide(zw, s, i+1); err != nil {
			return err
		}
		if err := writeRels(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1),
			relationshipXML{ID: "rId1", Type: relTypeSlideLayout, Target: "../" + s.Layout.relPath()},
		); err != nil {
			return err
		}
	}

	return zw.Close()
}

// validate checks that every frame has a placeholder slot in the layout.
func (s *SlideContent) validate() error {
	if _, ok := layoutSpecs[s.Layout]; !ok {
		return fmt.Errorf("unknown layout %s", s.Layout)
	}
	titles, bodies := 0, 0
	for _, f := range s.Frames {
		switch f.Kind {
		case KindTitle:
			titles++
		case KindSubtitle, KindBody:
			bodies++
		default:
			return fmt.Errorf("layout %s has no slot for %s frames", s.Layout, f.Kind)
		}
	}
	spec := s.Layout.spec()
	if titles > 1 {
		return fmt.Errorf("layout %s has a single title slot", s.Layout)
	}
	if bodies > len(spec.bodies) {
		return fmt.Errorf("layout %s has %d body slots, got %d frames", s.Layout, len(spec.bodies), bodies)
	}
	return nil
}
