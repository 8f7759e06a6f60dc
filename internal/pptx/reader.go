package pptx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

const (
	contentTypesPart     = "[Content_Types].xml"
	presentationPart     = "ppt/presentation.xml"
	presentationRelsPart = "ppt/_rels/presentation.xml.rels"
	corePropsPart        = "docProps/core.xml"
)

type presentationXML struct {
	XMLName  xml.Name     `xml:"presentation"`
	SlideIDs []slideIDXML `xml:"sldIdLst>sldId"`
}

type slideIDXML struct {
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

type corePropertiesXML struct {
	Title   string `xml:"http://purl.org/dc/elements/1.1/ title"`
	Creator string `xml:"http://purl.org/dc/elements/1.1/ creator"`
}

// Open reads the presentation at pptxPath.
func Open(pptxPath string) (*Document, error) {
	r, err := zip.OpenReader(pptxPath)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return nil, fmt.Errorf("%w: %s: %v", ErrNotPresentation, pptxPath, err)
		}
		return nil, fmt.Errorf("open %s: %w", pptxPath, err)
	}
	defer r.Close()

	return readArchive(&r.Reader)
}

// Read parses a presentation from ra, which holds size bytes.
func Read(ra io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPresentation, err)
	}
	return readArchive(zr)
}

func readArchive(zr *zip.Reader) (*Document, error) {
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	for _, name := range []string{contentTypesPart, presentationPart} {
		if files[name] == nil {
			return nil, fmt.Errorf("%w: missing %s", ErrNotPresentation, name)
		}
	}

	slidePaths, err := slideOrder(files)
	if err != nil {
		return nil, err
	}

	doc := &Document{Slides: make([]Slide, 0, len(slidePaths))}
	for i, name := range slidePaths {
		f := files[name]
		if f == nil {
			return nil, fmt.Errorf("slide %d: part %s not found", i+1, name)
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		shapes, err := parseSlideXML(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		doc.Slides = append(doc.Slides, Slide{Number: i + 1, Shapes: shapes})
	}

	// Core properties are optional.
	if f := files[corePropsPart]; f != nil {
		var props corePropertiesXML
		if err := decodePart(f, &props); err == nil {
			doc.Title = strings.TrimSpace(props.Title)
			doc.Creator = strings.TrimSpace(props.Creator)
		}
	}

	return doc, nil
}

// slideOrder returns the slide part names in presentation order. The order
// comes from p:sldIdLst resolved through the presentation relationships; if
// that cannot be resolved, slides are ordered by the number in slideN.xml.
func slideOrder(files map[string]*zip.File) ([]string, error) {
	var pres presentationXML
	if err := decodePart(files[presentationPart], &pres); err != nil {
		return nil, fmt.Errorf("parse %s: %w", presentationPart, err)
	}

	targets := make(map[string]string)
	if f := files[presentationRelsPart]; f != nil {
		var rels relationshipsXML
		if err := decodePart(f, &rels); err != nil {
			return nil, fmt.Errorf("parse %s: %w", presentationRelsPart, err)
		}
		for _, rel := range rels.Relationships {
			if rel.Type == relTypeSlide {
				targets[rel.ID] = resolveTarget("ppt", rel.Target)
			}
		}
	}

	var ordered []string
	for _, id := range pres.SlideIDs {
		target, ok := targets[id.RID]
		if !ok {
			ordered = nil
			break
		}
		ordered = append(ordered, target)
	}
	if len(ordered) > 0 {
		return ordered, nil
	}

	var numbered []string
	for name := range files {
		if slideNumber(name) > 0 {
			numbered = append(numbered, name)
		}
	}
	sort.Slice(numbered, func(i, j int) bool {
		return slideNumber(numbered[i]) < slideNumber(numbered[j])
	})
	return numbered, nil
}

// slideNumber extracts N from ppt/slides/slideN.xml, or 0 for any other part.
func slideNumber(name string) int {
	if !strings.HasPrefix(name, "ppt/slides/slide") || !strings.HasSuffix(name, ".xml") {
		return 0
	}
	numStr := strings.TrimSuffix(strings.TrimPrefix(name, "ppt/slides/slide"), ".xml")
	n, err := strconv.Atoi(numStr)
	if err != nil {
		return 0
	}
	return n
}

// resolveTarget turns a relationship target into a part name.
func resolveTarget(base, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(base, target))
}

func newDecoder(r io.Reader) *xml.Decoder {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return dec
}

func decodePart(f *zip.File, v interface{}) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return newDecoder(rc).Decode(v)
}

// parseSlideXML walks a slide part and returns its top-level text shapes in
// document order. Shapes nested in groups, pictures and graphic frames are
// not returned.
func parseSlideXML(r io.Reader) ([]Shape, error) {
	dec := newDecoder(r)

	var (
		shapes     []Shape
		current    *Shape
		hasText    bool
		para       *strings.Builder
		inText     bool
		groupDepth int
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {

		case xml.StartElement:
			switch el.Name.Local {

			case "grpSp":
				groupDepth++

			case "sp": // shape
				if groupDepth == 0 {
					current = &Shape{Kind: KindShape}
					hasText = false
				}

			case "cNvPr":
				if current != nil && current.Name == "" {
					current.Name = attrValue(el, "name")
				}

			case "ph": // placeholder (title/body)
				if current != nil {
					current.Kind = normalizePlaceholder(attrValue(el, "type"))
				}

			case "txBody":
				if current != nil {
					hasText = true
				}

			case "p": // paragraph
				if current != nil && hasText {
					para = &strings.Builder{}
				}

			case "br":
				if para != nil {
					para.WriteString("\n")
				}

			case "t": // actual text
				inText = para != nil
			}

		case xml.CharData:
			if inText {
				para.Write(el)
			}

		case xml.EndElement:
			switch el.Name.Local {

			case "t":
				inText = false

			case "p":
				if current != nil && para != nil {
					current.Paragraphs = append(current.Paragraphs, para.String())
					para = nil
				}

			case "sp":
				if groupDepth == 0 && current != nil {
					if hasText {
						shapes = append(shapes, *current)
					}
					current = nil
				}

			case "grpSp":
				groupDepth--
			}
		}
	}

	return shapes, nil
}

func attrValue(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
