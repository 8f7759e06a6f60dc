package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"math"
	"strings"
)

func (p *Presentation) writeSlide(zw *zip.Writer, s *SlideContent, slideNum int) error {
	spec := s.Layout.spec()

	var b strings.Builder
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<p:sld %s><p:cSld><p:spTree>`, pmlNamespaces)
	b.WriteString(spTreeHeaderXML)

	shapeID := 1
	body := 0
	for _, f := range s.Frames {
		shapeID++
		slot := spec.title
		if f.Kind != KindTitle {
			slot = spec.bodies[body]
			body++
		}
		b.WriteString(placeholderSpXML(shapeID, slot, paragraphsXML(f.Paragraphs)))
	}

	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/slides/slide%d.xml", slideNum), b.String())
}

func paragraphsXML(paras []Paragraph) string {
	if len(paras) == 0 {
		return emptyParagraphXML
	}
	var b strings.Builder
	for _, para := range paras {
		b.WriteString(paragraphXML(para))
	}
	return b.String()
}

// paragraphXML renders one a:p. Newlines inside the text become a:br.
func paragraphXML(para Paragraph) string {
	var b strings.Builder
	b.WriteString("<a:p>")

	if para.Level > 0 || para.SpaceAfter > 0 {
		b.WriteString("<a:pPr")
		if para.Level > 0 {
			fmt.Fprintf(&b, ` lvl="%d"`, para.Level)
		}
		b.WriteString(">")
		if para.SpaceAfter > 0 {
			fmt.Fprintf(&b, `<a:spcAft><a:spcPts val="%d"/></a:spcAft>`, hundredths(para.SpaceAfter))
		}
		b.WriteString("</a:pPr>")
	}

	rPr := runPropertiesXML(para.Font)
	for i, line := range strings.Split(para.Text, "\n") {
		if i > 0 {
			b.WriteString("<a:br/>")
		}
		if line == "" {
			continue
		}
		fmt.Fprintf(&b, "<a:r>%s<a:t>%s</a:t></a:r>", rPr, xmlEscape(line))
	}

	b.WriteString(`<a:endParaRPr lang="en-US"/></a:p>`)
	return b.String()
}

func runPropertiesXML(f Font) string {
	var b strings.Builder
	b.WriteString(`<a:rPr lang="en-US"`)
	if f.Size > 0 {
		fmt.Fprintf(&b, ` sz="%d"`, hundredths(f.Size))
	}
	if f.Bold {
		b.WriteString(` b="1"`)
	}
	b.WriteString(` dirty="0"`)
	if c := normalizeColor(f.Color); c != "" {
		fmt.Fprintf(&b, `><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:rPr>`, c)
	} else {
		b.WriteString("/>")
	}
	return b.String()
}

// hundredths converts points to the 1/100 pt units used by DrawingML.
func hundredths(pt float64) int {
	return int(math.Round(pt * 100))
}

// normalizeColor returns c as upper-case RRGGBB, or "" when c is not a
// six digit hex color.
func normalizeColor(c string) string {
	c = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(c), "#"))
	if len(c) != 6 {
		return ""
	}
	for _, r := range c {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			return ""
		}
	}
	return c
}
