package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// XML namespace constants
const (
	nsRelationships  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsOfficeDocRels  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsDCTerms        = "http://purl.org/dc/terms/"
	nsDC             = "http://purl.org/dc/elements/1.1/"
	nsCoreProperties = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtProperties  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsXSI            = "http://www.w3.org/2001/XMLSchema-instance"

	relTypeSlide       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeSlideMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relTypeSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTypeTheme       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relTypePresProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	relTypeViewProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	relTypeTableStyles = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"
	relTypeOfficeDoc   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps   = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtProps    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"

	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps    = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles  = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctRels         = "application/vnd.openxmlformats-package.relationships+xml"
)

// namespace attributes shared by every PresentationML part
const pmlNamespaces = `xmlns:a="` + nsDrawingML + `" xmlns:r="` + nsOfficeDocRels + `" xmlns:p="` + nsPresentationML + `"`

func writeXMLToZip(zw *zip.Writer, name string, v interface{}) error {
	fw, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s in zip: %w", name, err)
	}
	if _, err := fw.Write([]byte(xml.Header)); err != nil {
		return err
	}
	enc := xml.NewEncoder(fw)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return nil
}

func writeRawXMLToZip(zw *zip.Writer, name string, content string) error {
	fw, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s in zip: %w", name, err)
	}
	_, err = fw.Write([]byte(content))
	return err
}

// --- Content Types ---

type xmlContentTypes struct {
	XMLName   xml.Name      `xml:"Types"`
	Xmlns     string        `xml:"xmlns,attr"`
	Defaults  []xmlDefault  `xml:"Default"`
	Overrides []xmlOverride `xml:"Override"`
}

type xmlDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func (p *Presentation) writeContentTypes(zw *zip.Writer) error {
	ct := xmlContentTypes{
		Xmlns: nsContentTypes,
		Defaults: []xmlDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []xmlOverride{
			{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
			{PartName: "/ppt/slideMasters/slideMaster1.xml", ContentType: ctSlideMaster},
		},
	}
	for _, l := range allLayouts {
		ct.Overrides = append(ct.Overrides, xmlOverride{
			PartName:    "/" + l.partName(),
			ContentType: ctSlideLayout,
		})
	}
	for i := range p.slides {
		ct.Overrides = append(ct.Overrides, xmlOverride{
			PartName:    fmt.Sprintf("/ppt/slides/slide%d.xml", i+1),
			ContentType: ctSlide,
		})
	}
	ct.Overrides = append(ct.Overrides,
		xmlOverride{PartName: "/ppt/theme/theme1.xml", ContentType: ctTheme},
		xmlOverride{PartName: "/ppt/presProps.xml", ContentType: ctPresProps},
		xmlOverride{PartName: "/ppt/viewProps.xml", ContentType: ctViewProps},
		xmlOverride{PartName: "/ppt/tableStyles.xml", ContentType: ctTableStyles},
		xmlOverride{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
		xmlOverride{PartName: "/docProps/app.xml", ContentType: ctExtProps},
	)
	return writeXMLToZip(zw, contentTypesPart, ct)
}

// --- Relationships ---

type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Xmlns         string            `xml:"xmlns,attr"`
	Relationships []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

func writeRels(zw *zip.Writer, name string, rels ...relationshipXML) error {
	return writeXMLToZip(zw, name, relationshipsXML{
		Xmlns:         nsRelationships,
		Relationships: rels,
	})
}

func (p *Presentation) writeRootRels(zw *zip.Writer) error {
	return writeRels(zw, "_rels/.rels",
		relationshipXML{ID: "rId1", Type: relTypeOfficeDoc, Target: "ppt/presentation.xml"},
		relationshipXML{ID: "rId2", Type: relTypeCoreProps, Target: "docProps/core.xml"},
		relationshipXML{ID: "rId3", Type: relTypeExtProps, Target: "docProps/app.xml"},
	)
}

// presentation.xml.rels: master is rId1, slides follow, then the shared parts.
func (p *Presentation) writePresentationRels(zw *zip.Writer) error {
	rels := []relationshipXML{
		{ID: "rId1", Type: relTypeSlideMaster, Target: "slideMasters/slideMaster1.xml"},
	}
	for i := range p.slides {
		rels = append(rels, relationshipXML{
			ID:     slideRelID(i),
			Type:   relTypeSlide,
			Target: fmt.Sprintf("slides/slide%d.xml", i+1),
		})
	}
	next := len(p.slides) + 2
	for _, part := range []struct{ typ, target string }{
		{relTypePresProps, "presProps.xml"},
		{relTypeViewProps, "viewProps.xml"},
		{relTypeTableStyles, "tableStyles.xml"},
		{relTypeTheme, "theme/theme1.xml"},
	} {
		rels = append(rels, relationshipXML{
			ID:     fmt.Sprintf("rId%d", next),
			Type:   part.typ,
			Target: part.target,
		})
		next++
	}
	return writeRels(zw, presentationRelsPart, rels...)
}

func slideRelID(i int) string {
	return fmt.Sprintf("rId%d", i+2)
}

// --- Presentation ---

func (p *Presentation) writePresentation(zw *zip.Writer) error {
	var b strings.Builder
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<p:presentation %s saveSubsetFonts="1">`, pmlNamespaces)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	if len(p.slides) > 0 {
		b.WriteString(`<p:sldIdLst>`)
		for i := range p.slides {
			fmt.Fprintf(&b, `<p:sldId id="%d" r:id="%s"/>`, 256+i, slideRelID(i))
		}
		b.WriteString(`</p:sldIdLst>`)
	}
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, p.Width, p.Height)
	fmt.Fprintf(&b, `<p:notesSz cx="%d" cy="%d"/>`, p.Height, p.Width)
	b.WriteString(`</p:presentation>`)
	return writeRawXMLToZip(zw, presentationPart, b.String())
}

func (p *Presentation) writePresProps(zw *zip.Writer) error {
	return writeRawXMLToZip(zw, "ppt/presProps.xml",
		xml.Header+`<p:presentationPr `+pmlNamespaces+`/>`)
}

func (p *Presentation) writeViewProps(zw *zip.Writer) error {
	return writeRawXMLToZip(zw, "ppt/viewProps.xml",
		xml.Header+`<p:viewPr `+pmlNamespaces+`/>`)
}

func (p *Presentation) writeTableStyles(zw *zip.Writer) error {
	return writeRawXMLToZip(zw, "ppt/tableStyles.xml",
		xml.Header+`<a:tblStyleLst xmlns:a="`+nsDrawingML+`" def="{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"/>`)
}

// --- Document Properties ---

func (p *Presentation) writeAppProperties(zw *zip.Writer) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="%s" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
  <Application>%s</Application>
  <Slides>%d</Slides>
</Properties>`, nsExtProperties, xmlEscape(p.Properties.Application), len(p.slides))
	return writeRawXMLToZip(zw, "docProps/app.xml", content)
}

func (p *Presentation) writeCoreProperties(zw *zip.Writer) error {
	props := p.Properties
	created := props.Created
	if created.IsZero() {
		created = time.Now()
	}
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="%s" xmlns:dc="%s" xmlns:dcterms="%s" xmlns:xsi="%s">
  <dc:title>%s</dc:title>
  <dc:creator>%s</dc:creator>
  <cp:lastModifiedBy>%s</cp:lastModifiedBy>
  <cp:revision>1</cp:revision>
  <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`,
		nsCoreProperties, nsDC, nsDCTerms, nsXSI,
		xmlEscape(props.Title),
		xmlEscape(props.Creator),
		xmlEscape(props.Creator),
		created.UTC().Format("2006-01-02T15:04:05Z"),
		created.UTC().Format("2006-01-02T15:04:05Z"),
	)
	return writeRawXMLToZip(zw, corePropsPart, content)
}

// xmlEscape escapes special XML characters using the standard library.
func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
