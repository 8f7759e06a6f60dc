package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
)

// Layout selects one of the slide layouts shipped in every written deck.
type Layout int

const (
	LayoutTitle           Layout = iota // centered title + subtitle
	LayoutTitleAndContent               // title + one body
	LayoutTwoContent                    // title + two half-width bodies
)

var allLayouts = []Layout{LayoutTitle, LayoutTitleAndContent, LayoutTwoContent}

type frame struct {
	x, y, cx, cy int64
}

// placeholderSlot is one placeholder position of a layout.
type placeholderSlot struct {
	name   string
	phType string
	size   string
	idx    int
	frame  frame
}

type layoutSpec struct {
	name   string
	typ    string
	title  placeholderSlot
	bodies []placeholderSlot
}

var (
	titleFrame = frame{457200, 274638, 8229600, 1143000}
	bodyFrame  = frame{457200, 1600200, 8229600, 4525963}
)

var layoutSpecs = map[Layout]layoutSpec{
	LayoutTitle: {
		name:  "Title Slide",
		typ:   "title",
		title: placeholderSlot{name: "Title", phType: "ctrTitle", frame: frame{685800, 2130425, 7772400, 1470025}},
		bodies: []placeholderSlot{
			{name: "Subtitle", phType: "subTitle", idx: 1, frame: frame{1371600, 3886200, 6400800, 1752600}},
		},
	},
	LayoutTitleAndContent: {
		name:  "Title and Content",
		typ:   "obj",
		title: placeholderSlot{name: "Title", phType: "title", frame: titleFrame},
		bodies: []placeholderSlot{
			{name: "Content Placeholder", idx: 1, frame: bodyFrame},
		},
	},
	LayoutTwoContent: {
		name:  "Two Content",
		typ:   "twoObj",
		title: placeholderSlot{name: "Title", phType: "title", frame: titleFrame},
		bodies: []placeholderSlot{
			{name: "Content Placeholder", size: "half", idx: 1, frame: frame{457200, 1600200, 4038600, 4525963}},
			{name: "Content Placeholder", size: "half", idx: 2, frame: frame{4648200, 1600200, 4038600, 4525963}},
		},
	},
}

func (l Layout) spec() layoutSpec {
	if s, ok := layoutSpecs[l]; ok {
		return s
	}
	return layoutSpecs[LayoutTitleAndContent]
}

func (l Layout) String() string {
	if s, ok := layoutSpecs[l]; ok {
		return s.name
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

func (l Layout) relPath() string {
	return fmt.Sprintf("slideLayouts/slideLayout%d.xml", int(l)+1)
}

func (l Layout) partName() string {
	return "ppt/" + l.relPath()
}

func (s placeholderSlot) phXML() string {
	var b strings.Builder
	b.WriteString("<p:ph")
	if s.phType != "" {
		fmt.Fprintf(&b, ` type="%s"`, s.phType)
	}
	if s.size != "" {
		fmt.Fprintf(&b, ` sz="%s"`, s.size)
	}
	if s.idx > 0 {
		fmt.Fprintf(&b, ` idx="%d"`, s.idx)
	}
	b.WriteString("/>")
	return b.String()
}

// placeholderSpXML renders a placeholder shape; txBody is the inner XML of
// p:txBody after bodyPr and lstStyle.
func placeholderSpXML(id int, slot placeholderSlot, txBody string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s %d"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr>%s</p:nvPr></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm></p:spPr>`+
		`<p:txBody><a:bodyPr/><a:lstStyle/>%s</p:txBody></p:sp>`,
		id, xmlEscape(slot.name), id-1, slot.phXML(),
		slot.frame.x, slot.frame.y, slot.frame.cx, slot.frame.cy,
		txBody)
}

const emptyParagraphXML = `<a:p><a:endParaRPr lang="en-US"/></a:p>`

const spTreeHeaderXML = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`

// --- Slide Master ---

const masterTextStylesXML = `<p:txStyles>` +
	`<p:titleStyle><a:lvl1pPr algn="ctr" rtl="0" eaLnBrk="1" latinLnBrk="0" hangingPunct="1"><a:spcBef><a:spcPct val="0"/></a:spcBef><a:buNone/>` +
	`<a:defRPr sz="4400" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill><a:latin typeface="+mj-lt"/><a:ea typeface="+mj-ea"/><a:cs typeface="+mj-cs"/></a:defRPr></a:lvl1pPr></p:titleStyle>` +
	`<p:bodyStyle><a:lvl1pPr marL="342900" indent="-342900" algn="l" rtl="0" eaLnBrk="1" latinLnBrk="0" hangingPunct="1"><a:spcBef><a:spcPct val="20000"/></a:spcBef><a:buFont typeface="Arial"/><a:buChar char="&#8226;"/>` +
	`<a:defRPr sz="3200" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill><a:latin typeface="+mn-lt"/><a:ea typeface="+mn-ea"/><a:cs typeface="+mn-cs"/></a:defRPr></a:lvl1pPr>` +
	`<a:lvl2pPr marL="742950" indent="-285750" algn="l" rtl="0" eaLnBrk="1" latinLnBrk="0" hangingPunct="1"><a:spcBef><a:spcPct val="20000"/></a:spcBef><a:buFont typeface="Arial"/><a:buChar char="&#8211;"/>` +
	`<a:defRPr sz="2800" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill><a:latin typeface="+mn-lt"/><a:ea typeface="+mn-ea"/><a:cs typeface="+mn-cs"/></a:defRPr></a:lvl2pPr></p:bodyStyle>` +
	`<p:otherStyle><a:defPPr><a:defRPr lang="en-US"/></a:defPPr></p:otherStyle>` +
	`</p:txStyles>`

const clrMapXML = `<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`

func (p *Presentation) writeSlideMaster(zw *zip.Writer) error {
	var b strings.Builder
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<p:sldMaster %s>`, pmlNamespaces)
	b.WriteString(`<p:cSld><p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg><p:spTree>`)
	b.WriteString(spTreeHeaderXML)
	b.WriteString(placeholderSpXML(2, placeholderSlot{name: "Title Placeholder", phType: "title", frame: titleFrame}, emptyParagraphXML))
	b.WriteString(placeholderSpXML(3, placeholderSlot{name: "Text Placeholder", phType: "body", idx: 1, frame: bodyFrame}, emptyParagraphXML))
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(clrMapXML)
	b.WriteString(`<p:sldLayoutIdLst>`)
	for i := range allLayouts {
		fmt.Fprintf(&b, `<p:sldLayoutId id="%d" r:id="rId%d"/>`, 2147483649+i, i+1)
	}
	b.WriteString(`</p:sldLayoutIdLst>`)
	b.WriteString(masterTextStylesXML)
	b.WriteString(`</p:sldMaster>`)

	if err := writeRawXMLToZip(zw, "ppt/slideMasters/slideMaster1.xml", b.String()); err != nil {
		return err
	}

	var rels []relationshipXML
	for i, l := range allLayouts {
		rels = append(rels, relationshipXML{
			ID:     fmt.Sprintf("rId%d", i+1),
			Type:   relTypeSlideLayout,
			Target: "../" + l.relPath(),
		})
	}
	rels = append(rels, relationshipXML{
		ID:     fmt.Sprintf("rId%d", len(allLayouts)+1),
		Type:   relTypeTheme,
		Target: "../theme/theme1.xml",
	})
	return writeRels(zw, "ppt/slideMasters/_rels/slideMaster1.xml.rels", rels...)
}

// --- Slide Layouts ---

func (p *Presentation) writeSlideLayouts(zw *zip.Writer) error {
	for _, l := range allLayouts {
		spec := l.spec()

		var b strings.Builder
		b.WriteString(xml.Header)
		fmt.Fprintf(&b, `<p:sldLayout %s type="%s" preserve="1">`, pmlNamespaces, spec.typ)
		fmt.Fprintf(&b, `<p:cSld name="%s"><p:spTree>`, xmlEscape(spec.name))
		b.WriteString(spTreeHeaderXML)
		id := 2
		b.WriteString(placeholderSpXML(id, spec.title, emptyParagraphXML))
		for _, slot := range spec.bodies {
			id++
			b.WriteString(placeholderSpXML(id, slot, emptyParagraphXML))
		}
		b.WriteString(`</p:spTree></p:cSld>`)
		b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
		b.WriteString(`</p:sldLayout>`)

		if err := writeRawXMLToZip(zw, l.partName(), b.String()); err != nil {
			return err
		}
		if err := writeRels(zw, fmt.Sprintf("ppt/slideLayouts/_rels/slideLayout%d.xml.rels", int(l)+1),
			relationshipXML{ID: "rId1", Type: relTypeSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
		); err != nil {
			return err
		}
	}
	return nil
}

// --- Theme ---

const themeXML = `<a:theme xmlns:a="` + nsDrawingML + `" name="SlidePress"><a:themeElements>` +
	`<a:clrScheme name="SlidePress">` +
	`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>` +
	`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="333333"/></a:dk2>` +
	`<a:lt2><a:srgbClr val="EEEEEE"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="667EEA"/></a:accent1>` +
	`<a:accent2><a:srgbClr val="764BA2"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="9BBB59"/></a:accent3>` +
	`<a:accent4><a:srgbClr val="8064A2"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="4BACC6"/></a:accent5>` +
	`<a:accent6><a:srgbClr val="F79646"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="0000FF"/></a:hlink>` +
	`<a:folHlink><a:srgbClr val="800080"/></a:folHlink>` +
	`</a:clrScheme>` +
	`<a:fontScheme name="SlidePress">` +
	`<a:majorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>` +
	`</a:fontScheme>` +
	`<a:fmtScheme name="SlidePress">` +
	`<a:fillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:fillStyleLst>` +
	`<a:lnStyleLst>` +
	`<a:ln w="9525"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln w="25400"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln w="38100"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`</a:lnStyleLst>` +
	`<a:effectStyleLst>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`</a:effectStyleLst>` +
	`<a:bgFillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:bgFillStyleLst>` +
	`</a:fmtScheme>` +
	`</a:themeElements><a:objectDefaults/><a:extraClrSchemeLst/></a:theme>`

func (p *Presentation) writeTheme(zw *zip.Writer) error {
	return writeRawXMLToZip(zw, "ppt/theme/theme1.xml", xml.Header+themeXML)
}
