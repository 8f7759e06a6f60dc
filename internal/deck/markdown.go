package deck

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/russross/blackfriday/v2"
)

const markdownExtensions = blackfriday.NoIntraEmphasis | blackfriday.FencedCode |
	blackfriday.Strikethrough | blackfriday.SpaceHeadings | blackfriday.BackslashLineBreak

// section is a level 1 or 2 heading and the blocks up to the next one.
type section struct {
	level  int
	title  string
	blocks []*blackfriday.Node
}

// ParseMarkdown turns an outline into a deck. A level 1 heading starts a
// title slide whose following text becomes the subtitle. A level 2 heading
// starts a content slide whose paragraphs and list items become the items,
// or a two-column slide when the heading is followed by exactly two lists.
// Separate the two lists with an HTML comment or a rule. Text before the
// first heading is ignored.
func ParseMarkdown(data []byte) *Deck {
	root := blackfriday.New(blackfriday.WithExtensions(markdownExtensions)).Parse(data)

	var sections []*section
	for n := root.FirstChild; n != nil; n = n.Next {
		if n.Type == blackfriday.Heading && n.Level <= 2 {
			sections = append(sections, &section{level: n.Level, title: inlineText(n)})
			continue
		}
		if len(sections) == 0 || n.Type == blackfriday.HTMLBlock || n.Type == blackfriday.HorizontalRule {
			continue
		}
		cur := sections[len(sections)-1]
		cur.blocks = append(cur.blocks, n)
	}

	d := &Deck{}
	for _, s := range sections {
		if s.level == 1 {
			if d.Title == "" {
				d.Title = s.title
			}
			d.Slides = append(d.Slides, Slide{
				Kind:     KindTitle,
				Title:    s.title,
				Subtitle: strings.Join(blockLines(s.blocks), "\n"),
			})
			continue
		}

		if len(s.blocks) == 2 && s.blocks[0].Type == blackfriday.List && s.blocks[1].Type == blackfriday.List {
			d.Slides = append(d.Slides, Slide{
				Kind:  KindTwoColumn,
				Title: s.title,
				Left:  listItems(s.blocks[0], 0),
				Right: listItems(s.blocks[1], 0),
			})
			continue
		}
		d.Slides = append(d.Slides, Slide{
			Kind:  KindContent,
			Title: s.title,
			Items: blockLines(s.blocks),
		})
	}
	return d
}

// blockLines flattens blocks into one line per paragraph line or list item.
func blockLines(blocks []*blackfriday.Node) []string {
	var lines []string
	for _, b := range blocks {
		switch b.Type {
		case blackfriday.List:
			lines = append(lines, listItems(b, 0)...)
		case blackfriday.CodeBlock:
			lines = append(lines, splitLines(string(b.Literal))...)
		default:
			lines = append(lines, splitLines(inlineText(b))...)
		}
	}
	return lines
}

// listItems renders each item of list as a line with a bullet, number or
// dash marker depending on the list type and nesting depth.
func listItems(list *blackfriday.Node, depth int) []string {
	ordered := list.ListFlags&blackfriday.ListTypeOrdered != 0
	var lines []string
	num := 0
	for item := list.FirstChild; item != nil; item = item.Next {
		if item.Type != blackfriday.Item {
			continue
		}
		num++

		marker := "• "
		switch {
		case ordered:
			marker = fmt.Sprintf("%d. ", num)
		case depth > 0:
			marker = "- "
		}
		text := strings.Join(splitLines(inlineText(item)), " ")
		lines = append(lines, strings.Repeat("  ", depth)+marker+text)

		for child := item.FirstChild; child != nil; child = child.Next {
			if child.Type == blackfriday.List {
				lines = append(lines, listItems(child, depth+1)...)
			}
		}
	}
	return lines
}

// inlineText collects the text below n, skipping nested lists and raw HTML.
func inlineText(n *blackfriday.Node) string {
	var buf bytes.Buffer
	n.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering {
			if node.Type == blackfriday.Paragraph {
				buf.WriteByte('\n')
			}
			return blackfriday.GoToNext
		}
		switch node.Type {
		case blackfriday.List:
			if node != n {
				return blackfriday.SkipChildren
			}
		case blackfriday.Text, blackfriday.Code:
			buf.Write(node.Literal)
		case blackfriday.Hardbreak, blackfriday.Softbreak:
			buf.WriteByte('\n')
		}
		return blackfriday.GoToNext
	})
	return buf.String()
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
