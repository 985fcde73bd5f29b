package textdoc

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var codeFont = Font{Family: "Courier", Size: 10}

// FromMarkdown converts Markdown source into document blocks.
//
// Headings, paragraphs, lists, thematic breaks, block quotes and code blocks
// are supported. Inline markup is reduced to its text; raw HTML is dropped.
func FromMarkdown(source string) []Block {
	src := []byte(source)
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var blocks []Block
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		blocks = append(blocks, markdownBlocks(n, src)...)
	}
	return blocks
}

// AppendMarkdown converts source and appends the blocks to the document.
func (d *Document) AppendMarkdown(source string) *Document {
	return d.Append(FromMarkdown(source)...)
}

func markdownBlocks(n ast.Node, src []byte) []Block {
	switch n := n.(type) {
	case *ast.Heading:
		return []Block{Heading(n.Level, inlineText(n, src))}
	case *ast.Paragraph, *ast.TextBlock:
		return []Block{Paragraph(inlineText(n, src))}
	case *ast.List:
		return []Block{{Type: BlockList, Ordered: n.IsOrdered(), Items: listItems(n, src, "")}}
	case *ast.ThematicBreak:
		return []Block{Rule()}
	case *ast.Blockquote:
		var blocks []Block
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			for _, b := range markdownBlocks(c, src) {
				if b.Type == BlockParagraph {
					b.Font = &Font{Style: "I"}
				}
				blocks = append(blocks, b)
			}
		}
		return blocks
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var sb strings.Builder
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			sb.Write(seg.Value(src))
		}
		f := codeFont
		return []Block{{Type: BlockParagraph, Text: strings.TrimRight(sb.String(), "\n"), Font: &f}}
	}
	return nil
}

// listItems flattens a list; nested items follow their parent, indented.
func listItems(list *ast.List, src []byte, indent string) []string {
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var parts []string
		var nested []string
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if sub, ok := c.(*ast.List); ok {
				nested = append(nested, listItems(sub, src, indent+"  ")...)
				continue
			}
			parts = append(parts, inlineText(c, src))
		}
		items = append(items, indent+strings.Join(parts, " "))
		items = append(items, nested...)
	}
	return items
}

func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.HardLineBreak() {
				sb.WriteByte('\n')
			} else if t.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		case *ast.AutoLink:
			sb.Write(t.Label(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
