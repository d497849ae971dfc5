package reportdoc

import "strings"

// RenderBlocks serializes a block sequence to HTML. All text runs through
// the citation-aware inline renderer; lists are emitted compact, one block
// per line in output.
func RenderBlocks(blocks []Block) string {
	var b strings.Builder

	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		switch n := block.(type) {
		case HeadingBlock:
			b.WriteString("<h3>")
			b.WriteString(RenderInline(n.Text))
			b.WriteString("</h3>")
		case ParagraphBlock:
			b.WriteString("<p>")
			b.WriteString(RenderInline(n.Text))
			b.WriteString("</p>")
		case OrderedListBlock:
			writeList(&b, "ol", n.Items)
		case UnorderedListBlock:
			writeList(&b, "ul", n.Items)
		}
	}

	return b.String()
}

// RenderSectionBody parses and renders a section body in one step.
func RenderSectionBody(lines []string) string {
	return RenderBlocks(ParseBlocks(lines))
}

func writeList(b *strings.Builder, tag string, items []string) {
	b.WriteString("<" + tag + ">")
	for _, item := range items {
		b.WriteString("<li>")
		b.WriteString(RenderInline(item))
		b.WriteString("</li>")
	}
	b.WriteString("</" + tag + ">")
}
