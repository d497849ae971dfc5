package reportdoc

import (
	"fmt"
	"strings"
)

// executiveHeading marks the section rendered as a normal panel but kept out
// of the table of contents and its numbering.
const executiveHeading = "Executive Motivation"

// PageOptions carries the presentation inputs the assembler cannot derive
// from the document itself.
type PageOptions struct {
	StyleCSS  string // embedded stylesheet body
	NavScript string // relative path of the external navigation renderer
}

// sectionPanel pairs a section with its precomputed render artifacts.
type sectionPanel struct {
	anchor  string
	heading string // display heading, inline-rendered
	body    string
	number  int // 0 = excluded from TOC numbering
}

// AssemblePage composes the complete HTML document: hero with navigation
// hook, two-column table of contents, one panel per section, the numbered
// reference list, a closing navigation hook, and the external nav-renderer
// script tag. Assembly is pure string composition; all escaping has already
// happened in the inline renderers.
func AssemblePage(doc Document, opts PageOptions) string {
	panels := buildPanels(doc.Sections)
	refs := ParseReferences(doc.ReferencesRaw)

	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", htmlEscaper.Replace(doc.Title))
	b.WriteString("<style>\n")
	b.WriteString(opts.StyleCSS)
	b.WriteString("</style>\n</head>\n<body>\n")

	writeHero(&b, doc)
	b.WriteString("<main>\n")
	writeTOC(&b, panels)
	writePanels(&b, panels)
	writeReferences(&b, refs)

	// Closing panel with the second navigation hook.
	b.WriteString("<section class=\"panel closing\">\n<nav class=\"nav-links\" id=\"nav-bottom\"></nav>\n</section>\n")
	b.WriteString("</main>\n")
	fmt.Fprintf(&b, "<script type=\"module\" src=\"%s\"></script>\n", opts.NavScript)
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

// buildPanels renders every section and assigns sequential numbers starting
// at 1 to the non-excluded ones, in final render order. Any ordinal carried
// by the source heading was already stripped by DisplayHeading.
func buildPanels(sections []Section) []sectionPanel {
	panels := make([]sectionPanel, 0, len(sections))
	number := 0

	for _, s := range sections {
		p := sectionPanel{
			anchor:  s.AnchorID(),
			heading: RenderInlinePlain(s.DisplayHeading()),
			body:    RenderSectionBody(s.BodyLines),
		}
		if !strings.EqualFold(s.DisplayHeading(), executiveHeading) {
			number++
			p.number = number
		}
		panels = append(panels, p)
	}

	return panels
}

func writeHero(b *strings.Builder, doc Document) {
	b.WriteString("<header class=\"hero\">\n")
	fmt.Fprintf(b, "<h1>%s</h1>\n", htmlEscaper.Replace(doc.Title))
	if doc.Subtitle != "" {
		fmt.Fprintf(b, "<p class=\"lead\">%s</p>\n", RenderInlinePlain(doc.Subtitle))
	}
	for _, line := range doc.IntroLines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Fprintf(b, "<p class=\"intro\">%s</p>\n", RenderInline(strings.TrimSpace(line)))
	}
	b.WriteString("<nav class=\"nav-links\" id=\"nav-top\"></nav>\n")
	b.WriteString("</header>\n")
}

func writeTOC(b *strings.Builder, panels []sectionPanel) {
	b.WriteString("<nav class=\"panel toc\">\n<h2>Contents</h2>\n<ol class=\"toc-grid\">\n")
	for _, p := range panels {
		if p.number == 0 {
			continue
		}
		fmt.Fprintf(b, "<li><a href=\"#%s\">%d. %s</a></li>\n", p.anchor, p.number, p.heading)
	}
	b.WriteString("</ol>\n</nav>\n")
}

func writePanels(b *strings.Builder, panels []sectionPanel) {
	for _, p := range panels {
		fmt.Fprintf(b, "<section class=\"panel\" id=\"%s\">\n", p.anchor)
		if p.number == 0 {
			fmt.Fprintf(b, "<h2>%s</h2>\n", p.heading)
		} else {
			fmt.Fprintf(b, "<h2>%d. %s</h2>\n", p.number, p.heading)
		}
		b.WriteString(p.body)
		b.WriteString("\n</section>\n")
	}
}

func writeReferences(b *strings.Builder, refs []Reference) {
	b.WriteString("<section class=\"panel refs\" id=\"references\">\n<h2>References</h2>\n<ol class=\"ref-grid\">\n")
	for _, r := range refs {
		fmt.Fprintf(b, "<li id=\"ref-%d\">%s", r.Index, r.Label)
		if r.URL != "" {
			if r.Label != "" {
				b.WriteString(" ")
			}
			fmt.Fprintf(b, "<a href=\"%s\">%s</a>", r.URL, r.URL)
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("</ol>\n</section>\n")
}
