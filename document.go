package reportdoc

import "strings"

// Document is a segmented report: title, subtitle, intro block, ordered
// sections, and the raw body of the extracted "References" section.
// A Document is built by a single Segment call and never mutated afterwards.
type Document struct {
	Title         string
	Subtitle      string
	IntroLines    []string
	Sections      []Section
	ReferencesRaw []string
}

// Section is one "## "-level heading and the raw lines of its body.
type Section struct {
	Heading   string
	BodyLines []string
}

// DisplayHeading returns the heading with any leading ordinal prefix
// (e.g. "3. ") stripped. Display numbering is assigned by final position,
// not by the source prefix.
func (s Section) DisplayHeading() string {
	return StripOrdinal(strings.TrimSpace(s.Heading))
}

// AnchorID returns the URL-fragment identifier derived from the display
// heading. Anchor ids are not deduplicated: two headings that normalize to
// the same slug collide. Preserved as-is pending a decision on a dedup
// scheme.
func (s Section) AnchorID() string {
	return Slugify(s.DisplayHeading())
}

// referencesHeading is the section heading that marks the bibliography.
const referencesHeading = "References"

// Segment splits raw markdown text into a Document.
//
// Scanning is line-oriented and single-pass: the first "# " line sets the
// title (later "# " lines receive no special treatment), the first "## "
// line becomes the subtitle, every subsequent "## " line opens a new
// section, and lines before the first section land in IntroLines. After the
// scan, the first section whose display heading case-insensitively equals
// "References" is pulled out of the section sequence and its body becomes
// ReferencesRaw.
//
// Absent title, subtitle, or references yield empty values; every consumer
// treats those as valid, renderable defaults.
func Segment(text string) Document {
	var doc Document

	subtitleSet := false
	sectionOpen := false

	for _, line := range strings.Split(normalizeNewlines(text), "\n") {
		switch {
		case strings.HasPrefix(line, "# ") && doc.Title == "":
			doc.Title = strings.TrimSpace(line[2:])

		case strings.HasPrefix(line, "## "):
			heading := strings.TrimSpace(line[3:])
			if !subtitleSet {
				doc.Subtitle = heading
				subtitleSet = true
				continue
			}
			doc.Sections = append(doc.Sections, Section{Heading: heading})
			sectionOpen = true

		case sectionOpen:
			last := len(doc.Sections) - 1
			doc.Sections[last].BodyLines = append(doc.Sections[last].BodyLines, line)

		default:
			doc.IntroLines = append(doc.IntroLines, line)
		}
	}

	doc.Sections, doc.ReferencesRaw = extractReferences(doc.Sections)
	return doc
}

// extractReferences removes the first "References" section (first match wins
// when duplicated) and returns the remaining sections plus its body lines.
func extractReferences(sections []Section) ([]Section, []string) {
	for i, s := range sections {
		if strings.EqualFold(s.DisplayHeading(), referencesHeading) {
			kept := make([]Section, 0, len(sections)-1)
			kept = append(kept, sections[:i]...)
			kept = append(kept, sections[i+1:]...)
			return kept, s.BodyLines
		}
	}
	return sections, nil
}

// normalizeNewlines converts \r\n and \r to \n.
func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
