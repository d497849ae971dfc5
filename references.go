package reportdoc

import (
	"regexp"
	"strings"

	"github.com/rod-americo/reportdoc/internal/fileutil"
)

// refMarker matches a leading "N. " bibliography marker.
var refMarker = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)

// Reference is one parsed bibliography entry. Index is the 1-based position
// in final list order, which is also the entry's "ref-N" anchor; the source
// marker number is not preserved, so a bibliography with gaps or reordered
// numbering silently diverges from its own printed numbers. Preserved as-is
// pending a decision on marker-faithful anchors.
type Reference struct {
	Index int
	Label string // rendered HTML, citation-free
	URL   string // empty when the line carries no trailing URL
}

// ParseReferences converts the raw lines of a references section into
// ordered Reference entries.
//
// Each non-empty line is scanned for a leading "N. " marker. With a marker,
// the remainder is split on a trailing bare http(s) URL when one ends the
// line; without a marker, the whole line degrades gracefully to an unlinked
// plain-text entry. Labels are rendered with the citation-free inline
// renderer; URLs are emitted verbatim into href attributes.
func ParseReferences(lines []string) []Reference {
	var refs []Reference

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := refMarker.FindStringSubmatch(line)
		if m == nil {
			refs = append(refs, Reference{
				Index: len(refs) + 1,
				Label: RenderInlinePlain(line),
			})
			continue
		}

		label, url := splitTrailingURL(m[2])
		refs = append(refs, Reference{
			Index: len(refs) + 1,
			Label: RenderInlinePlain(label),
			URL:   url,
		})
	}

	return refs
}

// splitTrailingURL splits "label https://..." into its parts when the last
// whitespace-separated token is a bare http(s) URL. Otherwise the whole body
// is the label.
func splitTrailingURL(body string) (label, url string) {
	body = strings.TrimSpace(body)

	idx := strings.LastIndexAny(body, " \t")
	if idx == -1 {
		if fileutil.IsURL(body) {
			return "", body
		}
		return body, ""
	}

	last := body[idx+1:]
	if fileutil.IsURL(last) {
		return strings.TrimSpace(body[:idx]), last
	}
	return body, ""
}
