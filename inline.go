package reportdoc

import (
	"regexp"
	"strings"
)

// Precompiled inline grammar patterns.
var (
	// **bold** (non-greedy, no nesting)
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

	// [label](url), url restricted to http(s) with no whitespace
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\s)]+)\)`)

	// [n] citation marker, digits only
	citePattern = regexp.MustCompile(`\[(\d+)\]`)
)

// htmlEscaper escapes the characters that matter inside element content.
// Substitution output is inserted after escaping, so emitted tags survive.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// RenderInline converts one line of raw text to an HTML-safe fragment:
// special characters are escaped first, then **bold** becomes <strong>,
// [label](http...) becomes a hyperlink, and [n] becomes a citation link to
// the matching "#ref-n" anchor. Malformed tokens are left as literal text.
//
// Citation markers are resolved purely syntactically: a number with no
// matching reference still renders as a link to a nonexistent anchor.
// That passthrough is intentional.
func RenderInline(text string) string {
	return citePattern.ReplaceAllString(
		renderBoldAndLinks(text),
		`<a class="cite" href="#ref-$1" aria-label="Reference $1">[$1]</a>`,
	)
}

// RenderInlinePlain is the citation-free variant of RenderInline, used for
// reference-list text so a bibliography entry never links to itself or
// chains to another entry.
func RenderInlinePlain(text string) string {
	return renderBoldAndLinks(text)
}

// renderBoldAndLinks applies the shared escape, bold, and link passes.
// Link substitution runs before citation substitution in RenderInline so
// that "[label](url)" is consumed before "[n]" can match inside it.
func renderBoldAndLinks(text string) string {
	out := htmlEscaper.Replace(text)
	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	out = linkPattern.ReplaceAllString(out, `<a href="$2">$1</a>`)
	return out
}
