package reportdoc

import (
	"regexp"
	"strings"
)

// Patterns for slug normalization and heading prefixes.
var (
	ordinalPrefix = regexp.MustCompile(`^\d+\.\s+`)
	htmlTag       = regexp.MustCompile(`<[^>]*>`)
	htmlEntity    = regexp.MustCompile(`&#?[a-zA-Z0-9]+;`)
	nonAlnumRun   = regexp.MustCompile(`[^a-z0-9]+`)
)

// StripOrdinal removes a leading "N. " prefix from a heading, if present.
func StripOrdinal(heading string) string {
	return ordinalPrefix.ReplaceAllString(heading, "")
}

// Slugify derives a URL-fragment-safe identifier from heading display text:
// lowercase, HTML tags and entities stripped, every run of characters
// outside [a-z0-9] collapsed to a single hyphen, leading and trailing
// hyphens trimmed.
//
// Slugify enforces no per-document uniqueness; callers get colliding ids
// for headings that normalize identically.
func Slugify(heading string) string {
	s := strings.ToLower(heading)
	s = htmlTag.ReplaceAllString(s, "")
	s = htmlEntity.ReplaceAllString(s, "")
	s = nonAlnumRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
