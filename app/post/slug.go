package post

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars   = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts text to a URL-friendly identifier: lower-cased, stripped
// of punctuation, with runs of whitespace and hyphens collapsed to a single
// hyphen. Empty input yields an empty string.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
