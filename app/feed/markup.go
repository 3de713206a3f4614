package feed

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup removes every tag from s and returns the concatenated text
// content. Podcast feeds routinely embed HTML even in plain description
// fields.
func StripMarkup(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
