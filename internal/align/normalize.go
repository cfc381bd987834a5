package align

import (
	"strings"
	"unicode"
)

// NormalizeText lowercases, strips punctuation, and collapses whitespace.
// Matching happens entirely in this normalized space so synthesis artifacts
// like stray punctuation or casing never affect similarity.
func NormalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize returns the normalized word tokens of text.
func Tokenize(text string) []string {
	return strings.Fields(NormalizeText(text))
}
