// Package noun normalizes noun phrases into graph keys.
package noun

import (
	"strings"
	"unicode"
)

// NegationPrefix marks the vertex that stands for "not <noun>".
const NegationPrefix = "no_"

// Normalize lower-cases text and collapses every run of whitespace or
// hyphens into a single underscore.
// Example: "Hairy  Animals" → "hairy_animals", "hairy-animals" → "hairy_animals"
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inRun := false
	for _, r := range text {
		if unicode.IsSpace(r) || r == '-' {
			if !inRun {
				b.WriteByte('_')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Negate returns the negation key of a noun. It is purely syntactic:
// negating a negation key yields "no_no_<noun>", a distinct key.
func Negate(text string) string {
	return Normalize("no " + text)
}

// IsNegation reports whether key names a negation vertex.
func IsNegation(key string) bool {
	return strings.HasPrefix(key, NegationPrefix)
}
