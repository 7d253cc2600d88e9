// Package slug derives canonical URL slugs from post titles and
// caller-supplied slug strings.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes Unicode characters and strips combining marks, so
// "Café" folds to "Cafe" before ASCII reduction.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts s into its canonical slug form: accents folded, letters
// lowercased, and every run of non-alphanumeric characters collapsed to a
// single hyphen. Leading and trailing separators are dropped, so
// "Hello World!" becomes "hello-world". Returns "" when s contains no
// alphanumeric characters at all.
func Make(s string) string {
	folded, _, err := transform.String(deaccent, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pending := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pending = false
			continue
		}
		pending = true
	}
	return b.String()
}
