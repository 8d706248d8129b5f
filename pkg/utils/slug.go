package utils

import (
	"strings"
	"unicode"
)

// Slugify derives a URL slug from a title. Slugs are not guaranteed unique;
// lookups take the first match.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}
