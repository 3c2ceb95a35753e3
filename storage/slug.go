package storage

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const slugSuffixLength = 8

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug derives a URL-safe identifier from a display name: the name
// is ASCII-normalized, lowercased and hyphenated, then a random 8-character
// suffix is appended so two deploys of the same name never collide.
func GenerateSlug(name string) string {
	base := nonSlugRe.ReplaceAllString(strings.ToLower(asciiFold(name)), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "portfolio"
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:slugSuffixLength]
	return base + "-" + suffix
}

// asciiFold strips diacritics and drops whatever remains outside ASCII.
func asciiFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, r := range folded {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
