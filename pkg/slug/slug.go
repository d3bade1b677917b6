package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const MaxLength = 255

var (
	validPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	separators   = regexp.MustCompile(`[-\s]+`)
)

// Make turns free text into a URL slug: accents are folded to ASCII,
// anything other than letters, digits, underscores and hyphens is dropped,
// and runs of whitespace or hyphens become a single hyphen.
func Make(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		switch {
		case r > unicode.MaxASCII:
			continue
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', r == '-', unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}

	out := separators.ReplaceAllString(strings.TrimSpace(b.String()), "-")
	out = strings.Trim(out, "-_")
	if len(out) > MaxLength {
		out = strings.TrimRight(out[:MaxLength], "-_")
	}
	return out
}

func Valid(s string) bool {
	return len(s) <= MaxLength && validPattern.MatchString(s)
}
